package history

import (
	"testing"

	"github.com/tvjuke-cli/tvjuke/filesystem"
	"github.com/tvjuke-cli/tvjuke/library"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given an episode", t, func() {
		media := library.Media{
			Path: "/media/shows/Cheers/s01e01.mp4",
			Show: "Cheers",
		}

		Convey("When saving the episode", func() {
			err := Save(media)

			Convey("Then the error should be nil", func() {
				So(err, ShouldBeNil)

				Convey("And the episode should be saved", func() {
					episodes, err := Get()
					So(err, ShouldBeNil)
					So(len(episodes), ShouldBeGreaterThan, 0)

					record := episodes["s01e01 (Cheers)"]
					So(record, ShouldNotBeNil)
					So(record.Show, ShouldEqual, "Cheers")
					So(record.PlayCount, ShouldBeGreaterThanOrEqualTo, 1)
				})
			})
		})

		Convey("When saving the episode twice", func() {
			So(Save(media), ShouldBeNil)
			So(Save(media), ShouldBeNil)

			episodes, err := Get()
			So(err, ShouldBeNil)
			So(episodes["s01e01 (Cheers)"].PlayCount, ShouldBeGreaterThanOrEqualTo, 2)
		})
	})
}
