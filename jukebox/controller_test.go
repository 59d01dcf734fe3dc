package jukebox

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tvjuke-cli/tvjuke/filesystem"
	"github.com/tvjuke-cli/tvjuke/library"
)

const testRoot = "/media"

func seedLibrary(files ...string) *library.Index {
	filesystem.SetMemMapFs()
	fs := filesystem.API()
	for _, f := range files {
		lo.Must0(fs.WriteFile(filepath.Join(testRoot, f), []byte("x"), 0644))
	}
	return library.New(testRoot)
}

func TestControllerModes(t *testing.T) {
	Convey("Controller modes", t, func() {
		ctrl := NewController(seedLibrary())

		Convey("Starts idle", func() {
			So(ctrl.Mode(), ShouldEqual, ModeIdle)
			So(ctrl.Caption(), ShouldBeEmpty)
		})

		Convey("SetShow", func() {
			ctrl.SetShow("Cheers")
			So(ctrl.Mode(), ShouldEqual, ModeShow)
			So(ctrl.Caption(), ShouldEqual, "|SHUFFLE| Cheers")
		})

		Convey("SetAll", func() {
			ctrl.SetAll()
			So(ctrl.Mode(), ShouldEqual, ModeAll)
			So(ctrl.Caption(), ShouldEqual, "|SHUFFLE| ALL SHOWS")
		})

		Convey("Last writer wins", func() {
			ctrl.SetShow("Cheers")
			ctrl.SetAll()
			ctrl.SetIdle()
			So(ctrl.Mode(), ShouldEqual, ModeIdle)
		})
	})
}

func TestControllerPickNext(t *testing.T) {
	Convey("Controller PickNext", t, func() {
		lib := seedLibrary(
			"shows/Cheers/e1.mp4",
			"shows/Cheers/e2.mp4",
			"shows/Seinfeld/e1.mp4",
			"welcome-videos/hello.mp4",
		)
		ctrl := NewController(lib)

		Convey("Idle draws from the welcome pool", func() {
			clip, ok := ctrl.PickNext().Get()
			So(ok, ShouldBeTrue)
			So(clip.Title(), ShouldEqual, "hello")
		})

		Convey("Show mode draws from that show only", func() {
			ctrl.SetShow("Cheers")
			for range 20 {
				clip, ok := ctrl.PickNext().Get()
				So(ok, ShouldBeTrue)
				So(clip.Show, ShouldEqual, "Cheers")
			}
		})

		Convey("All mode draws from every show", func() {
			ctrl.SetAll()
			shows := map[string]bool{}
			for range 100 {
				clip, ok := ctrl.PickNext().Get()
				So(ok, ShouldBeTrue)
				shows[clip.Show] = true
			}
			So(shows["Cheers"], ShouldBeTrue)
			So(shows["Seinfeld"], ShouldBeTrue)
		})

		Convey("Empty show yields None", func() {
			ctrl.SetShow("No Such Show")
			So(ctrl.PickNext().IsAbsent(), ShouldBeTrue)
		})

		Convey("Empty welcome pool yields None", func() {
			ctrl := NewController(seedLibrary("shows/Cheers/e1.mp4"))
			So(ctrl.PickNext().IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestAllShuffleWeighting(t *testing.T) {
	Convey("All-shuffle samples uniformly over the episode union", t, func() {
		// 3:1 episode split; long-run share of picks should follow it.
		var files []string
		for i := range 3 {
			files = append(files, fmt.Sprintf("shows/Big/e%d.mp4", i))
		}
		files = append(files, "shows/Small/e0.mp4")

		ctrl := NewController(seedLibrary(files...))
		ctrl.rng = rand.New(rand.NewSource(1))
		ctrl.SetAll()

		const picks = 4000
		big := 0
		for range picks {
			clip, ok := ctrl.PickNext().Get()
			So(ok, ShouldBeTrue)
			if clip.Show == "Big" {
				big++
			}
		}

		share := float64(big) / picks
		So(share, ShouldBeBetween, 0.70, 0.80)
	})
}
