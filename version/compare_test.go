package version

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		Convey("Orders by major, minor, patch", func() {
			So(lo.Must(Compare("1.0.0", "0.9.9")), ShouldEqual, 1)
			So(lo.Must(Compare("0.2.0", "0.2.1")), ShouldEqual, -1)
			So(lo.Must(Compare("0.1.3", "0.1.3")), ShouldEqual, 0)
		})

		Convey("Accepts a leading v", func() {
			So(lo.Must(Compare("v1.2.3", "1.2.2")), ShouldEqual, 1)
		})

		Convey("Rejects malformed versions", func() {
			_, err := Compare("latest", "0.1.0")
			So(err, ShouldNotBeNil)
		})
	})
}
