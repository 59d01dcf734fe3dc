package press

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

const (
	switchKey uint16 = 6
	showKey   uint16 = 2
)

func newClassifier() *Classifier {
	c, err := New(switchKey, 750*time.Millisecond, 2*time.Second)
	So(err, ShouldBeNil)
	return c
}

func press(c *Classifier, code uint16, held time.Duration) (Action, bool) {
	start := time.Unix(100, 0)
	c.Down(code, start)
	return c.Up(code, start.Add(held))
}

func TestNew(t *testing.T) {
	Convey("New", t, func() {
		Convey("Rejects inverted thresholds", func() {
			_, err := New(switchKey, 2*time.Second, 750*time.Millisecond)
			So(err, ShouldNotBeNil)
		})

		Convey("Rejects equal thresholds", func() {
			_, err := New(switchKey, time.Second, time.Second)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSwitchKeyTiers(t *testing.T) {
	Convey("Switch key classification", t, func() {
		c := newClassifier()

		cases := []struct {
			held time.Duration
			want Class
		}{
			{300 * time.Millisecond, Short},
			{749 * time.Millisecond, Short},
			{750 * time.Millisecond, Long},
			{time.Second, Long},
			{1999 * time.Millisecond, Long},
			{2 * time.Second, VeryLong},
			{2500 * time.Millisecond, VeryLong},
		}
		for _, tc := range cases {
			action, ok := press(c, switchKey, tc.held)
			So(ok, ShouldBeTrue)
			So(action.Class, ShouldEqual, tc.want)
		}
	})
}

func TestShowKeyTiers(t *testing.T) {
	Convey("Show key classification has no very-long tier", t, func() {
		c := newClassifier()

		action, ok := press(c, showKey, 300*time.Millisecond)
		So(ok, ShouldBeTrue)
		So(action.Class, ShouldEqual, Short)

		action, _ = press(c, showKey, time.Second)
		So(action.Class, ShouldEqual, Long)

		// Holding past the very-long threshold still reads as long.
		action, _ = press(c, showKey, 5*time.Second)
		So(action.Class, ShouldEqual, Long)
	})
}

func TestUnmatchedEvents(t *testing.T) {
	Convey("Unmatched events", t, func() {
		c := newClassifier()

		Convey("Up without a down is ignored", func() {
			_, ok := c.Up(showKey, time.Unix(100, 0))
			So(ok, ShouldBeFalse)
		})

		Convey("A second down overwrites a stale one", func() {
			c.Down(showKey, time.Unix(100, 0))
			c.Down(showKey, time.Unix(200, 0))

			action, ok := c.Up(showKey, time.Unix(200, 0).Add(100*time.Millisecond))
			So(ok, ShouldBeTrue)
			So(action.Class, ShouldEqual, Short)
		})

		Convey("Up consumes the recorded down", func() {
			c.Down(showKey, time.Unix(100, 0))
			_, ok := c.Up(showKey, time.Unix(101, 0))
			So(ok, ShouldBeTrue)

			_, ok = c.Up(showKey, time.Unix(102, 0))
			So(ok, ShouldBeFalse)
		})
	})
}

func TestClassString(t *testing.T) {
	Convey("Class String", t, func() {
		So(Short.String(), ShouldEqual, "short")
		So(Long.String(), ShouldEqual, "long")
		So(VeryLong.String(), ShouldEqual, "very-long")
		So(Class(42).String(), ShouldEqual, "unknown")
	})
}
