package keymap

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tvjuke-cli/tvjuke/key"
)

func setKeymap(switchCode int, bindings ...string) {
	viper.Set(key.KeymapSwitchKey, switchCode)
	viper.Set(key.KeymapBindings, bindings)
}

func TestLoad(t *testing.T) {
	Convey("Load", t, func() {
		Convey("Parses short-only bindings with long defaulting to short", func() {
			setKeymap(6, "2=The Simpsons", "3=Cheers")
			m, err := Load()
			So(err, ShouldBeNil)
			So(m.SwitchCode(), ShouldEqual, 6)

			b, ok := m.Show(2)
			So(ok, ShouldBeTrue)
			So(b.Short, ShouldEqual, "The Simpsons")
			So(b.Long, ShouldEqual, "The Simpsons")
		})

		Convey("Parses distinct short|long pairs", func() {
			setKeymap(6, "2=Cheers|Seinfeld")
			m, err := Load()
			So(err, ShouldBeNil)

			b, _ := m.Show(2)
			So(b.Short, ShouldEqual, "Cheers")
			So(b.Long, ShouldEqual, "Seinfeld")
		})

		Convey("Rejects a show bound to the switch key code", func() {
			setKeymap(6, "6=Cheers")
			_, err := Load()
			So(err, ShouldNotBeNil)
		})

		Convey("Rejects duplicate codes", func() {
			setKeymap(6, "2=Cheers", "2=Seinfeld")
			_, err := Load()
			So(err, ShouldNotBeNil)
		})

		Convey("Rejects empty show names", func() {
			setKeymap(6, "2=")
			_, err := Load()
			So(err, ShouldNotBeNil)
		})

		Convey("Rejects malformed bindings", func() {
			setKeymap(6, "nonsense")
			_, err := Load()
			So(err, ShouldNotBeNil)
		})

		Convey("Rejects an empty table", func() {
			setKeymap(6)
			_, err := Load()
			So(err, ShouldNotBeNil)
		})
	})
}

func TestLookups(t *testing.T) {
	Convey("Lookups", t, func() {
		setKeymap(6, "2=Cheers")
		m, err := Load()
		So(err, ShouldBeNil)

		So(m.IsSwitch(6), ShouldBeTrue)
		So(m.IsSwitch(2), ShouldBeFalse)
		So(m.Mapped(6), ShouldBeTrue)
		So(m.Mapped(2), ShouldBeTrue)
		So(m.Mapped(99), ShouldBeFalse)

		_, ok := m.Show(99)
		So(ok, ShouldBeFalse)
	})
}
