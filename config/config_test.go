package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/stackq/stackq/filesystem"
	"github.com/stackq/stackq/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name, field := range Default {
				So(viper.Get(name), ShouldEqual, field.Value)
			}
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("repl.show_queues"), ShouldEqual, "repl_show_queues")
		})

		Convey("Field.Env should carry the application prefix", func() {
			field := Default[key.RunBackend]
			So(field.Env(), ShouldEqual, "STACKQ_RUN_BACKEND")
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("An unknown backend is rejected", func() {
			viper.Set(key.RunBackend, "deque")
			So(Validate(), ShouldNotBeNil)
			viper.Set(key.RunBackend, "slice")
			So(Validate(), ShouldBeNil)
		})

		Convey("A non-positive history size is rejected", func() {
			viper.Set(key.ReplHistorySize, 0)
			So(Validate(), ShouldNotBeNil)
		})

		Reset(func() {
			for name, field := range Default {
				viper.Set(name, field.Value)
			}
		})
	})
}
