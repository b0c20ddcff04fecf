package log

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/stackq/stackq/filesystem"
	"github.com/stackq/stackq/key"
	"github.com/stackq/stackq/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeFalse)

		Convey("Structured entries are discarded", func() {
			entry := WithFields(logrus.Fields{"op": "pop"})
			So(entry.Logger, ShouldNotEqual, logrus.StandardLogger())
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		viper.Set(key.LogsJson, false)
		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeTrue)
		So(logrus.GetLevel(), ShouldEqual, logrus.DebugLevel)

		Convey("Messages are written to the daily log file", func() {
			Debugf("pushed %d", 3)

			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			data := lo.Must(filesystem.API().ReadFile(path))
			So(strings.Contains(string(data), "pushed 3"), ShouldBeTrue)
		})

		Convey("An unknown level falls back to info", func() {
			viper.Set(key.LogsLevel, "verbose")
			So(Setup(), ShouldBeNil)
			So(logrus.GetLevel(), ShouldEqual, logrus.InfoLevel)
		})

		Reset(func() {
			viper.Set(key.LogsWrite, false)
			lo.Must0(Setup())
		})
	})
}
