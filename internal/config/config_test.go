package config_test

import (
	"runtime"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/parvinm/screenwise/internal/config"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.QueueSize, convey.ShouldEqual, 10_000)
			convey.So(cfg.WorkerCount, convey.ShouldEqual, runtime.NumCPU())
			convey.So(cfg.DedupeSize, convey.ShouldEqual, 50_000)
			convey.So(cfg.HistorySize, convey.ShouldEqual, 10_000)
			convey.So(cfg.MaxHistoryLimit, convey.ShouldEqual, 100)
			convey.So(cfg.Suggestions, convey.ShouldBeNil)
		})
	})
}
