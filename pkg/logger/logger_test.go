package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/parvinm/screenwise/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInit(t *testing.T) {
	Convey("Given an uninitialized logger package", t, func() {
		Convey("When Init is called", func() {
			err := logger.Init()

			Convey("Then the global logger becomes available", func() {
				So(err, ShouldBeNil)
				So(logger.Get(), ShouldNotBeNil)
			})

			Convey("And Named returns a distinct child logger", func() {
				named := logger.Named("scoring")
				So(named, ShouldNotBeNil)
				So(named, ShouldNotEqual, logger.Get())
			})
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given an initialized logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("When valid level names are applied", func() {
			for _, lvl := range []string{"debug", "info", "warn", "warning", "error", "", "DEBUG", " info "} {
				So(logger.SetLevelString(lvl), ShouldBeNil)
			}
		})

		Convey("When an unknown level name is applied", func() {
			err := logger.SetLevelString("loud")

			Convey("Then an error is returned", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When SetLevel is called directly", func() {
			logger.SetLevel(slog.LevelWarn)

			Convey("Then the package does not panic on subsequent logging", func() {
				So(func() {
					logger.Get().Info(context.Background(), "below level", logger.String("k", "v"))
					logger.Get().Warn(context.Background(), "at level", logger.Int("n", 1))
				}, ShouldNotPanic)
			})
		})
	})
}

func TestFieldConstructors(t *testing.T) {
	Convey("Given the field constructors", t, func() {
		Convey("When fields are built", func() {
			f := logger.String("a", "b")
			So(f.Key, ShouldEqual, "a")
			So(f.Value, ShouldEqual, "b")

			So(logger.Int("n", 3).Value, ShouldEqual, 3)
			So(logger.Float64("f", 1.5).Value, ShouldEqual, 1.5)
			So(logger.Bool("ok", true).Value, ShouldEqual, true)
			So(logger.Error(nil).Key, ShouldEqual, "error")
		})
	})
}
