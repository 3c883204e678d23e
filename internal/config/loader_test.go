package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/parvinm/screenwise/internal/config"
)

func clearConfigEnvVars() {
	for _, key := range []string{
		"SCREENWISE_CONFIG",
		"SCREENWISE_ADDR",
		"SCREENWISE_LOG_LEVEL",
		"SCREENWISE_QUEUE_SIZE",
		"SCREENWISE_WORKER_COUNT",
		"SCREENWISE_DEDUPE_SIZE",
		"SCREENWISE_HISTORY_SIZE",
		"SCREENWISE_MAX_HISTORY_LIMIT",
	} {
		_ = os.Unsetenv(key)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.QueueSize, convey.ShouldEqual, 10_000)
				convey.So(cfg.HistorySize, convey.ShouldEqual, 10_000)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("SCREENWISE_ADDR", ":8080")
			_ = os.Setenv("SCREENWISE_QUEUE_SIZE", "5000")
			_ = os.Setenv("SCREENWISE_WORKER_COUNT", "4")
			_ = os.Setenv("SCREENWISE_MAX_HISTORY_LIMIT", "50")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.QueueSize, convey.ShouldEqual, 5000)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 4)
				convey.So(cfg.MaxHistoryLimit, convey.ShouldEqual, 50)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			clearConfigEnvVars()

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			content := []byte("addr: \":7070\"\nlog_level: debug\nsuggestions:\n  Medium: \"Try shared reading instead.\"\n")
			convey.So(os.WriteFile(path, content, 0o600), convey.ShouldBeNil)

			_ = os.Setenv("SCREENWISE_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values layer over the defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.Suggestions["Medium"], convey.ShouldEqual, "Try shared reading instead.")
				convey.So(cfg.QueueSize, convey.ShouldEqual, 10_000)
			})
		})

		convey.Convey("When env vars override the file", func() {
			clearConfigEnvVars()

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			convey.So(os.WriteFile(path, []byte("addr: \":7070\"\n"), 0o600), convey.ShouldBeNil)

			_ = os.Setenv("SCREENWISE_CONFIG", path)
			_ = os.Setenv("SCREENWISE_ADDR", ":6060")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then the env value wins", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":6060")
			})
		})

		convey.Convey("When the config file does not exist", func() {
			clearConfigEnvVars()
			_ = os.Setenv("SCREENWISE_CONFIG", "/nonexistent/config.yaml")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails with a load error", func() {
				convey.So(err, convey.ShouldWrap, config.ErrLoadConfig)
			})
		})

		convey.Convey("When a value fails validation", func() {
			clearConfigEnvVars()
			_ = os.Setenv("SCREENWISE_QUEUE_SIZE", "-1")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails with an invalid-config error", func() {
				convey.So(err, convey.ShouldWrap, config.ErrInvalidConfig)
			})
		})

		convey.Convey("When a suggestion key is not a harm level", func() {
			clearConfigEnvVars()

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			convey.So(os.WriteFile(path, []byte("suggestions:\n  Severe: \"nope\"\n"), 0o600), convey.ShouldBeNil)

			_ = os.Setenv("SCREENWISE_CONFIG", path)
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails with an invalid-config error", func() {
				convey.So(err, convey.ShouldWrap, config.ErrInvalidConfig)
			})
		})
	})
}
