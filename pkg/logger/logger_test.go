package logger_test

import (
	"context"
	"testing"

	"github.com/scthornton/analytics-data-gen-parquet/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	convey.Convey("Given an initialized global logger", t, func() {
		err := logger.Init()
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("When fetching and using it", func() {
			log := logger.Get()
			convey.So(log, convey.ShouldNotBeNil)

			convey.Convey("Then logging should not panic", func() {
				ctx := context.Background()
				convey.So(func() {
					log.Info(ctx, "info message", logger.String("key", "value"))
					log.Debug(ctx, "debug message", logger.Int("n", 1))
					log.Warn(ctx, "warn message", logger.Float64("f", 1.5))
					log.Error(ctx, "error message", logger.Error(nil))
				}, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When setting the level from a string", func() {
			convey.Convey("Then known levels should parse", func() {
				for _, lvl := range []string{"debug", "info", "warn", "warning", "error", ""} {
					convey.So(logger.SetLevelString(lvl), convey.ShouldBeNil)
				}
			})

			convey.Convey("And unknown levels should be rejected", func() {
				convey.So(logger.SetLevelString("chatty"), convey.ShouldNotBeNil)
			})
		})
	})
}
