// Package logger holds the process-wide zap logger for the finmate API.
// Handlers, services, and the notifier all log through Get(); Init picks
// the encoder once per process based on the ENV setting.
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init builds the global logger. Production gets JSON with ISO 8601
// timestamps so log aggregators can parse request and breach events;
// everything else gets a colored console encoder for local development.
// Subsequent calls are no-ops.
func Init(env string) {
	once.Do(func() {
		var cfg zap.Config
		if env == "production" {
			cfg = zap.NewProductionConfig()
			cfg.EncoderConfig.TimeKey = "ts"
			cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		} else {
			cfg = zap.NewDevelopmentConfig()
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}

		base, err := cfg.Build()
		if err != nil {
			base = zap.NewNop()
		}
		sugar = base.Sugar()
	})
}

// Get returns the global sugared logger, initializing a development logger
// if Init was never called (tests and the import CLI rely on this).
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init("development")
	}
	return sugar
}

// Sync flushes buffered entries. Deferred in main before exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
