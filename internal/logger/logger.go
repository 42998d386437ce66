// Package logger provides the process-wide zap logger.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init initializes the global logger for the given environment.
// "production" gets the JSON encoder, "test" discards everything, and any
// other value gets the human-readable development encoder.
func Init(env string) {
	once.Do(func() {
		var base *zap.Logger
		var err error

		switch env {
		case "production":
			base, err = zap.NewProduction()
		case "test":
			base = zap.NewNop()
		default:
			base, err = zap.NewDevelopment()
		}

		if err != nil {
			base = zap.NewNop()
		}

		sugar = base.Sugar()
	})
}

// Get returns the global sugared logger.
// If Init has not been called, it initializes a development logger.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init("development")
	}
	return sugar
}

// Audit returns the logger ledger mutations are recorded on.
func Audit() *zap.SugaredLogger {
	return Get().Named("audit")
}

// Sync flushes any buffered log entries. Call this before application exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
