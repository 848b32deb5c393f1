// Package logger provides the process-wide structured logger. It
// starts as a nop so library consumers and tests stay silent; the CLI
// installs a real logger at startup.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the shared sugared logger. Never nil.
var Logger = zap.NewNop().Sugar()

// Init installs a production logger at the given level. Debug enables
// development encoding with caller annotations.
func Init(debug bool) error {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Logger = l.Sugar()
	return nil
}

// Sync flushes buffered log entries. Safe to call on the nop logger.
func Sync() {
	_ = Logger.Sync()
}
