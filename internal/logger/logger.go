package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It discards everything until Initialize or
// Replace installs a real one.
var Log = zap.NewNop().Sugar()

// Initialize installs a JSON logger writing entries at level and above to
// stderr. fields are key/value pairs attached to every entry, such as the
// service name.
func Initialize(level string, fields ...any) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	Log = l.Sugar().With(fields...)
	return nil
}

// Replace installs l as Log and returns a func that puts the previous logger
// back.
func Replace(l *zap.Logger) (restore func()) {
	prev := Log
	Log = l.Sugar()
	return func() { Log = prev }
}
