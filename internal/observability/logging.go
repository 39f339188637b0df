// Package observability builds the almanac's zap logger.
//
// Log lines never go to stdout; stdout belongs to the catalog prompt.
package observability

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/almanac/internal/config"
)

// LoggerName is the root name attached to every almanac log entry.
const LoggerName = "almanac"

// NewLogger returns a logger writing cfg.Format entries at or above cfg.Level to
// cfg.File, or to stderr when no file is configured.
//
// Precondition: cfg passed config.Validate.
// Postcondition: the caller owns the returned logger and should Sync it on exit.
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}
	encoder, err := newEncoder(cfg.Format)
	if err != nil {
		return nil, err
	}

	sinkPath := "stderr"
	if cfg.File != "" {
		sinkPath = cfg.File
	}
	sink, _, err := zap.Open(sinkPath)
	if err != nil {
		return nil, fmt.Errorf("opening log sink %q: %w", sinkPath, err)
	}
	errSink, _, err := zap.Open("stderr")
	if err != nil {
		return nil, fmt.Errorf("opening error sink: %w", err)
	}

	core := zapcore.NewCore(encoder, sink, zap.NewAtomicLevelAt(level))
	return zap.New(core, zap.AddCaller(), zap.ErrorOutput(errSink)).Named(LoggerName), nil
}

// newEncoder maps a configured format to a zap encoder. Console output is colored
// by level and carries no stack traces.
func newEncoder(format string) (zapcore.Encoder, error) {
	switch format {
	case "json":
		enc := zap.NewProductionEncoderConfig()
		enc.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(enc), nil
	case "console":
		enc := zap.NewDevelopmentEncoderConfig()
		enc.EncodeTime = zapcore.ISO8601TimeEncoder
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc.StacktraceKey = ""
		return zapcore.NewConsoleEncoder(enc), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
