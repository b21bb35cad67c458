// Package logging builds the zap loggers used by the CLI, the TUI and the
// development backend.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects where and how much to log
type Options struct {
	Level string
	// File receives log output. Empty means stderr, unless Quiet is set.
	File string
	// Quiet discards output when no file is set. The TUI owns the terminal,
	// so it must not log to stderr.
	Quiet bool
}

// New builds a console-encoded zap logger
func New(opts Options) (*zap.Logger, error) {
	if opts.File == "" && opts.Quiet {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	output := "stderr"
	if opts.File != "" {
		output = opts.File
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Development = false
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{output}
	cfg.ErrorOutputPaths = []string{output}

	return cfg.Build()
}
