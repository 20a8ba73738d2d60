// Package logging builds the zap logger shared by the adapter's components.
package logging

import (
	"fmt"
	"strings"

	"github.com/mj1618/outlook-a11y/internal/config"
	"go.uber.org/zap"
)

// Options describe how to configure a logger instance.
type Options struct {
	Level  string
	Format string
	// OutputPaths defaults to stderr.
	OutputPaths []string
}

// FromConfig maps the log section of the configuration to Options.
func FromConfig(c config.LogConfig) Options {
	return Options{Level: c.Level, Format: c.Format}
}

// New creates a logger. Format "json" uses zap's production encoder,
// "console" its development encoder.
func New(opts Options) (*zap.Logger, error) {
	level, err := config.NormalizeLogLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	atom, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var cfg zap.Config
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", "console":
		cfg = zap.NewDevelopmentConfig()
	case "json":
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("unsupported log format %q", opts.Format)
	}
	cfg.Level = atom
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if len(opts.OutputPaths) > 0 {
		cfg.OutputPaths = opts.OutputPaths
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
