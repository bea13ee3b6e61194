// Package logging builds the zap loggers used by the wordnet command.
package logging

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrUnknownLevel is returned for a level name zap does not know.
var ErrUnknownLevel = errors.New("logging: unknown level")

// Config selects the encoder preset and the minimum level.
type Config struct {
	// Level is a zap level name: debug, info, warn, error, dpanic, panic or
	// fatal. Empty means info.
	Level string `yaml:"level" toml:"level"`
	// Development switches to zap's console encoder with coloured levels.
	Development bool `yaml:"development" toml:"development"`
}

// ParseLevel maps a level name to its zapcore value using zap's own names,
// case-insensitively. An empty name means info.
func ParseLevel(s string) (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(strings.TrimSpace(s))
	if err != nil {
		return zap.InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}

	return level, nil
}

// New builds a logger writing to stderr.
func New(cfg Config) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var zc zap.Config
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	return logger, nil
}
