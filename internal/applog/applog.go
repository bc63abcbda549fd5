// Package applog builds the zap-backed logger used across the
// solver: one structured logger, configured once from
// internal/config.Config, threaded through the driver for its
// trial-by-trial diagnostics.
package applog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a SugaredLogger. level is a zap level name such as
// "debug", "info", "warn" or "error", in all lower or all upper case;
// unrecognized values fall back to "info". When json is false, a human-readable console encoder is
// used instead — convenient for local CLI runs.
func New(level string, json bool) (*zap.SugaredLogger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	if !json {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
