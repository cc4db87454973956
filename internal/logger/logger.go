package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger creates a zap logger for the given environment and level.
// "production" gets JSON output; anything else gets the development console encoder.
// Both write to stderr so stdout stays reserved for generated SQL.
func NewLogger(environment, level string) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var cfg zap.Config
	if environment == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = atomicLevel
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}
