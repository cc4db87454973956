package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// DefaultSignupsFile is the export read when SIGNUPS_FILE is unset
const DefaultSignupsFile = "signups.txt"

// Config holds the runtime settings of the converter
type Config struct {
	Environment string
	LogLevel    string
	// SignupsFile is the tab-separated signup export to convert
	SignupsFile string
	// TargetDBConfig is an optional sink configuration JSON; empty means stdout only
	TargetDBConfig string
}

// Load reads an optional .env file and then the process environment
func Load(logger *zap.Logger) *Config {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", zap.Error(err))
	}

	cfg := &Config{
		Environment:    getEnv("ENVIRONMENT", "production"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		SignupsFile:    getEnv("SIGNUPS_FILE", DefaultSignupsFile),
		TargetDBConfig: os.Getenv("TARGET_DB_CONFIG"),
	}

	logger.Debug("configuration loaded",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("signups_file", cfg.SignupsFile),
		zap.Bool("sink_configured", cfg.TargetDBConfig != ""),
	)
	return cfg
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
