package config

import (
	"os"
	"strconv"
)

// Environment variables controlling file logging
const (
	EnvLogFile       = "AICLI_LOG_FILE"
	EnvLogMaxSize    = "AICLI_LOG_MAX_SIZE"
	EnvLogMaxBackups = "AICLI_LOG_MAX_BACKUPS"
	EnvLogMaxAge     = "AICLI_LOG_MAX_AGE"
	EnvDebug         = "DEBUG"
)

// LogConfig controls console and file logging
type LogConfig struct {
	// FilePath enables rotating file logging when non-empty
	FilePath   string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Debug      bool
}

// DefaultLogConfig returns console-only logging with the default rotation settings
func DefaultLogConfig() LogConfig {
	return LogConfig{
		MaxSize:    1,
		MaxBackups: 2,
		MaxAge:     30,
	}
}

// GetLogConfig reads the logging configuration from the environment.
// Invalid numeric values are ignored and the default is kept.
func GetLogConfig() LogConfig {
	cfg := DefaultLogConfig()
	cfg.FilePath = os.Getenv(EnvLogFile)
	cfg.Debug = os.Getenv(EnvDebug) != ""

	if maxSize, ok := positiveInt(EnvLogMaxSize); ok {
		cfg.MaxSize = maxSize
	}

	if maxBackupsStr := os.Getenv(EnvLogMaxBackups); maxBackupsStr != "" {
		if maxBackups, err := strconv.Atoi(maxBackupsStr); err == nil && maxBackups >= 0 {
			cfg.MaxBackups = maxBackups
		}
	}

	if maxAge, ok := positiveInt(EnvLogMaxAge); ok {
		cfg.MaxAge = maxAge
	}

	return cfg
}

func positiveInt(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
