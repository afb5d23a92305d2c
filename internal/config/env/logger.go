package env

import (
	"os"

	"spin2win/internal/config"
)

const (
	logLevelEnvName = "LOG_LEVEL"
	logDevEnvName   = "LOG_DEV"
)

type loggerConfig struct {
	level string
	dev   bool
}

// NewLoggerConfig Без ошибок: по умолчанию info и production-формат
func NewLoggerConfig() config.LoggerConfig {
	level := os.Getenv(logLevelEnvName)
	if len(level) == 0 {
		level = "info"
	}
	return &loggerConfig{
		level: level,
		dev:   os.Getenv(logDevEnvName) == "true",
	}
}

func (cfg *loggerConfig) Level() string {
	return cfg.level
}

func (cfg *loggerConfig) Development() bool {
	return cfg.dev
}
