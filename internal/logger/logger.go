package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"spin2win/internal/config"
)

// New Строит zap-логгер по конфигу окружения
func New(cfg config.LoggerConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Development() {
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level())
	if err != nil {
		return nil, err
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
