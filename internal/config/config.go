package config

import (
	"time"

	"github.com/joho/godotenv"

	"spin2win/internal/engine/session"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// StrategyConfig Именованные пресеты стратегии из config.yaml
type StrategyConfig interface {
	Preset(name string) (session.Config, bool)
	Presets() map[string]session.Config
	DefaultPreset() string
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
	// MaxConns 0 — размер пула по умолчанию
	MaxConns() int32
}

type SessionTokenConfig interface {
	SecretKey() []byte
	TTL() time.Duration
}

type LoggerConfig interface {
	Level() string
	Development() bool
}
