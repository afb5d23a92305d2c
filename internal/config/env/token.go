package env

import (
	"fmt"
	"os"
	"time"

	"spin2win/internal/config"
)

const (
	sessionTokenKeyEnvName = "SESSION_TOKEN_SECRET"
	sessionTokenTTLEnvName = "SESSION_TOKEN_TTL"

	defaultSessionTokenTTL = 24 * time.Hour
)

type sessionTokenConfig struct {
	secretKey string
	ttl       time.Duration
}

func NewSessionTokenConfig() (config.SessionTokenConfig, error) {
	secret := os.Getenv(sessionTokenKeyEnvName)
	if len(secret) == 0 {
		return nil, fmt.Errorf("session token secret key not found")
	}

	ttl := defaultSessionTokenTTL
	if raw := os.Getenv(sessionTokenTTLEnvName); len(raw) != 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid session token ttl: %w", err)
		}
		ttl = parsed
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session token ttl must be positive, got %s", ttl)
	}

	return &sessionTokenConfig{
		secretKey: secret,
		ttl:       ttl,
	}, nil
}

func (c *sessionTokenConfig) SecretKey() []byte {
	return []byte(c.secretKey)
}

func (c *sessionTokenConfig) TTL() time.Duration {
	return c.ttl
}
