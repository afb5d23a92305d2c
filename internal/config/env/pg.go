package env

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"spin2win/internal/config"
)

const (
	pgDSNEnvName      = "PG_DSN"
	pgMaxConnsEnvName = "PG_MAX_CONNS"
)

// reportsPGConfig Подключение к хранилищу отчётов симуляций
type reportsPGConfig struct {
	dsn      string
	maxConns int32
}

// NewPGConfig Читает DSN и размер пула. Некорректный DSN — ошибка на старте
func NewPGConfig() (config.PGConfig, error) {
	dsn := os.Getenv(pgDSNEnvName)
	if len(dsn) == 0 {
		return nil, fmt.Errorf("%s is required for simulation report storage", pgDSNEnvName)
	}
	if _, err := pgxpool.ParseConfig(dsn); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", pgDSNEnvName, err)
	}

	// 0 — размер пула по умолчанию pgxpool
	var maxConns int32
	if raw := os.Getenv(pgMaxConnsEnvName); len(raw) != 0 {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid %s %q: must be a positive integer", pgMaxConnsEnvName, raw)
		}
		maxConns = int32(n)
	}

	return &reportsPGConfig{
		dsn:      dsn,
		maxConns: maxConns,
	}, nil
}

func (c *reportsPGConfig) DSN() string {
	return c.dsn
}

func (c *reportsPGConfig) MaxConns() int32 {
	return c.maxConns
}
