package strategy

import (
	"time"

	"go.uber.org/zap"

	"spin2win/internal/config"
	"spin2win/internal/engine/session"
	"spin2win/internal/repository"
	"spin2win/internal/service"
)

type serv struct {
	repo     repository.SessionRepository
	presets  config.StrategyConfig
	tokenCfg config.SessionTokenConfig
	log      *zap.Logger
	now      func() time.Time
}

// NewStrategyService Сервис живых стратегических сессий
func NewStrategyService(
	repo repository.SessionRepository,
	presets config.StrategyConfig,
	tokenCfg config.SessionTokenConfig,
	log *zap.Logger,
) service.SessionService {
	return &serv{
		repo:     repo,
		presets:  presets,
		tokenCfg: tokenCfg,
		log:      log,
		now:      time.Now,
	}
}

// Presets Именованные конфигурации
func (s *serv) Presets() map[string]session.Config {
	if s.presets == nil {
		return map[string]session.Config{}
	}
	return s.presets.Presets()
}
