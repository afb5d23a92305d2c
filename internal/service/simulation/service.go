package simulation

import (
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"

	"spin2win/internal/config"
	"spin2win/internal/repository"
	"spin2win/internal/service"
)

const (
	// MaxSpins Предел длины одного прогона
	MaxSpins = 100_000
	// MaxRuns Предел числа прогонов в пакете
	MaxRuns = 256
)

type serv struct {
	repo      repository.SimulationRepository
	presets   config.StrategyConfig
	txManager trm.Manager
	log       *zap.Logger
}

// NewSimulationService Прогоны стратегии по спискам спинов с сохранением отчётов
func NewSimulationService(
	repo repository.SimulationRepository,
	presets config.StrategyConfig,
	txManager trm.Manager,
	log *zap.Logger,
) service.SimulationService {
	return &serv{
		repo:      repo,
		presets:   presets,
		txManager: txManager,
		log:       log,
	}
}
