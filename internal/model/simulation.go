package model

import (
	"time"

	"github.com/shopspring/decimal"

	"spin2win/internal/engine/session"
)

// SpinSource Откуда брать спины для симуляции
type SpinSource string

const (
	SpinSourceList   SpinSource = "list"
	SpinSourceLive   SpinSource = "live"
	SpinSourceRandom SpinSource = "random"
)

// SimulationRequest Запрос на прогон стратегии по списку спинов
type SimulationRequest struct {
	Preset string
	Config *session.Config
	Source SpinSource
	Spins  []int
	// Count, Seed Для source = random
	Count int
	Seed  uint64
}

// Round Один оценённый спин симуляции
type Round struct {
	Index   int
	Spin    int
	Seed    string
	Hit     bool
	Stake   int
	Net     int
	Balance int
	Reset   bool
}

// Report Итог симуляции
type Report struct {
	ID              string
	Fingerprint     string
	Preset          string
	Config          session.Config
	Source          SpinSource
	TotalSpins      int
	SpinsEvaluated  int
	Hits            int
	Misses          int
	Skipped         int
	Resets          int
	StartingBalance int
	FinalBalance    int
	LowestBalance   int
	HighestBalance  int
	NetProfit       int
	Wagered         int
	HitRate         decimal.Decimal
	ROI             decimal.Decimal
	CreatedAt       time.Time
	Rounds          []Round
}

// BatchRequest Несколько независимых случайных прогонов
type BatchRequest struct {
	Preset string
	Config *session.Config
	Runs   int
	Count  int
	Seed   uint64
}

// BatchReport Сводка по пакету прогонов
type BatchReport struct {
	Runs           int
	SpinsPerRun    int
	MeanNetProfit  decimal.Decimal
	MeanHitRate    decimal.Decimal
	BestNetProfit  int
	WorstNetProfit int
	LowestBalance  int
	ProfitableRuns int
	Reports        []Report
}
