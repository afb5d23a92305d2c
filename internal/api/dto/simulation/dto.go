package simulation

import (
	"time"

	"github.com/shopspring/decimal"

	"spin2win/internal/engine/session"
)

type RandomSpins struct {
	Count int    `json:"count"`
	Seed  uint64 `json:"seed"`
}

// SimulationRequest Без spins и random прогоняется записанная живая сессия
type SimulationRequest struct {
	Preset string          `json:"preset,omitempty"`
	Config *session.Config `json:"config,omitempty"`
	Spins  []int           `json:"spins,omitempty"`
	Random *RandomSpins    `json:"random,omitempty"`
}

type BatchRequest struct {
	Preset string          `json:"preset,omitempty"`
	Config *session.Config `json:"config,omitempty"`
	Runs   int             `json:"runs"`
	Count  int             `json:"count"` // Спинов в каждом прогоне
	Seed   uint64          `json:"seed"`  // Прогон i использует seed+i
}

type Round struct {
	Index   int    `json:"index"`
	Spin    int    `json:"spin"`
	Seed    string `json:"seed"`
	Hit     bool   `json:"hit"`
	Stake   int    `json:"stake"`
	Net     int    `json:"net"`
	Balance int    `json:"balance"`
	Reset   bool   `json:"reset"`
}

type ReportResponse struct {
	ID              string          `json:"id,omitempty"`
	Fingerprint     string          `json:"fingerprint,omitempty"`
	Preset          string          `json:"preset,omitempty"`
	Config          session.Config  `json:"config"`
	Source          string          `json:"source"`
	TotalSpins      int             `json:"total_spins"`
	SpinsEvaluated  int             `json:"spins_evaluated"`
	Hits            int             `json:"hits"`
	Misses          int             `json:"misses"`
	Skipped         int             `json:"skipped"`
	Resets          int             `json:"resets"`
	StartingBalance int             `json:"starting_balance"`
	FinalBalance    int             `json:"final_balance"`
	LowestBalance   int             `json:"lowest_balance"`
	HighestBalance  int             `json:"highest_balance"`
	NetProfit       int             `json:"net_profit"`
	Wagered         int             `json:"wagered"`
	HitRate         decimal.Decimal `json:"hit_rate"`
	ROI             decimal.Decimal `json:"roi"`
	CreatedAt       *time.Time      `json:"created_at,omitempty"`
	Rounds          []Round         `json:"rounds,omitempty"`
}

type BatchResponse struct {
	Runs           int              `json:"runs"`
	SpinsPerRun    int              `json:"spins_per_run"`
	MeanNetProfit  decimal.Decimal  `json:"mean_net_profit"`
	MeanHitRate    decimal.Decimal  `json:"mean_hit_rate"`
	BestNetProfit  int              `json:"best_net_profit"`
	WorstNetProfit int              `json:"worst_net_profit"`
	LowestBalance  int              `json:"lowest_balance"`
	ProfitableRuns int              `json:"profitable_runs"`
	Reports        []ReportResponse `json:"reports"`
}
