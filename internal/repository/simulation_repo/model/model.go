package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Report Строка таблицы simulation_reports
type Report struct {
	ID              string
	Fingerprint     string
	Preset          string
	Config          []byte
	Source          string
	TotalSpins      int
	SpinsEvaluated  int
	Hits            int
	Misses          int
	Skipped         int
	Resets          int
	StartingBalance int64
	FinalBalance    int64
	LowestBalance   int64
	HighestBalance  int64
	NetProfit       int64
	Wagered         int64
	HitRate         decimal.Decimal
	ROI             decimal.Decimal
	CreatedAt       time.Time
}

// Round Строка таблицы simulation_rounds
type Round struct {
	ReportID string
	Index    int
	Spin     int
	Seed     string
	Hit      bool
	Stake    int64
	Net      int64
	Balance  int64
	Reset    bool
}
