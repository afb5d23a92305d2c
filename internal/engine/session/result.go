package session

import (
	"spin2win/internal/engine/kaprekar"
	"spin2win/internal/engine/ledger"
	"spin2win/internal/engine/seed"
	"spin2win/internal/engine/staking"
)

// Result Итог обработки одного спина
type Result struct {
	Spin  int
	State State

	// BetSeed, BetOn Сид и номера, на которые была сделана ставка этим спином
	BetSeed string
	BetOn   []int

	Hit        *bool
	Net        *int
	Stake      int
	NumbersBet int
	// Skipped Прогноз пуст (сид из одних нулей) — раунд без ставки
	Skipped bool

	// Seed, Prediction Актуальный прогноз на следующий спин
	Seed       *seed.Seed
	Prediction []int
	Rebuilt    bool
	Transform  *kaprekar.Trace

	Balance    int
	StakeState staking.State
	Ledger     ledger.Ledger
	// Reset Сессия сброшена после попадания (on_hit = reset_session)
	Reset bool
}

// Snapshot Видимое состояние сессии
type Snapshot struct {
	State      State
	Window     []int
	Seed       *seed.Seed
	Prediction []int
	Transform  *kaprekar.Trace
	StakeState staking.State
	Ledger     ledger.Ledger
	Config     Config
	// Resets Сколько раз сессия сбрасывалась после попадания
	Resets int
}
