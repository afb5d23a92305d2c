package session

import (
	"errors"
	"fmt"

	"spin2win/internal/engine/partition"
	"spin2win/internal/engine/seed"
	"spin2win/internal/engine/staking"
)

var ErrInvalidConfig = errors.New("invalid session config")

// OnHit Что делать после попадания
type OnHit string

const (
	OnHitResetSession   OnHit = "reset_session"
	OnHitResetStakeOnly OnHit = "reset_stake_only"
)

// Cadence Как часто пересобирать сид в активном состоянии
type Cadence string

const (
	// RebuildEveryWindow Каждые W спинов
	RebuildEveryWindow Cadence = "window"
	// RebuildEverySpin После каждого спина
	RebuildEverySpin Cadence = "spin"
)

const (
	defaultWindowSize       = 4
	defaultBaseUnit         = 1
	defaultStartingBalance  = 1000
	defaultPayoutMultiplier = 36
	// maxPayoutMultiplier Выплата не больше 36 за каждый из 37 номеров
	maxPayoutMultiplier = 36 * 37
	// maxStartingBalance Запас до переполнения int при накоплении выигрышей
	maxStartingBalance = 1 << 50
	// randomHitSampleSize Размер случайной выборки в режиме simulated_random_hit
	randomHitSampleSize = 12
)

// Config Настройки одной сессии
type Config struct {
	Scheme                partition.Scheme `json:"partition_scheme" yaml:"partition_scheme"`
	WindowSize            int              `json:"window_size" yaml:"window_size"`
	Staking               staking.Kind     `json:"staking_policy" yaml:"staking_policy"`
	StakeMode             staking.Mode     `json:"stake_mode" yaml:"stake_mode"`
	BaseUnit              int              `json:"base_unit" yaml:"base_unit"`
	StartingBalance       int              `json:"starting_balance" yaml:"starting_balance"`
	PayoutMultiplier      int              `json:"payout_multiplier" yaml:"payout_multiplier"`
	OnHit                 OnHit            `json:"on_hit" yaml:"on_hit"`
	RebuildEvery          Cadence          `json:"rebuild_every" yaml:"rebuild_every"`
	FillerMode            seed.FillerMode  `json:"filler_digit_mode" yaml:"filler_digit_mode"`
	FillerDigit           int              `json:"filler_digit" yaml:"filler_digit"`
	RandomSeed            uint64           `json:"random_seed" yaml:"random_seed"`
	Numerology            bool             `json:"numerology" yaml:"numerology"`
	SimulatedRandomHit    bool             `json:"simulated_random_hit" yaml:"simulated_random_hit"`
	PreserveLifetimeStats bool             `json:"preserve_lifetime_stats" yaml:"preserve_lifetime_stats"`
	CreditGross           bool             `json:"credit_gross" yaml:"credit_gross"`
}

// WithDefaults Заполняет пустые поля значениями по умолчанию.
// StartingBalance = 0 допустим, поэтому он не подставляется.
func (c Config) WithDefaults() Config {
	if c.Scheme == "" {
		c.Scheme = partition.NineGroup
	}
	if c.WindowSize == 0 {
		c.WindowSize = defaultWindowSize
	}
	if c.Staking == "" {
		c.Staking = staking.Fibonacci
	}
	if c.StakeMode == "" {
		c.StakeMode = staking.PerNumber
	}
	if c.BaseUnit == 0 {
		c.BaseUnit = defaultBaseUnit
	}
	if c.PayoutMultiplier == 0 {
		c.PayoutMultiplier = defaultPayoutMultiplier
	}
	if c.OnHit == "" {
		c.OnHit = OnHitResetStakeOnly
	}
	if c.RebuildEvery == "" {
		c.RebuildEvery = RebuildEveryWindow
	}
	if c.FillerMode == "" {
		c.FillerMode = seed.FillerDeterministic
	}
	return c
}

// DefaultConfig Конфигурация по умолчанию
func DefaultConfig() Config {
	return Config{StartingBalance: defaultStartingBalance}.WithDefaults()
}

// Validate Проверка значений после WithDefaults
func (c Config) Validate() error {
	if c.WindowSize < 1 || c.WindowSize > partition.MaxNumber {
		return fmt.Errorf("%w: window size must be in 1..%d, got %d", ErrInvalidConfig, partition.MaxNumber, c.WindowSize)
	}
	if c.BaseUnit <= 0 || c.BaseUnit > staking.MaxBaseUnit {
		return fmt.Errorf("%w: base unit must be in 1..%d", ErrInvalidConfig, staking.MaxBaseUnit)
	}
	if c.PayoutMultiplier <= 0 || c.PayoutMultiplier > maxPayoutMultiplier {
		return fmt.Errorf("%w: payout multiplier must be in 1..%d", ErrInvalidConfig, maxPayoutMultiplier)
	}
	if c.StartingBalance < 0 || c.StartingBalance > maxStartingBalance {
		return fmt.Errorf("%w: starting balance must be in 0..%d", ErrInvalidConfig, maxStartingBalance)
	}
	switch c.Staking {
	case staking.Doubling, staking.Fibonacci:
	default:
		return fmt.Errorf("%w: unknown staking policy %q", ErrInvalidConfig, c.Staking)
	}
	switch c.StakeMode {
	case staking.PerNumber, staking.Pooled:
	default:
		return fmt.Errorf("%w: unknown stake mode %q", ErrInvalidConfig, c.StakeMode)
	}
	switch c.OnHit {
	case OnHitResetSession, OnHitResetStakeOnly:
	default:
		return fmt.Errorf("%w: unknown on_hit %q", ErrInvalidConfig, c.OnHit)
	}
	switch c.RebuildEvery {
	case RebuildEveryWindow, RebuildEverySpin:
	default:
		return fmt.Errorf("%w: unknown rebuild cadence %q", ErrInvalidConfig, c.RebuildEvery)
	}
	switch c.FillerMode {
	case seed.FillerDeterministic, seed.FillerRandom:
	default:
		return fmt.Errorf("%w: unknown filler mode %q", ErrInvalidConfig, c.FillerMode)
	}
	if c.FillerDigit < 0 || c.FillerDigit > 9 {
		return fmt.Errorf("%w: filler digit must be 0..9", ErrInvalidConfig)
	}
	return nil
}
