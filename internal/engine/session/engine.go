package session

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"spin2win/internal/engine/kaprekar"
	"spin2win/internal/engine/ledger"
	"spin2win/internal/engine/partition"
	"spin2win/internal/engine/seed"
	"spin2win/internal/engine/staking"
)

var ErrInvalidSpin = errors.New("invalid spin value")

// State Состояние автомата сессии
type State string

const (
	StateCollecting State = "collecting"
	StateActive     State = "active"
)

// Engine Движок одной сессии: окно спинов, сид, прогрессия ставок, банкролл.
// Не потокобезопасен: хост держит один мьютекс на сессию.
type Engine struct {
	cfg       Config
	partition *partition.Partition
	builder   *seed.Builder
	policy    staking.Policy
	ledger    *ledger.Ledger
	rng       *rand.Rand

	state      State
	window     []int
	current    *seed.Build
	transform  *kaprekar.Trace
	sinceBuild int
	resets     int
}

// New Создаёт и настраивает движок
func New(cfg Config) (*Engine, error) {
	e := &Engine{}
	if err := e.Configure(cfg); err != nil {
		return nil, err
	}
	return e, nil
}

// Configure Применяет конфигурацию и сбрасывает всё состояние.
// При ошибке состояние движка не меняется.
func (e *Engine) Configure(cfg Config) error {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	p, err := partition.ForScheme(cfg.Scheme)
	if err != nil {
		return err
	}

	policy, err := staking.New(cfg.Staking, cfg.BaseUnit)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	var opts []ledger.Option
	if cfg.CreditGross {
		opts = append(opts, ledger.WithGrossCredit())
	}

	e.cfg = cfg
	e.partition = p
	e.policy = policy
	e.ledger = ledger.New(cfg.StartingBalance, opts...)
	e.Reset()

	return nil
}

// Config Текущая конфигурация (с подставленными значениями по умолчанию)
func (e *Engine) Config() Config {
	return e.cfg
}

// Reset Возвращает сессию к начальному состоянию текущей конфигурации.
// Идемпотентен: два вызова подряд дают то же, что и один.
func (e *Engine) Reset() {
	e.rng = rand.New(rand.NewPCG(e.cfg.RandomSeed, e.cfg.RandomSeed^0x9e3779b97f4a7c15))
	e.builder = seed.NewBuilder(e.partition, seed.Filler{
		Mode:  e.cfg.FillerMode,
		Digit: e.cfg.FillerDigit,
		Rand:  e.rng,
	})
	e.ledger.Reset(e.cfg.PreserveLifetimeStats)
	e.clear()
	e.resets = 0
}

// clear Сброс окна и прогрессии без пересоздания генератора
func (e *Engine) clear() {
	e.state = StateCollecting
	e.window = e.window[:0]
	e.current = nil
	e.transform = nil
	e.sinceBuild = 0
	e.policy.Reset()
}

// Submit Обрабатывает один спин полностью: окно -> оценка ставки -> банкролл -> пересборка сида.
// Номер вне 0..36 отклоняется до изменения состояния.
func (e *Engine) Submit(n int) (Result, error) {
	if !partition.ValidNumber(n) {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidSpin, n)
	}

	res := Result{Spin: n}

	if e.state == StateCollecting {
		e.push(n)
		if len(e.window) >= e.cfg.WindowSize {
			e.rebuild()
			e.state = StateActive
			res.Rebuilt = true
		}
		e.fill(&res)
		return res, nil
	}

	// Ставка сыграна на прогноз, собранный до этого спина
	prediction := e.current.Prediction
	res.BetSeed = e.current.Seed.Text
	res.BetOn = slices.Clone(prediction)

	hit := false
	if len(prediction) == 0 {
		res.Skipped = true
	} else {
		hit = e.isHit(n, prediction)
		stake := e.policy.Stake()
		numbersBet := staking.NumbersBet(e.cfg.StakeMode, len(prediction))
		net := e.ledger.ApplyOutcome(hit, stake, numbersBet, e.cfg.PayoutMultiplier)
		if hit {
			e.policy.Win()
		} else {
			e.policy.Loss()
		}

		res.Hit = &hit
		res.Net = &net
		res.Stake = stake
		res.NumbersBet = numbersBet
	}

	e.push(n)
	e.sinceBuild++

	switch {
	case hit && e.cfg.OnHit == OnHitResetSession:
		// Снимок банкролла после выигрыша, потом полная очистка
		res.Balance = e.ledger.Balance
		res.Ledger = e.ledger.Snapshot()
		e.ledger.Reset(e.cfg.PreserveLifetimeStats)
		e.clear()
		e.resets++
		res.Reset = true
		res.State = e.state
		res.StakeState = e.policy.State()
		return res, nil
	case e.rebuildDue():
		e.rebuild()
		res.Rebuilt = true
	}

	e.fill(&res)
	return res, nil
}

// Snapshot Копия видимого состояния
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		State:      e.state,
		Window:     slices.Clone(e.window),
		StakeState: e.policy.State(),
		Ledger:     e.ledger.Snapshot(),
		Config:     e.cfg,
		Resets:     e.resets,
	}
	if e.current != nil {
		sd := e.current.Seed
		s.Seed = &sd
		s.Prediction = slices.Clone(e.current.Prediction)
	}
	if e.transform != nil {
		tr := *e.transform
		s.Transform = &tr
	}
	return s
}

// push Добавляет спин, храня только последние W
func (e *Engine) push(n int) {
	e.window = append(e.window, n)
	if over := len(e.window) - e.cfg.WindowSize; over > 0 {
		e.window = append(e.window[:0], e.window[over:]...)
	}
}

func (e *Engine) rebuildDue() bool {
	if e.cfg.RebuildEvery == RebuildEverySpin {
		return true
	}
	return e.sinceBuild >= e.cfg.WindowSize
}

func (e *Engine) rebuild() {
	b := e.builder.Build(e.window)
	e.current = &b
	e.sinceBuild = 0

	e.transform = nil
	if e.cfg.Numerology {
		// Текст сида всегда 4 цифры, ошибки быть не может
		if tr, err := kaprekar.Run(b.Seed.Text); err == nil {
			e.transform = &tr
		}
	}
}

func (e *Engine) isHit(n int, prediction []int) bool {
	if e.cfg.SimulatedRandomHit {
		// Воспроизводит демо-режим: попадание по случайной выборке, прогноз не учитывается
		return slices.Contains(e.rng.Perm(partition.MaxNumber + 1)[:randomHitSampleSize], n)
	}
	_, found := slices.BinarySearch(prediction, n)
	return found
}

func (e *Engine) fill(res *Result) {
	res.State = e.state
	res.Balance = e.ledger.Balance
	res.StakeState = e.policy.State()
	res.Ledger = e.ledger.Snapshot()
	if e.current != nil {
		sd := e.current.Seed
		res.Seed = &sd
		res.Prediction = slices.Clone(e.current.Prediction)
	}
	if e.transform != nil {
		tr := *e.transform
		res.Transform = &tr
	}
}
