package staking

import "fmt"

// Kind Тип прогрессии ставок
type Kind string

const (
	Doubling  Kind = "doubling"
	Fibonacci Kind = "fibonacci"
)

// Mode Как ставка раскладывается по номерам
type Mode string

const (
	// PerNumber Ставка на каждый номер прогноза
	PerNumber Mode = "per_number"
	// Pooled Одна общая ставка на весь прогноз
	Pooled Mode = "pooled"
)

const (
	// MaxDoublingUnit Потолок юнита удвоения, чтобы не переполнить int
	MaxDoublingUnit = 1 << 40
	// MaxBaseUnit Потолок базового юнита: base*34 для Фибоначчи не выходит за MaxDoublingUnit
	MaxBaseUnit = MaxDoublingUnit / 34
)

// FibonacciSequence Фиксированная последовательность шагов
var FibonacciSequence = [...]int{1, 1, 2, 3, 5, 8, 13, 21, 34}

// State Состояние прогрессии для отображения
type State struct {
	Unit         int `json:"unit"`
	StreakOrStep int `json:"streak_or_step"`
}

// Policy Прогрессия ставок
type Policy interface {
	// Stake Ставка на следующий раунд (всегда > 0)
	Stake() int
	Win()
	Loss()
	Reset()
	State() State
	Kind() Kind
}

// New Создаёт прогрессию. base — базовый юнит в 1..MaxBaseUnit
func New(kind Kind, base int) (Policy, error) {
	if base <= 0 || base > MaxBaseUnit {
		return nil, fmt.Errorf("base unit must be in 1..%d, got %d", MaxBaseUnit, base)
	}
	switch kind {
	case Doubling:
		return NewDoubling(base), nil
	case Fibonacci:
		return NewFibonacci(base), nil
	default:
		return nil, fmt.Errorf("unknown staking policy %q", kind)
	}
}

// NumbersBet Сколько номеров покрывает ставка в данном режиме
func NumbersBet(mode Mode, predictionSize int) int {
	if mode == Pooled {
		return 1
	}
	return predictionSize
}
