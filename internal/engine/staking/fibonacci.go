package staking

// FibonacciPolicy Шаг по последовательности Фибоначчи на проигрыше, сброс на выигрыше
type FibonacciPolicy struct {
	base int
	step int
}

func NewFibonacci(base int) *FibonacciPolicy {
	return &FibonacciPolicy{base: base}
}

// Stake Индекс всегда зажат последним элементом последовательности
func (f *FibonacciPolicy) Stake() int {
	idx := min(f.step, len(FibonacciSequence)-1)
	return f.base * FibonacciSequence[idx]
}

func (f *FibonacciPolicy) Win() {
	f.step = 0
}

func (f *FibonacciPolicy) Loss() {
	if f.step < len(FibonacciSequence)-1 {
		f.step++
	}
}

func (f *FibonacciPolicy) Reset() {
	f.step = 0
}

func (f *FibonacciPolicy) State() State {
	return State{Unit: f.Stake(), StreakOrStep: f.step}
}

func (f *FibonacciPolicy) Kind() Kind {
	return Fibonacci
}
