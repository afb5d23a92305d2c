package staking

// DoublingPolicy Удвоение юнита начиная со второго проигрыша подряд
type DoublingPolicy struct {
	base       int
	unit       int
	lossStreak int
}

func NewDoubling(base int) *DoublingPolicy {
	return &DoublingPolicy{base: base, unit: base}
}

func (d *DoublingPolicy) Stake() int {
	return d.unit
}

func (d *DoublingPolicy) Win() {
	d.Reset()
}

func (d *DoublingPolicy) Loss() {
	d.lossStreak++
	if d.lossStreak < 2 {
		return
	}
	// Умножение только пока результат не превышает потолок
	if d.unit > MaxDoublingUnit/2 {
		d.unit = MaxDoublingUnit
		return
	}
	d.unit *= 2
}

func (d *DoublingPolicy) Reset() {
	d.unit = d.base
	d.lossStreak = 0
}

func (d *DoublingPolicy) State() State {
	return State{Unit: d.unit, StreakOrStep: d.lossStreak}
}

func (d *DoublingPolicy) Kind() Kind {
	return Doubling
}
