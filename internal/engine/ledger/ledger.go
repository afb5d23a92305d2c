package ledger

// Ledger Виртуальный банкролл сессии
type Ledger struct {
	Start     int `json:"start"`
	Balance   int `json:"balance"`
	Lowest    int `json:"lowest"`
	Highest   int `json:"highest"`
	Hits      int `json:"hits"`
	Misses    int `json:"misses"`
	NetProfit int `json:"net_profit"`
	Wagered   int `json:"wagered"`

	// creditGross Начислять на выигрыше всю выплату без вычета ставки
	creditGross bool
}

// Option Настройка леджера
type Option func(*Ledger)

// WithGrossCredit Баланс на выигрыше растёт на stake*multiplier, а не на net
func WithGrossCredit() Option {
	return func(l *Ledger) {
		l.creditGross = true
	}
}

// New Создаёт леджер со стартовым балансом
func New(start int, opts ...Option) *Ledger {
	l := &Ledger{}
	for _, o := range opts {
		o(l)
	}
	l.Start = start
	l.Reset(false)
	return l
}

// ApplyOutcome Применяет результат раунда и возвращает net.
// hit: net = stake*mult - stake*numbersBet; промах: net = -stake*numbersBet
func (l *Ledger) ApplyOutcome(hit bool, stake, numbersBet, payoutMultiplier int) int {
	cost := stake * numbersBet
	l.Wagered += cost

	var net int
	if hit {
		payout := stake * payoutMultiplier
		net = payout - cost
		if l.creditGross {
			l.Balance += payout
		} else {
			l.Balance += net
		}
		l.Hits++
	} else {
		net = -cost
		l.Balance += net
		l.Misses++
	}

	l.NetProfit = l.Balance - l.Start
	l.Lowest = min(l.Lowest, l.Balance)
	l.Highest = max(l.Highest, l.Balance)

	return net
}

// Reset Возвращает баланс к стартовому. keepLifetime оставляет счётчики попаданий/промахов
func (l *Ledger) Reset(keepLifetime bool) {
	hits, misses, wagered := l.Hits, l.Misses, l.Wagered

	l.Balance = l.Start
	l.Lowest = l.Start
	l.Highest = l.Start
	l.NetProfit = 0
	l.Hits, l.Misses, l.Wagered = 0, 0, 0

	if keepLifetime {
		l.Hits, l.Misses, l.Wagered = hits, misses, wagered
	}
}

// Snapshot Копия значений
func (l *Ledger) Snapshot() Ledger {
	return *l
}

// Spins Сколько раундов оценено
func (l *Ledger) Spins() int {
	return l.Hits + l.Misses
}
