package partition

import (
	"errors"
	"fmt"
	"sort"
)

const (
	// MinNumber Минимальный номер на колесе
	MinNumber = 0
	// MaxNumber Максимальный номер на колесе (европейская рулетка)
	MaxNumber = 36
	// wheelSize Количество ячеек колеса
	wheelSize = MaxNumber - MinNumber + 1
	// ZeroDigit Цифра группы, в которую входит только ноль
	ZeroDigit = 0
)

var ErrMalformedPartition = errors.New("malformed partition")

// Scheme Имя схемы разбиения колеса
type Scheme string

const (
	TwelveGroup Scheme = "twelve_group"
	NineGroup   Scheme = "nine_group"
)

// Group Одна ячейка разбиения: метка, цифра и номера
type Group struct {
	Label   string
	Digit   int
	Numbers []int
}

// Partition Разбиение колеса на группы.
// Таблица проверяется один раз в New, дальше поиск не может упасть.
type Partition struct {
	scheme  Scheme
	groups  []Group
	byDigit map[int]Group
	digitOf [wheelSize]int
}

// New Проверяет таблицу и строит разбиение.
// Каждый номер 0..36 должен встречаться ровно один раз, ноль — в отдельной группе с цифрой 0.
func New(scheme Scheme, groups []Group) (*Partition, error) {
	var seen [wheelSize]bool
	byDigit := make(map[int]Group, len(groups))
	p := &Partition{scheme: scheme}

	for _, g := range groups {
		if _, dup := byDigit[g.Digit]; dup {
			return nil, fmt.Errorf("%w: duplicate digit %d", ErrMalformedPartition, g.Digit)
		}
		if g.Digit < 0 {
			return nil, fmt.Errorf("%w: negative digit %d", ErrMalformedPartition, g.Digit)
		}
		if len(g.Numbers) == 0 {
			return nil, fmt.Errorf("%w: group %q is empty", ErrMalformedPartition, g.Label)
		}
		for _, n := range g.Numbers {
			if n < MinNumber || n > MaxNumber {
				return nil, fmt.Errorf("%w: number %d out of range", ErrMalformedPartition, n)
			}
			if seen[n] {
				return nil, fmt.Errorf("%w: number %d duplicated", ErrMalformedPartition, n)
			}
			seen[n] = true
			p.digitOf[n] = g.Digit
		}

		numbers := append([]int(nil), g.Numbers...)
		g.Numbers = numbers
		byDigit[g.Digit] = g
		p.groups = append(p.groups, g)
	}

	for n, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("%w: number %d missing", ErrMalformedPartition, n)
		}
	}

	// Ноль всегда сам по себе
	zero, ok := byDigit[ZeroDigit]
	if !ok || len(zero.Numbers) != 1 || zero.Numbers[0] != 0 {
		return nil, fmt.Errorf("%w: zero must form its own group with digit %d", ErrMalformedPartition, ZeroDigit)
	}

	sort.Slice(p.groups, func(i, j int) bool { return p.groups[i].Digit < p.groups[j].Digit })
	p.byDigit = byDigit

	return p, nil
}

// Scheme Имя схемы
func (p *Partition) Scheme() Scheme {
	return p.scheme
}

// GroupOf Группа номера. n должен быть в диапазоне 0..36
func (p *Partition) GroupOf(n int) Group {
	return p.byDigit[p.digitOf[n]]
}

// DigitOf Цифра группы номера
func (p *Partition) DigitOf(n int) int {
	return p.digitOf[n]
}

// IsZero Входит ли номер в нулевую группу
func (p *Partition) IsZero(n int) bool {
	return p.digitOf[n] == ZeroDigit
}

// Numbers Номера группы с цифрой digit (nil, если такой группы нет)
func (p *Partition) Numbers(digit int) []int {
	g, ok := p.byDigit[digit]
	if !ok {
		return nil
	}
	return g.Numbers
}

// GroupCount Количество ненулевых групп
func (p *Partition) GroupCount() int {
	return len(p.groups) - 1
}

// Groups Копия всех групп по возрастанию цифры
func (p *Partition) Groups() []Group {
	out := make([]Group, len(p.groups))
	copy(out, p.groups)
	return out
}

// ValidNumber Проверка номера спина
func ValidNumber(n int) bool {
	return n >= MinNumber && n <= MaxNumber
}
