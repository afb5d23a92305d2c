package seed

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strconv"

	"spin2win/internal/engine/partition"
)

// Length Количество цифр в сиде
const Length = 4

// FillerMode Политика добивки недостающих цифр
type FillerMode string

const (
	// FillerDeterministic Фиксированная цифра (по умолчанию 0)
	FillerDeterministic FillerMode = "deterministic"
	// FillerRandom Случайная цифра из 1..min(9, количество групп)
	FillerRandom FillerMode = "random"
)

// Filler Настройка добивки
type Filler struct {
	Mode  FillerMode
	Digit int
	// Rand Источник для режима random. Для воспроизводимости передавайте с фиксированным seed.
	Rand *rand.Rand
}

// Seed Четырёхзначный код
type Seed struct {
	Digits   [Length]int
	Text     string
	Value    int
	Mirrored bool
	// Padded Сколько цифр добито филлером
	Padded int
}

// FromDigits Собирает сид из готовых цифр без разворота
func FromDigits(digits [Length]int) Seed {
	value := 0
	for _, d := range digits {
		value = value*10 + d
	}
	return Seed{
		Digits: digits,
		Text:   fmt.Sprintf("%0*d", Length, value),
		Value:  value,
	}
}

// Build Результат построения: сид и набор номеров для ставки
type Build struct {
	Seed       Seed
	Prediction []int
}

// Builder Строит сид из окна спинов
type Builder struct {
	partition *partition.Partition
	filler    Filler
}

// NewBuilder Создаёт построитель. Для random без источника берётся источник с seed 1.
func NewBuilder(p *partition.Partition, filler Filler) *Builder {
	if filler.Mode == "" {
		filler.Mode = FillerDeterministic
	}
	if filler.Mode == FillerRandom && filler.Rand == nil {
		filler.Rand = rand.New(rand.NewPCG(1, 1))
	}
	return &Builder{partition: p, filler: filler}
}

// Build Строит сид из анализируемого окна (спины в хронологическом порядке).
// Спины нулевой группы включают зеркальный режим и в цифры не попадают.
func (b *Builder) Build(window []int) Build {
	mirror := false
	var text []byte
	for _, n := range window {
		if b.partition.IsZero(n) {
			mirror = true
			continue
		}
		text = strconv.AppendInt(text, int64(b.partition.DigitOf(n)), 10)
	}

	// Берём последние 4 цифры, самая свежая — последняя
	if len(text) > Length {
		text = text[len(text)-Length:]
	}

	var digits [Length]int
	for i, c := range text {
		digits[i] = int(c - '0')
	}

	padded := 0
	for i := len(text); i < Length; i++ {
		digits[i] = b.fillerDigit()
		padded++
	}

	if mirror {
		for i, j := 0, Length-1; i < j; i, j = i+1, j-1 {
			digits[i], digits[j] = digits[j], digits[i]
		}
	}

	s := FromDigits(digits)
	s.Mirrored = mirror
	s.Padded = padded

	return Build{
		Seed:       s,
		Prediction: b.Predict(s),
	}
}

// Predict Объединение номеров всех групп, чья ненулевая цифра есть в сиде
func (b *Builder) Predict(s Seed) []int {
	seen := make(map[int]bool, Length)
	var out []int
	for _, d := range s.Digits {
		if d == partition.ZeroDigit || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, b.partition.Numbers(d)...)
	}
	sort.Ints(out)
	return out
}

func (b *Builder) fillerDigit() int {
	if b.filler.Mode != FillerRandom {
		return b.filler.Digit
	}
	hi := min(9, b.partition.GroupCount())
	return 1 + b.filler.Rand.IntN(hi)
}
