package partition

import "fmt"

// Группы по три соседних номера на колесе + отдельный ноль
var twelveGroups = []Group{
	{Label: "G1", Digit: 1, Numbers: []int{32, 15, 19}},
	{Label: "G2", Digit: 2, Numbers: []int{4, 21, 2}},
	{Label: "G3", Digit: 3, Numbers: []int{25, 17, 34}},
	{Label: "G4", Digit: 4, Numbers: []int{6, 27, 13}},
	{Label: "G5", Digit: 5, Numbers: []int{36, 11, 30}},
	{Label: "G6", Digit: 6, Numbers: []int{8, 23, 10}},
	{Label: "G7", Digit: 7, Numbers: []int{5, 24, 16}},
	{Label: "G8", Digit: 8, Numbers: []int{33, 1, 20}},
	{Label: "G9", Digit: 9, Numbers: []int{14, 31, 9}},
	{Label: "G10", Digit: 10, Numbers: []int{22, 18, 29}},
	{Label: "G11", Digit: 11, Numbers: []int{7, 28, 12}},
	{Label: "G12", Digit: 12, Numbers: []int{35, 3, 26}},
	{Label: "G0", Digit: 0, Numbers: []int{0}},
}

// Группы A..I по четыре номера в порядке колеса + Z для нуля
var nineGroups = []Group{
	{Label: "A", Digit: 1, Numbers: []int{32, 15, 19, 4}},
	{Label: "B", Digit: 2, Numbers: []int{21, 2, 25, 17}},
	{Label: "C", Digit: 3, Numbers: []int{34, 6, 27, 13}},
	{Label: "D", Digit: 4, Numbers: []int{36, 11, 30, 8}},
	{Label: "E", Digit: 5, Numbers: []int{23, 10, 5, 24}},
	{Label: "F", Digit: 6, Numbers: []int{16, 33, 1, 20}},
	{Label: "G", Digit: 7, Numbers: []int{14, 31, 9, 22}},
	{Label: "H", Digit: 8, Numbers: []int{18, 29, 7, 28}},
	{Label: "I", Digit: 9, Numbers: []int{12, 35, 3, 26}},
	{Label: "Z", Digit: 0, Numbers: []int{0}},
}

// ForScheme Встроенная таблица для схемы
func ForScheme(scheme Scheme) (*Partition, error) {
	switch scheme {
	case TwelveGroup:
		return New(scheme, twelveGroups)
	case NineGroup:
		return New(scheme, nineGroups)
	default:
		return nil, fmt.Errorf("%w: unknown scheme %q", ErrMalformedPartition, scheme)
	}
}

// MustForScheme То же, что ForScheme, но паникует. Только для встроенных схем.
func MustForScheme(scheme Scheme) *Partition {
	p, err := ForScheme(scheme)
	if err != nil {
		panic(err)
	}
	return p
}
