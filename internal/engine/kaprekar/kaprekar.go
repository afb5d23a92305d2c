package kaprekar

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

const (
	// Attractor Постоянная Капрекара для четырёхзначных чисел
	Attractor = 6174
	// MaxIterations Предел итераций. Любое не-репдиджит число сходится не более чем за 7 шагов
	MaxIterations = 8

	width = 4
)

var ErrInvalidCode = errors.New("code must be exactly 4 decimal digits")

// Step Один шаг преобразования
type Step struct {
	Current string `json:"current"`
	Desc    string `json:"desc"`
	Asc     string `json:"asc"`
	Result  string `json:"result"`
}

// Trace Полная трасса преобразования
type Trace struct {
	Input     string `json:"input"`
	Steps     []Step `json:"steps"`
	Converged bool   `json:"converged"`
}

// Run Повторяет desc - asc до 6174 или до предела итераций.
// Для репдиджитов (1111, 7777 ...) результат всегда 0 — возвращаем Converged=false.
func Run(code string) (Trace, error) {
	if len(code) != width {
		return Trace{}, fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return Trace{}, fmt.Errorf("%w: %q", ErrInvalidCode, code)
		}
	}

	tr := Trace{Input: code}
	current := code
	if current == pad(Attractor) {
		tr.Converged = true
		return tr, nil
	}

	for i := 0; i < MaxIterations; i++ {
		desc, asc := sortDigits(current)
		d, _ := strconv.Atoi(desc)
		a, _ := strconv.Atoi(asc)
		result := pad(d - a)

		tr.Steps = append(tr.Steps, Step{
			Current: current,
			Desc:    desc,
			Asc:     asc,
			Result:  result,
		})

		if d-a == Attractor {
			tr.Converged = true
			return tr, nil
		}
		current = result
	}

	return tr, nil
}

func sortDigits(code string) (desc, asc string) {
	b := []byte(code)
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	asc = string(b)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b), asc
}

func pad(n int) string {
	return fmt.Sprintf("%0*d", width, n)
}
