package seed

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"spin2win/internal/engine/partition"
)

func nineBuilder() *Builder {
	return NewBuilder(partition.MustForScheme(partition.NineGroup), Filler{Mode: FillerDeterministic})
}

func TestBuildFourSameGroup(t *testing.T) {
	b := nineBuilder().Build([]int{32, 15, 19, 4})

	assert.Equal(t, "1111", b.Seed.Text)
	assert.Equal(t, 1111, b.Seed.Value)
	assert.False(t, b.Seed.Mirrored)
	assert.Equal(t, []int{4, 15, 19, 32}, b.Prediction)
}

func TestBuildChronologicalOrder(t *testing.T) {
	// A=1, B=2, C=3, D=4
	b := nineBuilder().Build([]int{32, 21, 34, 36})

	assert.Equal(t, [Length]int{1, 2, 3, 4}, b.Seed.Digits)
	assert.Equal(t, "1234", b.Seed.Text)
	assert.Len(t, b.Prediction, 16)
}

func TestBuildMirrorOnZero(t *testing.T) {
	b := nineBuilder().Build([]int{32, 0, 21, 34, 36})

	assert.True(t, b.Seed.Mirrored)
	assert.Equal(t, "4321", b.Seed.Text)
}

func TestBuildPadsWithDeterministicFiller(t *testing.T) {
	b := nineBuilder().Build([]int{0, 21, 34})

	// 2,3 + 0,0 -> разворот
	assert.Equal(t, [Length]int{0, 0, 3, 2}, b.Seed.Digits)
	assert.Equal(t, "0032", b.Seed.Text)
	assert.Equal(t, 32, b.Seed.Value)
	assert.Equal(t, 2, b.Seed.Padded)
	assert.Len(t, b.Prediction, 8)
}

func TestBuildAllZeroYieldsEmptyPrediction(t *testing.T) {
	b := nineBuilder().Build([]int{0, 0, 0, 0})

	assert.Equal(t, "0000", b.Seed.Text)
	assert.True(t, b.Seed.Mirrored)
	assert.Empty(t, b.Prediction)
}

func TestBuildTwelveGroupTakesLastFourCharacters(t *testing.T) {
	p := partition.MustForScheme(partition.TwelveGroup)
	b := NewBuilder(p, Filler{}).Build([]int{22, 7, 35})

	// 10, 11, 12 -> "101112" -> "1112"
	assert.Equal(t, "1112", b.Seed.Text)
	// цифры 1 и 2 -> G1 и G2
	assert.Equal(t, []int{2, 4, 15, 19, 21, 32}, b.Prediction)
}

func TestRandomFillerIsReproducibleAndNonZero(t *testing.T) {
	p := partition.MustForScheme(partition.NineGroup)
	mk := func() *Builder {
		return NewBuilder(p, Filler{Mode: FillerRandom, Rand: rand.New(rand.NewPCG(7, 7))})
	}

	first := mk().Build(nil)
	second := mk().Build(nil)
	require.Equal(t, first.Seed, second.Seed)
	for _, d := range first.Seed.Digits {
		assert.GreaterOrEqual(t, d, 1)
		assert.LessOrEqual(t, d, 9)
	}
	assert.NotEmpty(t, first.Prediction)
}

func TestSeedRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var digits [Length]int
		for i := range digits {
			digits[i] = rapid.IntRange(0, 9).Draw(t, fmt.Sprintf("d%d", i))
		}
		s := FromDigits(digits)

		if s.Text != fmt.Sprintf("%04d", s.Value) {
			t.Fatalf("text %q does not match value %d", s.Text, s.Value)
		}
		for i, c := range s.Text {
			if int(c-'0') != digits[i] {
				t.Fatalf("digit %d: got %c want %d", i, c, digits[i])
			}
		}
	})
}

func TestMirrorIffZeroPresent(t *testing.T) {
	p := partition.MustForScheme(partition.NineGroup)
	b := NewBuilder(p, Filler{})

	rapid.Check(t, func(t *rapid.T) {
		window := rapid.SliceOfN(rapid.IntRange(0, 36), 1, 12).Draw(t, "window")

		hasZero := false
		var withoutZero []int
		for _, n := range window {
			if n == 0 {
				hasZero = true
				continue
			}
			withoutZero = append(withoutZero, n)
		}

		got := b.Build(window)
		plain := b.Build(withoutZero)

		if got.Seed.Mirrored != hasZero {
			t.Fatalf("mirrored=%v hasZero=%v", got.Seed.Mirrored, hasZero)
		}
		if plain.Seed.Mirrored {
			t.Fatalf("window without zero must not mirror")
		}

		want := plain.Seed.Digits
		if hasZero {
			for i, j := 0, Length-1; i < j; i, j = i+1, j-1 {
				want[i], want[j] = want[j], want[i]
			}
		}
		if got.Seed.Digits != want {
			t.Fatalf("digits %v, want %v", got.Seed.Digits, want)
		}
	})
}
