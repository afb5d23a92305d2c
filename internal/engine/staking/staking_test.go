package staking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDoublingStartsOnSecondLoss(t *testing.T) {
	p := NewDoubling(2)

	assert.Equal(t, 2, p.Stake())
	p.Loss()
	assert.Equal(t, 2, p.Stake(), "first loss keeps the unit")
	assert.Equal(t, State{Unit: 2, StreakOrStep: 1}, p.State())

	p.Loss()
	assert.Equal(t, 4, p.Stake())
	p.Loss()
	assert.Equal(t, 8, p.Stake())

	p.Win()
	assert.Equal(t, State{Unit: 2, StreakOrStep: 0}, p.State())
}

func TestDoublingIsCapped(t *testing.T) {
	p := NewDoubling(1)
	for i := 0; i < 200; i++ {
		p.Loss()
	}
	assert.Equal(t, MaxDoublingUnit, p.Stake())
}

func TestDoublingFromLargestBaseNeverDrops(t *testing.T) {
	p, err := New(Doubling, MaxBaseUnit)
	require.NoError(t, err)

	prev := p.Stake()
	for i := 0; i < 100; i++ {
		p.Loss()
		require.GreaterOrEqual(t, p.Stake(), prev)
		require.LessOrEqual(t, p.Stake(), MaxDoublingUnit)
		prev = p.Stake()
	}
	assert.Equal(t, MaxDoublingUnit, p.Stake())
}

func TestFibonacciSequence(t *testing.T) {
	p := NewFibonacci(1)
	var got []int
	for range FibonacciSequence {
		got = append(got, p.Stake())
		p.Loss()
	}
	assert.Equal(t, FibonacciSequence[:], got)

	p.Win()
	assert.Equal(t, 1, p.Stake())
	assert.Equal(t, 0, p.State().StreakOrStep)
}

func TestFibonacciClampsAfterLongLosingRun(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := rapid.IntRange(9, 500).Draw(t, "losses")
		base := rapid.IntRange(1, 100).Draw(t, "base")
		p := NewFibonacci(base)
		for i := 0; i < k; i++ {
			p.Loss()
		}
		if p.Stake() != 34*base {
			t.Fatalf("after %d losses stake=%d, want %d", k, p.Stake(), 34*base)
		}
	})
}

func TestDoublingProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := rapid.IntRange(1, 50).Draw(t, "base")
		outcomes := rapid.SliceOfN(rapid.Bool(), 1, 40).Draw(t, "wins")
		p := NewDoubling(base)

		streak := 0
		for _, win := range outcomes {
			before := p.Stake()
			if win {
				p.Win()
				streak = 0
				if p.Stake() != base {
					t.Fatalf("win must reset unit to base")
				}
				continue
			}
			p.Loss()
			streak++
			switch {
			case streak < 2 && p.Stake() != before:
				t.Fatalf("loss %d must not double", streak)
			case streak >= 2 && p.Stake() != min(before*2, MaxDoublingUnit):
				t.Fatalf("loss %d must double", streak)
			}
			if p.Stake() <= 0 {
				t.Fatalf("stake must stay positive")
			}
		}
	})
}

func TestNewValidates(t *testing.T) {
	_, err := New(Doubling, 0)
	require.Error(t, err)
	_, err = New(Doubling, MaxBaseUnit+1)
	require.Error(t, err)
	_, err = New(Fibonacci, 1<<62)
	require.Error(t, err)
	_, err = New("martingale", 1)
	require.Error(t, err)

	p, err := New(Fibonacci, 3)
	require.NoError(t, err)
	assert.Equal(t, Fibonacci, p.Kind())
	assert.Equal(t, 3, p.Stake())
}

func TestNumbersBet(t *testing.T) {
	assert.Equal(t, 1, NumbersBet(Pooled, 12))
	assert.Equal(t, 12, NumbersBet(PerNumber, 12))
}
