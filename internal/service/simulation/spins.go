package simulation

import (
	"math/rand/v2"
	"slices"

	"spin2win/internal/engine/partition"
)

var liveSpins = []int{
	33, 19, 36, 17, 11, 35, 3, 29, 0, 9, 18, 29, 0, 13, 14, 10, 36, 14, 6, 33, 16, 34, 9, 28, 24, 11, 20,
	29, 2, 31, 35, 11, 3, 26, 18, 22, 28, 14, 3, 11, 29, 26, 18, 27, 14, 4, 4, 36, 16, 1, 10, 24, 33, 10,
	9, 12, 12, 11, 34, 1, 33, 0, 22, 30, 21, 35, 22, 28, 8, 4, 36, 24, 19, 25, 16, 3, 18, 19, 4, 15, 2, 20,
	4, 24, 17, 12, 21, 3, 21, 29, 12, 1, 17, 9, 11, 24, 18, 35, 25, 15, 14, 27, 13, 14, 22, 17, 34, 0, 24,
	36, 26, 22, 35, 9, 17, 1, 24, 8, 25, 12, 27, 16, 15, 15, 30, 31, 34, 28, 9, 35, 3, 29, 12, 21, 10, 2,
	20, 11, 17, 32, 11, 29, 9, 15,
}

// LiveSpins Записанная живая сессия (копия)
func LiveSpins() []int {
	return slices.Clone(liveSpins)
}

// RandomSpins Воспроизводимый список спинов: одинаковый seed даёт одинаковый список
func RandomSpins(count int, seed uint64) []int {
	rng := rand.New(rand.NewPCG(seed, seed^0xda3e39cb94b95bdb))
	out := make([]int, count)
	for i := range out {
		out[i] = rng.IntN(partition.MaxNumber + 1)
	}
	return out
}
