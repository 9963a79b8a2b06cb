// File: rng.go
// Role: Seed policy and the Fisher–Yates shuffle shared by Assign.
//
// math/rand.Rand is not goroutine-safe; do not share one Source between
// concurrent board constructions.
package resource

import "math/rand"

// defaultSeed replaces seed 0 so the zero configuration stays reproducible.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand. Seed 0 maps to defaultSeed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Shuffle permutes s in place, drawing one Intn per position from the end.
// Every permutation is equally likely when src is uniform.
func Shuffle[T any](s []T, src Source) {
	for i := len(s) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
