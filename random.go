package ggbench

import "math/rand/v2"

// coordRange bounds every generated coordinate to [0, coordRange).
const coordRange = 500

// newGenerator returns a deterministic generator for seed.
func newGenerator(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// coord draws a coordinate in [0, 499]. Int32 is never negative.
func coord(r *rand.Rand) float64 {
	return float64(r.Int32() % coordRange)
}

// scaleFactor draws a uniform scale in [0.1, 5.1).
func scaleFactor(r *rand.Rand) float64 {
	return 5*r.Float64() + 0.1
}
