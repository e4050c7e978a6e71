package vec

import "math/rand/v2"

// NewRand returns a deterministic generator for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func randf(rng *rand.Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// RandomDir returns a vector of length r pointing in a uniformly random
// direction. r must be positive.
func RandomDir(rng *rand.Rand, r float64) Point {
	// Rejection sampling over the enclosing square. The odds of a thousand
	// misses in a row are negligible.
	for i := 0; i < 1000; i++ {
		p := Point{randf(rng, -r, r), randf(rng, -r, r)}
		lengthSq := p.LengthSq()
		if lengthSq >= DefaultEpsilonSq && lengthSq <= r*r {
			return p.Mul(r / p.Length())
		}
	}
	return Point{r, 0}
}

// RandomBox returns a point with both components uniform in [min, max).
func RandomBox(rng *rand.Rand, min, max float64) Point {
	return Point{randf(rng, min, max), randf(rng, min, max)}
}
