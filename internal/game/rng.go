package game

import "math/rand"

// Rand is the random source the simulation draws from. Gap placement and
// particle jitter go through this interface so tests can script exact
// sequences instead of relying on a live generator.
type Rand interface {
	// IntBetween returns a uniform integer in [lo, hi], both inclusive.
	IntBetween(lo, hi int) int

	// FloatBetween returns a uniform float in [lo, hi).
	FloatBetween(lo, hi float64) float64
}

type seededRand struct {
	r *rand.Rand
}

// NewRand returns a Rand backed by math/rand with the given seed.
func NewRand(seed int64) Rand {
	return &seededRand{r: rand.New(rand.NewSource(seed))}
}

func (s *seededRand) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Intn(hi-lo+1)
}

func (s *seededRand) FloatBetween(lo, hi float64) float64 {
	return lo + s.r.Float64()*(hi-lo)
}
