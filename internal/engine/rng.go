// Package engine implements the franchise simulation core: prospect
// generation, scouting, draft AI, player development, financial simulation
// and the tier-promotion state machine. Every function is a pure function
// of its inputs plus an explicit randomness source; the engine holds no
// state between calls and performs no I/O.
package engine

import (
	"math"
	"math/rand"
	"time"

	"github.com/stitts-dev/franchise-sim/internal/models"
)

// Source yields uniform floats in [0,1). Injectable so tests and replay
// tooling can supply deterministic sequences; production callers use
// NewTimeSource.
type Source interface {
	Float64() float64
}

type mathRandSource struct {
	r *rand.Rand
}

func (s *mathRandSource) Float64() float64 {
	return s.r.Float64()
}

// NewSource returns a seeded uniform source. Identical seeds produce
// identical sequences.
func NewSource(seed int64) Source {
	return &mathRandSource{r: rand.New(rand.NewSource(seed))}
}

// NewTimeSource returns a non-deterministic uniform source
func NewTimeSource() Source {
	return NewSource(time.Now().UnixNano())
}

// uniform draws a float in [lo, hi)
func uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// uniformInt draws an integer in [lo, hi] inclusive
func uniformInt(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + int(src.Float64()*float64(hi-lo+1))
}

// intn draws an integer in [0, n)
func intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	v := int(src.Float64() * float64(n))
	if v >= n { // Float64 can round up against the bound
		v = n - 1
	}
	return v
}

// chance rolls a probability check
func chance(src Source, p float64) bool {
	return src.Float64() < p
}

// shuffle permutes a slice in place using the supplied source
func shuffle[T any](src Source, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := intn(src, i+1)
		items[i], items[j] = items[j], items[i]
	}
}

// RatingSampler produces bounded-normal integer ratings. Samples are drawn
// with a Box-Muller transform, scaled to (mean, stdDev), rounded and
// clamped into [20,80].
type RatingSampler struct {
	src Source
}

// NewRatingSampler creates a sampler over the given uniform source
func NewRatingSampler(src Source) *RatingSampler {
	return &RatingSampler{src: src}
}

// normFloat64 draws a standard normal via Box-Muller. The first uniform
// draw must be non-zero or the logarithm blows up; re-sample until it is.
func (s *RatingSampler) normFloat64() float64 {
	u1 := s.src.Float64()
	for u1 == 0 {
		u1 = s.src.Float64()
	}
	u2 := s.src.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// Sample draws an integer rating from Normal(mean, stdDev) clamped to
// [20,80]
func (s *RatingSampler) Sample(mean, stdDev float64) int {
	v := s.normFloat64()*stdDev + mean
	return models.ClampRating(int(math.Round(v)))
}
