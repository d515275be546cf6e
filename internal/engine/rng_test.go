package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/stitts-dev/franchise-sim/internal/engine"
	"github.com/stitts-dev/franchise-sim/internal/models"
)

// seqSource replays a fixed sequence of uniforms, wrapping at the end
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestRatingSampler_BoundsOverManySamples(t *testing.T) {
	sampler := engine.NewRatingSampler(engine.NewSource(1))
	for i := 0; i < 5000; i++ {
		v := sampler.Sample(50, 15)
		assert.GreaterOrEqual(t, v, models.RatingMin)
		assert.LessOrEqual(t, v, models.RatingMax)
	}
}

func TestRatingSampler_DistributionShape(t *testing.T) {
	sampler := engine.NewRatingSampler(engine.NewSource(7))
	samples := make([]float64, 10000)
	for i := range samples {
		samples[i] = float64(sampler.Sample(50, 8))
	}

	mean := stat.Mean(samples, nil)
	stdDev := stat.StdDev(samples, nil)

	// With stdDev 8 almost nothing clamps, so the moments should be close
	// to the requested distribution
	assert.InDelta(t, 50.0, mean, 0.5)
	assert.InDelta(t, 8.0, stdDev, 0.5)
}

func TestRatingSampler_ZeroFirstUniformGuard(t *testing.T) {
	// A zero first draw would send math.Log to -Inf; the sampler must
	// re-draw instead of producing garbage
	src := &seqSource{vals: []float64{0, 0, 0.5, 0.5}}
	sampler := engine.NewRatingSampler(src)

	v := sampler.Sample(50, 10)
	assert.GreaterOrEqual(t, v, models.RatingMin)
	assert.LessOrEqual(t, v, models.RatingMax)
}

func TestRatingSampler_ExtremeMeansClamp(t *testing.T) {
	tests := []struct {
		name string
		mean float64
		want int
	}{
		{name: "far below floor clamps to 20", mean: -200, want: models.RatingMin},
		{name: "far above ceiling clamps to 80", mean: 300, want: models.RatingMax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sampler := engine.NewRatingSampler(engine.NewSource(3))
			assert.Equal(t, tt.want, sampler.Sample(tt.mean, 5))
		})
	}
}

func TestNewSource_DeterministicWithSeed(t *testing.T) {
	a := engine.NewSource(99)
	b := engine.NewSource(99)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Float64(), b.Float64())
	}
}
