package rng

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlipReturnsValidOutcome(t *testing.T) {
	g := New()

	for i := 0; i < 100; i++ {
		outcome := g.Flip()
		assert.Contains(t, []Outcome{Heads, Tails}, outcome)
	}
}

func TestFlipDistribution(t *testing.T) {
	g := New()

	const draws = 10000
	counts := map[Outcome]int{}
	for i := 0; i < draws; i++ {
		counts[g.Flip()]++
	}

	require.Equal(t, draws, counts[Heads]+counts[Tails])

	// Fair coin over 10k draws: each side should land within 5 percentage
	// points of 50%. The chance of a fair source failing this is
	// vanishingly small (>10 sigma).
	assert.InDelta(t, draws/2, counts[Heads], draws*0.05)
	assert.InDelta(t, draws/2, counts[Tails], draws*0.05)
}

func TestFlipMany(t *testing.T) {
	g := New()

	tests := []struct {
		name string
		n    int
	}{
		{"two", 2},
		{"ten", 10},
		{"hundred", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := g.FlipMany(tt.n)

			require.Len(t, seq, tt.n)
			for _, outcome := range seq {
				assert.Contains(t, []Outcome{Heads, Tails}, outcome)
			}
		})
	}
}

func TestFlipManyZero(t *testing.T) {
	g := New()

	seq := g.FlipMany(0)

	// Empty but non-nil, so it serializes as [] rather than null.
	require.NotNil(t, seq)
	assert.Len(t, seq, 0)
}

func TestSeededGeneratorIsDeterministic(t *testing.T) {
	a := NewWithSource(rand.NewPCG(7, 11))
	b := NewWithSource(rand.NewPCG(7, 11))

	assert.Equal(t, a.FlipMany(50), b.FlipMany(50))
}
