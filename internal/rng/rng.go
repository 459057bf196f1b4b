// Package rng produces the random coin-flip outcomes served by the API.
//
// A draw yields one of exactly two labels, "heads" or "tails", each with
// probability 0.5. The default Generator draws from the process-wide
// math/rand/v2 source, which is safe to use from concurrently in-flight
// requests; each invocation is an independent draw.
package rng

import "math/rand/v2"

// Outcome is the result of a single coin flip.
type Outcome string

const (
	Heads Outcome = "heads"
	Tails Outcome = "tails"
)

// outcomes indexes the two labels so a draw is a uniform pick over [0, 2).
var outcomes = [2]Outcome{Heads, Tails}

// Generator produces coin-flip outcomes from a uniform source.
type Generator struct {
	intN func(n int) int
}

// New returns a Generator backed by the shared math/rand/v2 source.
// It may be called from any number of goroutines.
func New() *Generator {
	return &Generator{intN: rand.IntN}
}

// NewWithSource returns a Generator backed by a dedicated source, typically
// a seeded PCG for deterministic tests. Unlike New, the result is not safe
// for concurrent use: rand.Rand instances are single-goroutine.
func NewWithSource(src rand.Source) *Generator {
	r := rand.New(src)
	return &Generator{intN: r.IntN}
}

// Flip returns "heads" or "tails" with equal probability.
func (g *Generator) Flip() Outcome {
	return outcomes[g.intN(len(outcomes))]
}

// FlipMany returns n independent flips in draw order.
//
// n == 0 yields an empty, non-nil sequence so it serializes as a JSON []
// rather than null. Callers are expected to have bounds-checked n already;
// FlipMany itself accepts any non-negative count.
func (g *Generator) FlipMany(n int) []Outcome {
	seq := make([]Outcome, n)
	for i := range seq {
		seq[i] = g.Flip()
	}
	return seq
}
