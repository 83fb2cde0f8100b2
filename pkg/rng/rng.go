// Package rng provides the single seeded random generator shared by every
// pipeline stage. All draws pull from one source in call order, so a fixed
// seed reproduces an entire run end-to-end.
package rng

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generator wraps one explicitly seeded source. It is passed through the
// pipeline rather than living in package-global state so repeated or
// parallel test runs do not interfere.
type Generator struct {
	src *rand.Rand
}

// New returns a generator seeded with the given value.
func New(seed uint64) *Generator {
	return &Generator{src: rand.New(rand.NewSource(seed))}
}

// Normal draws n values from Normal(mu, sigma).
func (g *Generator) Normal(n int, mu, sigma float64) []float64 {
	dist := distuv.Normal{Mu: mu, Sigma: sigma, Src: g.src}
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}

// TruncNormal draws n values from Normal(mu, sigma) truncated to [lo, hi],
// by rejection: out-of-bound draws are discarded and redrawn.
func (g *Generator) TruncNormal(n int, mu, sigma, lo, hi float64) []float64 {
	dist := distuv.Normal{Mu: mu, Sigma: sigma, Src: g.src}
	out := make([]float64, n)
	for i := range out {
		v := dist.Rand()
		for v < lo || v > hi {
			v = dist.Rand()
		}
		out[i] = v
	}
	return out
}

// Beta draws n values from Beta(alpha, beta) on [0, 1].
func (g *Generator) Beta(n int, alpha, beta float64) []float64 {
	dist := distuv.Beta{Alpha: alpha, Beta: beta, Src: g.src}
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}

// Bernoulli draws n independent 0/1 values with success probability p.
func (g *Generator) Bernoulli(n int, p float64) []float64 {
	dist := distuv.Bernoulli{P: p, Src: g.src}
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}

// BernoulliEach draws one 0/1 value per entry of p, each with its own
// success probability. Probabilities of exactly 0 or 1 yield deterministic
// outcomes but still consume one draw, keeping the stream aligned.
func (g *Generator) BernoulliEach(p []float64) []float64 {
	out := make([]float64, len(p))
	for i, pi := range p {
		out[i] = distuv.Bernoulli{P: pi, Src: g.src}.Rand()
	}
	return out
}
