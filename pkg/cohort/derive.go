package cohort

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/ldorson/fakedata/pkg/rng"
	"github.com/ldorson/fakedata/pkg/stats"
)

// derivation builds one column the way every stage after the baseline
// draws must: a linear combination of previously produced columns plus a
// raw baseline column plus Gaussian noise, then a population min-max
// rescale onto the target interval, then rounding to the column's final
// precision. The order of those three steps is a contract: skipping the
// rescale changes the column's support, and rescaling raw noise alone
// would destroy the causal relationship.
type derivation struct {
	name     string
	stage    Stage
	baseline []float64
	decimals int // negative disables rounding
}

// run computes the derived column over the whole cohort. cols maps the
// already-finalized predictor columns by name.
func (d derivation) run(g *rng.Generator, cols map[string][]float64) ([]float64, error) {
	n := len(d.baseline)
	score := make([]float64, n)
	copy(score, d.baseline)
	for _, t := range d.stage.Terms {
		col, ok := cols[t.Column]
		if !ok {
			return nil, fmt.Errorf("%s stage references unknown column %q: %w", d.name, t.Column, ErrInvalidConfig)
		}
		floats.AddScaled(score, t.Coef, col)
	}
	floats.Add(score, g.Normal(n, 0, d.stage.NoiseSD))

	scaled, err := stats.Rescale(score, d.stage.Target.Lo, d.stage.Target.Hi)
	if err != nil {
		return nil, fmt.Errorf("%s stage: %w", d.name, err)
	}
	if d.decimals >= 0 {
		for i := range scaled {
			scaled[i] = stats.RoundTo(scaled[i], d.decimals)
		}
	}
	return scaled, nil
}

// assignTreatment realizes a binary treatment from the propensity column
// with one independent Bernoulli draw per unit. The treatment is sampled,
// never thresholded, so realized treatment varies even between units with
// equal propensity. Probabilities of exactly 0 or 1 at the rescale
// extremes are kept as-is; the draw is then deterministic.
func assignTreatment(g *rng.Generator, probability []float64) []float64 {
	return g.BernoulliEach(probability)
}
