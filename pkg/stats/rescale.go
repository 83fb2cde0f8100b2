package stats

import (
	"errors"
	"fmt"
)

// ErrDegenerateDistribution reports a rescale over a zero-variance column.
// Min-max rescaling is undefined when every value is identical.
var ErrDegenerateDistribution = errors.New("degenerate distribution: zero variance")

// Rescale maps x onto [lo, hi] with a population-level min-max transform:
// the empirical minimum lands on lo and the empirical maximum on hi. The
// whole column must be materialized first; there is no streaming variant.
func Rescale(x []float64, lo, hi float64) ([]float64, error) {
	min, max := MinMax(x)
	if max == min {
		return nil, fmt.Errorf("rescale to [%g, %g] over %d values: %w", lo, hi, len(x), ErrDegenerateDistribution)
	}
	span := max - min
	out := make([]float64, len(x))
	for i, v := range x {
		// The ratio form keeps the extremes exact: (max-min)/span is 1.0
		// and (min-min)/span is 0.0, so min lands on lo and max on hi.
		out[i] = lo + (v-min)/span*(hi-lo)
	}
	return out, nil
}
