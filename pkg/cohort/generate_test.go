package cohort

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldorson/fakedata/pkg/stats"
)

func smallConfig(n int, seed uint64) Config {
	cfg := DefaultConfig()
	cfg.N = n
	cfg.Seed = seed
	return cfg
}

func TestGenerateIDsAreSequential(t *testing.T) {
	c, err := Generate(smallConfig(200, 1))
	require.NoError(t, err)
	require.Equal(t, 200, c.N())
	for i, u := range c.Units {
		assert.Equal(t, i+1, u.ID)
	}
}

func TestGenerateColumnDomains(t *testing.T) {
	c, err := Generate(smallConfig(500, 2))
	require.NoError(t, err)

	for _, u := range c.Units {
		assert.GreaterOrEqual(t, u.GPA, 1.5)
		assert.LessOrEqual(t, u.GPA, 4.0)
		assert.Equal(t, stats.RoundTo(u.GPA, 2), u.GPA, "gpa must carry two decimals")

		assert.GreaterOrEqual(t, u.GRE, 130.0)
		assert.LessOrEqual(t, u.GRE, 170.0)
		assert.Equal(t, math.Trunc(u.GRE), u.GRE, "gre must be integral")

		assert.GreaterOrEqual(t, u.TreatmentProbability, 0.0)
		assert.LessOrEqual(t, u.TreatmentProbability, 1.0)

		assert.True(t, u.Treatment == 0 || u.Treatment == 1, "treatment must be binary")

		assert.GreaterOrEqual(t, u.Outcome, 0.0)
		assert.LessOrEqual(t, u.Outcome, 100.0)
		assert.Equal(t, stats.RoundTo(u.Outcome, 1), u.Outcome, "outcome must carry one decimal")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := smallConfig(300, 4660)

	a, err := Generate(cfg)
	require.NoError(t, err)
	b, err := Generate(cfg)
	require.NoError(t, err)

	var bufA, bufB bytes.Buffer
	require.NoError(t, a.WriteCSV(&bufA))
	require.NoError(t, b.WriteCSV(&bufB))
	assert.Equal(t, bufA.Bytes(), bufB.Bytes(), "same config and seed must be byte-identical")
}

func TestGenerateSeedChangesOutput(t *testing.T) {
	a, err := Generate(smallConfig(300, 1))
	require.NoError(t, err)
	b, err := Generate(smallConfig(300, 2))
	require.NoError(t, err)

	var bufA, bufB bytes.Buffer
	require.NoError(t, a.WriteCSV(&bufA))
	require.NoError(t, b.WriteCSV(&bufB))
	assert.NotEqual(t, bufA.Bytes(), bufB.Bytes())
}

func TestGenerateSingleUnitDegenerate(t *testing.T) {
	// N=1 passes validation but a one-point rescale has no range; the run
	// must fail cleanly instead of producing NaN.
	_, err := Generate(smallConfig(1, 1))
	require.ErrorIs(t, err, stats.ErrDegenerateDistribution)
}

func TestGenerateInvalidConfig(t *testing.T) {
	cfg := smallConfig(0, 1)
	_, err := Generate(cfg)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestGenerateBothTreatmentArmsPresent(t *testing.T) {
	c, err := Generate(smallConfig(500, 3))
	require.NoError(t, err)
	treated, control := 0, 0
	for _, u := range c.Units {
		if u.Treatment == 1 {
			treated++
		} else {
			control++
		}
	}
	assert.Greater(t, treated, 0)
	assert.Greater(t, control, 0)
}
