package cohort

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 2500, cfg.N)
	assert.Equal(t, uint64(4660), cfg.Seed)
	assert.Equal(t, 10.0, cfg.InjectedEffect())
}

func TestValidateRejectsBadCohortSize(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		cfg := DefaultConfig()
		cfg.N = n
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	}
}

func TestValidateRejectsInvertedInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Outcome.Target = Interval{Lo: 100, Hi: 0}
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.Propensity.Target = Interval{Lo: 1, Hi: 1}
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestValidateRejectsNegativeNoise(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GRE.NoiseSD = -0.1
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestValidateRejectsBadBaselineParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutcomeRaw.Alpha = 0
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.TreatmentRawP = 1.5
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.GPA.Mean = 10 // outside the truncation bounds
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestValidateRejectsForwardReference(t *testing.T) {
	// The GRE stage runs before treatment exists; using it must fail.
	cfg := DefaultConfig()
	cfg.GRE.Terms = append(cfg.GRE.Terms, Term{Column: ColTreatment, Coef: 1})
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("n: 100\nseed: 17\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.N)
	assert.Equal(t, uint64(17), cfg.Seed)
	// Untouched sections keep their defaults.
	assert.Equal(t, DefaultConfig().Outcome, cfg.Outcome)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadConfigEmptyPathIsDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigRejectsInvalidOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("n: -5\n"), 0o644))

	_, err := LoadConfig(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
}
