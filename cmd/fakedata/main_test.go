package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldorson/fakedata/pkg/cohort"
)

func TestLoadRunConfigDefaults(t *testing.T) {
	cmd := newGenerateCmd()
	cfg, err := loadRunConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, cohort.DefaultConfig(), cfg)
}

func TestLoadRunConfigFlagsOverride(t *testing.T) {
	cmd := newGenerateCmd()
	require.NoError(t, cmd.Flags().Set("n", "250"))
	require.NoError(t, cmd.Flags().Set("seed", "7"))

	cfg, err := loadRunConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.N)
	assert.Equal(t, uint64(7), cfg.Seed)
}

func TestLoadRunConfigFlagsBeatConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("n: 100\nseed: 5\n"), 0o644))

	cmd := newGenerateCmd()
	require.NoError(t, cmd.Flags().Set("config", path))
	require.NoError(t, cmd.Flags().Set("n", "42"))

	cfg, err := loadRunConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.N)
	assert.Equal(t, uint64(5), cfg.Seed, "seed comes from the file when not flagged")
}

func TestLoadRunConfigRejectsBadFlag(t *testing.T) {
	cmd := newGenerateCmd()
	require.NoError(t, cmd.Flags().Set("n", "-1"))

	_, err := loadRunConfig(cmd)
	require.ErrorIs(t, err, cohort.ErrInvalidConfig)
}
