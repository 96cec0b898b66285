package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/midbel/mulscan"
	"github.com/midbel/mulscan/internal/bench"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultFile, cfg.File)
	assert.Equal(t, bench.DefaultRuns, cfg.Runs)
	assert.Equal(t, mulscan.Strategies(), cfg.Strategies)
	assert.Zero(t, cfg.Parallel)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mulscan.yml")
	data := []byte("file: memory.txt\nruns: 5\nstrategies: [find, iter]\nparallel: -1\nverbose: true\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "memory.txt", cfg.File)
	assert.Equal(t, 5, cfg.Runs)
	assert.Equal(t, []string{"find", "iter"}, cfg.Strategies)
	assert.Equal(t, -1, cfg.Parallel)
	assert.True(t, cfg.Verbose)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mulscan.yml")
	require.NoError(t, os.WriteFile(path, []byte("runs: [1, 2"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("all variables", func(t *testing.T) {
		t.Setenv(EnvFile, "env.txt")
		t.Setenv(EnvRuns, "7")
		t.Setenv(EnvStrategies, "bychar, regexp,")
		t.Setenv(EnvParallel, "2")

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "env.txt", cfg.File)
		assert.Equal(t, 7, cfg.Runs)
		assert.Equal(t, []string{"bychar", "regexp"}, cfg.Strategies)
		assert.Equal(t, 2, cfg.Parallel)
	})

	t.Run("environment wins over file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mulscan.yml")
		require.NoError(t, os.WriteFile(path, []byte("runs: 5\n"), 0o644))
		t.Setenv(EnvRuns, "9")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 9, cfg.Runs)
	})

	t.Run("invalid runs", func(t *testing.T) {
		t.Setenv(EnvRuns, "three")
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("invalid parallel", func(t *testing.T) {
		t.Setenv(EnvParallel, "all")
		_, err := Load("")
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Runs = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.File = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Parallel = -2
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Strategies = []string{"regex"}
	err := cfg.Validate()
	assert.True(t, errors.Is(err, mulscan.ErrUnknown))

	var sugg mulscan.SuggestionError
	require.True(t, errors.As(err, &sugg))
	assert.Equal(t, []string{"regexp"}, sugg.Others)
}
