package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvReadsDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CHAIN_SIZE=64\nCHAIN_ATOM_CHANCE=0.25\nCHAIN_MUTE=true\n"), 0o600))

	cfg := NewConfig()
	require.NoError(t, cfg.LoadEnv(path))

	assert.Equal(t, 64, cfg.Size)
	assert.InDelta(t, 0.25, cfg.AtomChance, 1e-12)
	assert.True(t, cfg.Mute)
	assert.Equal(t, 20, cfg.TPS, "untouched keys keep defaults")
}

func TestLoadEnvProcessEnvironmentWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CHAIN_SEED=7\n"), 0o600))
	t.Setenv("CHAIN_SEED", "99")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadEnv(path))
	assert.Equal(t, int64(99), cfg.Seed)
}

func TestLoadEnvMissingFileIsNotAnError(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.LoadEnv(filepath.Join(t.TempDir(), "absent.env")))
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoadEnvReportsBadValues(t *testing.T) {
	t.Setenv("CHAIN_TPS", "fast")
	t.Setenv("CHAIN_ATOM_CHANCE", "lots")

	cfg := NewConfig()
	err := cfg.LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHAIN_TPS")
	assert.Contains(t, err.Error(), "CHAIN_ATOM_CHANCE")
	assert.Equal(t, 20, cfg.TPS)
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("CHAIN_SIZE", "64")
	cfg := NewConfig()
	require.NoError(t, cfg.LoadEnv(filepath.Join(t.TempDir(), "absent.env")))

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-size", "32", "-seed-strikes", "3"}))

	assert.Equal(t, 32, cfg.Size)
	assert.Equal(t, 3, cfg.SeedStrikes)
}

func TestSimOptions(t *testing.T) {
	cfg := NewConfig()
	cfg.AtomChance = 0.3
	opts := cfg.SimOptions()
	assert.Equal(t, map[string]string{
		"size":         "180",
		"seed":         "42",
		"atom_chance":  "0.3",
		"seed_strikes": "1",
	}, opts)
}

func TestInterval(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, 50*time.Millisecond, cfg.Interval())
	cfg.TPS = 0
	assert.Equal(t, 50*time.Millisecond, cfg.Interval())
}
