package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.env")
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvPlayers, EnvSeed, EnvDebug} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(nil, noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, Config{Players: 2}, cfg)
}

func TestLoadFlags(t *testing.T) {
	clearEnv(t)
	cfg, err := Load([]string{"-players", "4", "-seed", "99", "-debug"}, noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, Config{Players: 4, Seed: 99, Debug: true}, cfg)
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPlayers, "3")
	t.Setenv(EnvSeed, "7")
	cfg, err := Load(nil, noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Players)
	assert.Equal(t, uint64(7), cfg.Seed)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPlayers, "3")
	cfg, err := Load([]string{"-players=2"}, noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Players)
}

func TestLoadDotEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("THREE13_PLAYERS=4\nTHREE13_DEBUG=true\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv(EnvPlayers)
		os.Unsetenv(EnvDebug)
	})

	cfg, err := Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Players)
	assert.True(t, cfg.Debug)
}

func TestLoadInvalidPlayers(t *testing.T) {
	clearEnv(t)
	for _, n := range []string{"1", "5", "0"} {
		_, err := Load([]string{"-players", n}, noEnvFile(t))
		assert.ErrorIs(t, err, ErrInvalidPlayers, "players %s", n)
	}
}

func TestLoadMalformedInput(t *testing.T) {
	clearEnv(t)
	_, err := Load([]string{"-players", "two"}, noEnvFile(t))
	assert.Error(t, err)

	_, err = Load([]string{"extra"}, noEnvFile(t))
	assert.Error(t, err)

	t.Setenv(EnvSeed, "-3")
	_, err = Load(nil, noEnvFile(t))
	assert.Error(t, err)
}
