package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spin2win/internal/engine/partition"
	"spin2win/internal/engine/session"
	"spin2win/internal/engine/staking"
)

func TestParseStrategyConfigAppliesDefaults(t *testing.T) {
	cfg, err := parseStrategyConfig([]byte(`
presets:
  minimal:
    starting_balance: 250
`))
	require.NoError(t, err)

	assert.Equal(t, "minimal", cfg.DefaultPreset())
	p, ok := cfg.Preset("minimal")
	require.True(t, ok)
	assert.Equal(t, partition.NineGroup, p.Scheme)
	assert.Equal(t, staking.Fibonacci, p.Staking)
	assert.Equal(t, 4, p.WindowSize)
	assert.Equal(t, 250, p.StartingBalance)
	assert.Equal(t, session.OnHitResetStakeOnly, p.OnHit)
}

func TestParseStrategyConfigRejectsBadPreset(t *testing.T) {
	_, err := parseStrategyConfig([]byte(`
presets:
  broken:
    partition_scheme: seven_group
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, partition.ErrMalformedPartition)

	_, err = parseStrategyConfig([]byte(`
default_preset: missing
presets:
  ok: {}
`))
	require.Error(t, err)

	_, err = parseStrategyConfig([]byte(`presets: {}`))
	require.Error(t, err)
}

func TestRepositoryConfigFileLoads(t *testing.T) {
	path := filepath.Join("..", "..", "..", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Skip("config.yaml not found")
	}

	cfg, err := NewStrategyConfigFromYAML(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Presets(), 4)

	p, ok := cfg.Preset("twelve_group_doubling")
	require.True(t, ok)
	assert.Equal(t, 12, p.WindowSize)
	assert.Equal(t, staking.Doubling, p.Staking)
}

func TestHTTPConfig(t *testing.T) {
	t.Setenv(httpHostEnvName, "127.0.0.1")
	t.Setenv(httpPortEnvName, "9090")
	cfg, err := NewHTTPConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Address())

	t.Setenv(httpPortEnvName, "nope")
	_, err = NewHTTPConfig()
	assert.Error(t, err)
}

func TestSessionTokenConfig(t *testing.T) {
	t.Setenv(sessionTokenKeyEnvName, "")
	_, err := NewSessionTokenConfig()
	require.Error(t, err)

	t.Setenv(sessionTokenKeyEnvName, "secret")
	t.Setenv(sessionTokenTTLEnvName, "90m")
	cfg, err := NewSessionTokenConfig()
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), cfg.SecretKey())
	assert.Equal(t, "1h30m0s", cfg.TTL().String())

	for _, raw := range []string{"0s", "-5m"} {
		t.Setenv(sessionTokenTTLEnvName, raw)
		_, err = NewSessionTokenConfig()
		require.Error(t, err, raw)
	}
}
