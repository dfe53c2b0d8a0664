package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse("checkdigit", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultRunAddress, cfg.RunAddress)
	assert.Equal(t, DefaultMaxCount, cfg.MaxCount)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
	assert.Equal(t, DefaultLang, cfg.DefaultLang)
	assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse("checkdigit", []string{"-a", ":9090", "-n", "50", "-l", "debug", "-pretty", "-lang", "ko", "-shutdown-timeout", "3s"})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.RunAddress)
	assert.Equal(t, 50, cfg.MaxCount)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
	assert.Equal(t, "ko", cfg.DefaultLang)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestParseEnvOverridesFlags(t *testing.T) {
	t.Setenv("RUN_ADDRESS", ":7070")
	t.Setenv("MAX_COUNT", "25")
	t.Setenv("LOG_PRETTY", "true")

	cfg, err := Parse("checkdigit", []string{"-a", ":9090", "-n", "50", "-l", "warn"})
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.RunAddress)
	assert.Equal(t, 25, cfg.MaxCount)
	assert.True(t, cfg.LogPretty)
	assert.Equal(t, "warn", cfg.LogLevel, "flag value kept when env is unset")
}

func TestParseRejectsBadMaxCount(t *testing.T) {
	_, err := Parse("checkdigit", []string{"-n", "0"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMaxCount)
}

func TestParseRejectsBadEnv(t *testing.T) {
	t.Setenv("MAX_COUNT", "lots")

	_, err := Parse("checkdigit", nil)
	require.Error(t, err)
}

func TestParseRejectsUnknownFlag(t *testing.T) {
	_, err := Parse("checkdigit", []string{"-d", "postgres://"})
	require.Error(t, err)
}
