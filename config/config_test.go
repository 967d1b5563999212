package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"USERHUB_API_URL", "USERHUB_API_KEY", "USERHUB_TIMEOUT", "USERHUB_EMAIL",
		"USERHUB_PASSWORD", "USERHUB_LOG_FILE", "USERHUB_LOG_LEVEL",
		"USERHUB_EXPORT_RECIPIENTS", "USERHUB_DEMO_MODE",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "https://reqres.in/api", cfg.APIURL)
	assert.Equal(t, "reqres-free-v1", cfg.APIKey)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Equal(t, "userhub.log", cfg.LogFile)
	assert.Empty(t, cfg.ExportRecipients)
	assert.False(t, cfg.DemoMode)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("USERHUB_API_URL", "http://localhost:9000/api/")
	t.Setenv("USERHUB_API_KEY", "local")
	t.Setenv("USERHUB_TIMEOUT", "2s")
	t.Setenv("USERHUB_LOG_LEVEL", "debug")
	t.Setenv("USERHUB_EXPORT_RECIPIENTS", " age1abc , ,ssh-ed25519 AAAA ")
	t.Setenv("USERHUB_DEMO_MODE", "1")
	t.Setenv("USERHUB_EMAIL", "eve.holt@reqres.in")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/api", cfg.APIURL)
	assert.Equal(t, "local", cfg.APIKey)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, []string{"age1abc", "ssh-ed25519 AAAA"}, cfg.ExportRecipients)
	assert.True(t, cfg.DemoMode)
	assert.Equal(t, "eve.holt@reqres.in", cfg.Email)
}

func TestFromEnvInvalid(t *testing.T) {
	clearEnv(t)

	t.Setenv("USERHUB_TIMEOUT", "soon")
	_, err := FromEnv()
	assert.ErrorContains(t, err, "USERHUB_TIMEOUT")

	t.Setenv("USERHUB_TIMEOUT", "-1s")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "negative")

	t.Setenv("USERHUB_TIMEOUT", "1s")
	t.Setenv("USERHUB_LOG_LEVEL", "loud")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "USERHUB_LOG_LEVEL")
}
