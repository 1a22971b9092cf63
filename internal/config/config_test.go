package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STARTUPPONG_ACCOUNT_ID", "acct-1")
	t.Setenv("STARTUPPONG_ACCESS_KEY", "secret")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "acct-1", cfg.Account.ID)
	assert.Equal(t, "secret", cfg.Account.Key)
	assert.Equal(t, "http://www.startuppong.com", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.SlackEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STARTUPPONG_ACCOUNT_ID", "acct-1")
	t.Setenv("STARTUPPONG_ACCESS_KEY", "secret")
	t.Setenv("STARTUPPONG_BASE_URL", "http://localhost:9999")
	t.Setenv("STARTUPPONG_TIMEOUT", "2s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_CHANNEL_ID", "C123")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", cfg.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.SlackEnabled())
}

func TestLoad_MissingCredentials(t *testing.T) {
	t.Setenv("STARTUPPONG_ACCOUNT_ID", "acct-1")
	t.Setenv("STARTUPPONG_ACCESS_KEY", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "STARTUPPONG_ACCESS_KEY")
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("STARTUPPONG_ACCOUNT_ID", "acct-1")
	t.Setenv("STARTUPPONG_ACCESS_KEY", "secret")
	t.Setenv("STARTUPPONG_TIMEOUT", "soon")

	_, err := Load()

	require.Error(t, err)
}
