package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadYAML(t *testing.T, doc string) *Config {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(doc)))

	cfg, err := LoadFromViper(v, Test)
	require.NoError(t, err)
	return cfg
}

func TestLoadFromViper_Defaults(t *testing.T) {
	cfg := loadYAML(t, "server:\n  port: 9000\n")

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, time.Duration(0), cfg.Server.WriteTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "read_committed", cfg.Database.IsolationLevel)

	assert.Equal(t, 2, cfg.Mpesa.MaxRetries)
	assert.Equal(t, time.Second, cfg.Mpesa.RetryDelay)
	assert.Equal(t, 30*time.Second, cfg.Mpesa.RequestTimeout)

	assert.Equal(t, 3, cfg.Callback.RetryAttempts)
	assert.Equal(t, time.Second, cfg.Callback.RetryDelay)
	assert.Equal(t, 2.0, cfg.Callback.BackoffFactor)

	assert.Equal(t, 5*time.Minute, cfg.Sweeper.Interval)
	assert.Equal(t, time.Hour, cfg.Sweeper.Window)
	assert.Equal(t, 25*time.Second, cfg.Notifier.Heartbeat)
	assert.Equal(t, "0", cfg.Payments.MinAmount)
	assert.Equal(t, "70000", cfg.Payments.MaxAmount)
}

func TestLoadFromViper_FileValues(t *testing.T) {
	cfg := loadYAML(t, `
mpesa:
  simulate: true
  simulatePushCallback: true
  callbackBaseURL: https://tips.example.com/
  retryDelay: 250
sweeper:
  interval: 30
  window: 90
withdrawal:
  allowReprocess: true
`)

	assert.True(t, cfg.Mpesa.Simulate)
	assert.True(t, cfg.Mpesa.SimulatePush)
	assert.Equal(t, 250*time.Millisecond, cfg.Mpesa.RetryDelay)
	assert.Equal(t, 30*time.Second, cfg.Sweeper.Interval)
	assert.Equal(t, 90*time.Minute, cfg.Sweeper.Window)
	assert.True(t, cfg.Withdrawal.AllowReprocess)
	assert.Equal(t, "https://tips.example.com/payments/callback", cfg.Mpesa.CallbackURL("/payments/callback"))
}

func TestProcessEnvOverrides(t *testing.T) {
	t.Setenv("TP_DB_HOST", "db.internal")
	t.Setenv("TP_MPESA_CONSUMER_KEY", "ck")
	t.Setenv("TP_SERVER_PORT", "9090")
	t.Setenv("TP_MPESA_SIMULATE", "true")
	t.Setenv("TP_SWEEPER_WINDOW_MINS", "not-a-number")

	v := viper.New()
	processEnvOverrides(v)
	cfg, err := LoadFromViper(v, Development)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "ck", cfg.Mpesa.ConsumerKey)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Mpesa.Simulate)
	assert.Equal(t, time.Hour, cfg.Sweeper.Window)
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("TP_ENV", "Production")
	assert.Equal(t, Production, getEnvironment())

	t.Setenv("TP_ENV", "")
	assert.Equal(t, Development, getEnvironment())
}

func TestCallbackURL_Empty(t *testing.T) {
	assert.Empty(t, MpesaConfig{}.CallbackURL("/payments/callback"))
}
