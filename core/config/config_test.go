package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Telegram: TelegramConfig{
			Token:   "123:abc",
			RunMode: "longpoll",
		},
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = ""
	require.NoError(t, Normalize(cfg))
	require.Equal(t, RunModeLongpoll, cfg.Telegram.RunMode)
}

func TestNormalizePollingAlias(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "Polling"
	require.NoError(t, Normalize(cfg))
	require.Equal(t, RunModeLongpoll, cfg.Telegram.RunMode)
}

func TestNormalizeRequiresToken(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.Token = ""
	require.Error(t, Normalize(cfg))
}

func TestNormalizeWebhookRequirements(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = RunModeWebhook
	require.Error(t, Normalize(cfg), "webhook mode needs url, listen, and port")

	cfg.Webhook = WebhookConfig{URL: "https://bot.example.com", Listen: "0.0.0.0", Port: 8443}
	require.NoError(t, Normalize(cfg))
}

func TestNormalizeRejectsUnknownRunMode(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "carrier-pigeon"
	require.Error(t, Normalize(cfg))
}

func TestNormalizeRateLimitExcludes(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit.ExcludeUpdates = []string{" Message ", "callback"}
	require.NoError(t, Normalize(cfg))
	require.Equal(t, []string{"message", "callback"}, cfg.RateLimit.ExcludeUpdates)

	cfg.RateLimit.ExcludeUpdates = []string{"voice"}
	require.Error(t, Normalize(cfg))
}

func TestIsAdmin(t *testing.T) {
	tg := TelegramConfig{AdminIDs: []int64{10, 20}}
	require.True(t, tg.IsAdmin(10))
	require.False(t, tg.IsAdmin(30))
	require.False(t, TelegramConfig{}.IsAdmin(10))
}
