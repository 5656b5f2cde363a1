package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testConfigYAML = `telegram:
  token: "123:abc"
  admin_ids: [900]
  run_mode: longpoll

database:
  host: localhost
  port: "5432"
  user: bot
  name: bot
  sslmode: disable

answer_service:
  url: https://ai.example.com/api/v1/prediction/xyz
  key: top-secret
  timeout_seconds: 15
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfigYAML))
	require.NoError(t, err)

	require.Equal(t, "123:abc", cfg.Core.Telegram.Token)
	require.True(t, cfg.Core.Telegram.IsAdmin(900))
	require.Equal(t, "https://ai.example.com/api/v1/prediction/xyz", cfg.Answer.URL)
	require.Equal(t, 15*time.Second, cfg.Answer.Timeout())
	require.NotNil(t, cfg.CoreConfig())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidateRequiresAnswerService(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfigYAML))
	require.NoError(t, err)

	cfg.Answer.URL = ""
	require.ErrorContains(t, Validate(cfg), "answer_service.url")

	cfg.Answer.URL = "https://ai.example.com"
	cfg.Answer.Key = "  "
	require.ErrorContains(t, Validate(cfg), "answer_service.key")

	cfg.Answer.Key = "k"
	cfg.Answer.TimeoutSeconds = -1
	require.Error(t, Validate(cfg))
}

func TestAnswerTimeoutDefaultsToZero(t *testing.T) {
	require.Zero(t, AnswerConfig{}.Timeout())
	require.Equal(t, 30*time.Second, AnswerConfig{TimeoutSeconds: 30}.Timeout())
}
