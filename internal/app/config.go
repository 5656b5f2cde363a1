// Package app wires the college bot: configuration, bootstrap, and the
// Telegram runtime options consumed by core/cmd.
package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "github.com/m3rciful/collegebot/core/config"
	coredatabase "github.com/m3rciful/collegebot/core/database"
)

// AnswerConfig points to the external AI answering backend.
// Both URL and key are required; the bot refuses to start without them.
type AnswerConfig struct {
	URL            string `yaml:"url" envconfig:"ANSWER_API_URL"`
	Key            string `yaml:"key" envconfig:"ANSWER_API_KEY"`
	TimeoutSeconds int    `yaml:"timeout_seconds" envconfig:"ANSWER_TIMEOUT_SECONDS"`
}

// Timeout returns the bounded ask timeout.
func (a AnswerConfig) Timeout() time.Duration {
	if a.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// Config aggregates core settings with the bot's own sections.
type Config struct {
	Core     coreconfig.Config   `yaml:",inline"`
	Database coredatabase.Config `yaml:"database"`
	Answer   AnswerConfig        `yaml:"answer_service"`
}

// CoreConfig exposes the embedded core configuration.
func (c *Config) CoreConfig() *coreconfig.Config {
	return &c.Core
}

// Load reads the YAML file, applies environment overrides, and validates.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := coreconfig.Normalize(&cfg.Core); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the bot's own required sections. Missing required config
// aborts startup instead of failing lazily at first use.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	if strings.TrimSpace(cfg.Answer.URL) == "" {
		return fmt.Errorf("answer_service.url is required")
	}
	if strings.TrimSpace(cfg.Answer.Key) == "" {
		return fmt.Errorf("answer_service.key is required")
	}
	if cfg.Answer.TimeoutSeconds < 0 {
		return fmt.Errorf("answer_service.timeout_seconds must be >= 0")
	}
	return nil
}
