package config

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	// Webhook resolution: config file first, env var as fallback.
	WebhookURL        string `env:"WEBHOOK_URL"`
	WebhookConfigPath string `env:"WEBHOOK_CONFIG_PATH" envDefault:"config.txt"`

	// Storage
	CommuteDBPath string `env:"COMMUTE_DB_PATH" envDefault:"commute_logs.db"`

	// Optional JSONL transcript of chat exchanges; empty disables recording.
	ChatLogPath string `env:"CHAT_LOG_PATH"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}

// ResolveWebhookURL returns the LLM webhook URL. The first non-empty,
// non-comment line of the config file wins; WEBHOOK_URL is the fallback.
func (c *Config) ResolveWebhookURL() (string, error) {
	if url := readWebhookFile(c.WebhookConfigPath); url != "" {
		return url, nil
	}
	if c.WebhookURL != "" {
		return c.WebhookURL, nil
	}
	return "", fmt.Errorf("webhook URL is not configured: put it on the first line of %s or set WEBHOOK_URL", c.WebhookConfigPath)
}

func readWebhookFile(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
		}
	}(f)
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line
	}
	return ""
}
