package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveWebhookURLFromFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.txt")
	content := "# local n8n endpoint\n\nhttps://example.test/webhook/chat\nhttps://ignored.test\n"
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := &Config{WebhookConfigPath: p, WebhookURL: "https://env.test/webhook"}
	url, err := cfg.ResolveWebhookURL()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if url != "https://example.test/webhook/chat" {
		t.Fatalf("unexpected url: %q", url)
	}
}

func TestResolveWebhookURLEnvFallback(t *testing.T) {
	dir := t.TempDir()

	cfg := &Config{WebhookConfigPath: filepath.Join(dir, "missing.txt"), WebhookURL: "https://env.test/webhook"}
	url, err := cfg.ResolveWebhookURL()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if url != "https://env.test/webhook" {
		t.Fatalf("unexpected url: %q", url)
	}
}

func TestResolveWebhookURLCommentsOnly(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.txt")
	if err := os.WriteFile(p, []byte("# nothing here\n   \n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := &Config{WebhookConfigPath: p}
	if _, err := cfg.ResolveWebhookURL(); err == nil {
		t.Fatalf("expected error when no URL is configured")
	}
}
