package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const minimalConfig = `
server:
  origin: https://nexgen.example.com
redis:
  url: localhost:6379
payment:
  razorpay:
    webhook_secret: whsec_test
`

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(writeConfig(t, minimalConfig), true)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("log defaults: got %q/%q", cfg.Log.Level, cfg.Log.Format)
	}
	if cfg.Region.DefaultCurrency != "USD" {
		t.Errorf("default currency: got %q", cfg.Region.DefaultCurrency)
	}
	if cfg.Session.TTL != 30*time.Minute {
		t.Errorf("session ttl: got %v", cfg.Session.TTL)
	}
	if !cfg.Runtime.Dev {
		t.Error("runtime dev flag not carried")
	}
}

func TestLoadConfigFull(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(writeConfig(t, `
server:
  port: 9090
  origin: https://nexgen.example.com
log:
  level: debug
  format: console
  sampling: true
redis:
  url: redis.internal:6379
  db: 2
  ttl: 720h
catalog:
  overrides_path: /etc/nexgen/prices.yaml
region:
  default_currency: INR
session:
  ttl: 15m
payment:
  stripe:
    secret_key: sk_test_abc
    sandbox: true
  razorpay:
    webhook_secret: whsec_test
`), false)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port: got %d", cfg.Server.Port)
	}
	if cfg.Redis.TTL != 720*time.Hour {
		t.Errorf("redis ttl: got %v", cfg.Redis.TTL)
	}
	if cfg.Catalog.OverridesPath != "/etc/nexgen/prices.yaml" {
		t.Errorf("overrides path: got %q", cfg.Catalog.OverridesPath)
	}
	if cfg.Region.DefaultCurrency != "INR" {
		t.Errorf("default currency: got %q", cfg.Region.DefaultCurrency)
	}
	if cfg.Session.TTL != 15*time.Minute {
		t.Errorf("session ttl: got %v", cfg.Session.TTL)
	}
	if !cfg.Payment.Stripe.Sandbox || cfg.Payment.Stripe.SecretKey != "sk_test_abc" {
		t.Errorf("stripe config: %+v", cfg.Payment.Stripe)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
	}{
		{"missing origin", `
redis:
  url: localhost:6379
payment:
  razorpay:
    webhook_secret: whsec_test
`},
		{"missing redis url", `
server:
  origin: https://nexgen.example.com
payment:
  razorpay:
    webhook_secret: whsec_test
`},
		{"missing webhook secret", `
server:
  origin: https://nexgen.example.com
redis:
  url: localhost:6379
`},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := LoadConfig(writeConfig(t, tc.body), false); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), false); err == nil {
		t.Fatal("expected error for missing file")
	}
}
