package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

type ServerConfig struct {
	Port int `yaml:"port"`
	// Origin is the public base URL checkout handoffs are built against,
	// e.g. https://nexgen.example.com (no trailing slash).
	Origin string `yaml:"origin"`
}

type LogConfig struct {
	Level    string `yaml:"level"`    // trace|debug|info|warn|error
	Format   string `yaml:"format"`   // json|console
	Sampling bool   `yaml:"sampling"` // enable sampling in prod
}

type RedisConfig struct {
	URL      string        `yaml:"url"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"` // preference expiry; 0 = keep forever
}

type CatalogConfig struct {
	// OverridesPath points at a YAML file of per-deployment price overrides.
	OverridesPath string `yaml:"overrides_path"`
}

type RegionConfig struct {
	DefaultCurrency string `yaml:"default_currency"`
}

type SessionConfig struct {
	TTL time.Duration `yaml:"ttl"` // idle pricing-session eviction
}

type PaymentConfig struct {
	Stripe struct {
		SecretKey string `yaml:"secret_key"`
		Sandbox   bool   `yaml:"sandbox"`
	} `yaml:"stripe"`
	Razorpay struct {
		WebhookSecret string `yaml:"webhook_secret"`
	} `yaml:"razorpay"`
}

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Redis   RedisConfig   `yaml:"redis"`
	Catalog CatalogConfig `yaml:"catalog"`
	Region  RegionConfig  `yaml:"region"`
	Session SessionConfig `yaml:"session"`
	Payment PaymentConfig `yaml:"payment"`

	Runtime RuntimeConfig `yaml:"-"`
}

func LoadConfig(path string, dev bool) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// defaults
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Region.DefaultCurrency == "" {
		cfg.Region.DefaultCurrency = "USD"
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = 30 * time.Minute
	}

	// Minimal validation
	if cfg.Server.Origin == "" {
		return nil, errors.New("server.origin is required")
	}
	if cfg.Redis.URL == "" {
		return nil, errors.New("redis.url is required")
	}
	if cfg.Payment.Razorpay.WebhookSecret == "" {
		return nil, errors.New("payment.razorpay.webhook_secret is required")
	}

	cfg.Runtime.Dev = dev
	return &cfg, nil
}
