package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Redis struct {
		URL string `yaml:"url"`
	} `yaml:"redis"`
	Auth struct {
		SigningKey string `yaml:"signing_key"`
	} `yaml:"auth"`
	RateLimit struct {
		MaxPerMinute int64 `yaml:"max_per_minute"`
	} `yaml:"rate_limit"`
	Cleaner struct {
		// Cron spec for the stale request cleaner, e.g. "@every 24h".
		Schedule  string `yaml:"schedule"`
		GraceDays int    `yaml:"grace_days"`
	} `yaml:"cleaner"`
}

func LoadConfig() Config {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.Fatalf("Failed to unmarshal config data: %v", err)
	}

	// Env overrides for managed deployments.
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.Database.URL = url
	}
	if url := os.Getenv("REDIS_URL"); url != "" {
		cfg.Redis.URL = url
	}
	if key := os.Getenv("JWT_SIGNING_KEY"); key != "" {
		cfg.Auth.SigningKey = key
	}

	if cfg.RateLimit.MaxPerMinute == 0 {
		cfg.RateLimit.MaxPerMinute = 30
	}
	if cfg.Cleaner.Schedule == "" {
		cfg.Cleaner.Schedule = "@every 24h"
	}
	if cfg.Cleaner.GraceDays == 0 {
		cfg.Cleaner.GraceDays = 7
	}
	return cfg
}
