// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order; the first existing file wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/ideaboard/config.yaml",
	"/etc/ideaboard/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultBaseURL is the development backend.
const DefaultBaseURL = "https://localhost:7175/api"

func defaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			BaseURL:   DefaultBaseURL,
			Timeout:   30 * time.Second,
			RateLimit: 20,
			RateBurst: 10,
			Breaker: BreakerConfig{
				MaxRequests:  3,
				Interval:     time.Minute,
				Timeout:      2 * time.Minute,
				MinRequests:  10,
				FailureRatio: 0.6,
			},
		},
		Session: SessionConfig{
			Store: SessionStoreMemory,
			Path:  "/data/ideaboard/session",
		},
		Notifications: NotificationsConfig{
			PollInterval: 10 * time.Second,
		},
		Server: ServerConfig{
			Enabled:     false,
			Host:        "127.0.0.1",
			Port:        4300,
			CORSOrigins: []string{"http://localhost:4200"},
			RateLimit:   300,
			ReadTimeout: 15 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration from defaults, then the config file when one
// exists, then environment variables. The result is validated.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

var sliceConfigPaths = []string{
	"server.cors_origins",
}

// processSliceFields splits comma-separated env values into slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		s, ok := k.Get(path).(string)
		if !ok || s == "" {
			continue
		}
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if err := k.Set(path, out); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

var envMappings = map[string]string{
	"api_base_url":              "backend.base_url",
	"api_timeout":               "backend.timeout",
	"api_rate_limit":            "backend.rate_limit",
	"api_rate_burst":            "backend.rate_burst",
	"api_insecure_skip_verify":  "backend.insecure_skip_verify",
	"api_breaker_max_requests":  "backend.breaker.max_requests",
	"api_breaker_interval":      "backend.breaker.interval",
	"api_breaker_timeout":       "backend.breaker.timeout",
	"api_breaker_min_requests":  "backend.breaker.min_requests",
	"api_breaker_failure_ratio": "backend.breaker.failure_ratio",

	"session_store":      "session.store",
	"session_store_path": "session.path",

	"notification_poll_interval": "notifications.poll_interval",

	"http_enabled":      "server.enabled",
	"http_host":         "server.host",
	"http_port":         "server.port",
	"cors_origins":      "server.cors_origins",
	"http_rate_limit":   "server.rate_limit",
	"http_read_timeout": "server.read_timeout",

	"authz_model_path":  "authz.model_path",
	"authz_policy_path": "authz.policy_path",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps environment variable names to koanf paths, for
// example API_BASE_URL to backend.base_url. Unmapped variables are dropped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
