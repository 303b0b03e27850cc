package config

import (
	"encoding/base64"

	"github.com/kelseyhightower/envconfig"

	"github.com/hive-corporation/cwp-forwarder/internal/core/domain"
)

// Config holds the process configuration, loaded once at startup from
// environment variables and treated as read-only afterwards.
type Config struct {
	// Azure Log Analytics workspace
	CustomerID string `envconfig:"CUSTOMER_ID" required:"true"`
	SharedKey  string `envconfig:"SHARED_KEY" required:"true"`

	// Risk scores that should be forwarded; everything else is discarded
	ScoreFilter []string `envconfig:"CWP_SCORE_FILTER" required:"true"`

	// Log-Type tag classifying the ingested stream at the destination
	LogType string `envconfig:"LOG_TYPE" default:"RadwareCNP"`

	// HTTP receiver only
	Port string `envconfig:"PORT" default:"8080"`
}

// Load reads and validates the configuration. The shared key must be valid
// base64 because the signature builder decodes it on every request.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, &domain.ConfigurationError{Field: "environment", Err: err}
	}

	if _, err := base64.StdEncoding.DecodeString(cfg.SharedKey); err != nil {
		return nil, &domain.ConfigurationError{Field: "SHARED_KEY", Err: err}
	}

	return &cfg, nil
}

// Filter builds the immutable score allowlist.
func (c *Config) Filter() domain.ScoreFilter {
	return domain.NewScoreFilter(c.ScoreFilter)
}
