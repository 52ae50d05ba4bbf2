// Package config loads the runtime configuration for the geomag edge
// services.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/j143/geomag-algorithms/internal/edge"
)

type Config struct {
	Edge      edge.Config     `yaml:"edge"`
	Timescale TimescaleConfig `yaml:"timescale"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// TimescaleConfig is optional; reads are archived only when a
// connection string is set.
type TimescaleConfig struct {
	ConnString string `yaml:"conn_string"`
	Table      string `yaml:"table"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) ApplyDefaults() {
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = ":9100"
	}
	if c.Timescale.Table == "" {
		c.Timescale.Table = "geomag_samples"
	}

	c.Edge.ApplyDefaults()
}

func (c *Config) Validate() error {
	if err := c.Edge.Validate(); err != nil {
		return fmt.Errorf("edge config: %w", err)
	}
	if c.Metrics.Addr == "" {
		return fmt.Errorf("metrics.addr is required")
	}
	return nil
}
