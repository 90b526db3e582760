package server

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wavedial/wavedial/internal/radiobrowser"
)

// Defaults applied to missing config values
const (
	DefaultListenAddr         = ":8001"
	DefaultDatabaseURL        = "sqlite://wavedial.db"
	DefaultUpstreamTimeoutSec = 30
)

// Config holds backend service settings
type Config struct {
	ListenAddr         string `yaml:"listen_addr"`
	DatabaseURL        string `yaml:"database_url"`
	UpstreamBaseURL    string `yaml:"upstream_base_url"`
	UpstreamTimeoutSec int    `yaml:"upstream_timeout_sec"`
}

// Load reads configuration from a YAML file and fills defaults. An empty path
// yields pure defaults. LISTEN_ADDR and DB_URL environment variables override
// the file.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = DefaultDatabaseURL
	}
	if cfg.UpstreamBaseURL == "" {
		cfg.UpstreamBaseURL = radiobrowser.DefaultBaseURL
	}
	if cfg.UpstreamTimeoutSec <= 0 {
		cfg.UpstreamTimeoutSec = DefaultUpstreamTimeoutSec
	}

	if addr := os.Getenv("LISTEN_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}
	if dbURL := os.Getenv("DB_URL"); dbURL != "" {
		cfg.DatabaseURL = dbURL
	}

	return cfg, nil
}

// UpstreamTimeout returns the upstream timeout as a duration
func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.UpstreamTimeoutSec) * time.Second
}
