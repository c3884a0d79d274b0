package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/vietddude/touradmin/internal/infra/storage/file"
)

const (
	defaultTimeout = 30 * time.Second
	defaultProfile = "default"
)

// Load reads configuration from a YAML file. A missing file is not an error
// when path is empty: the defaults and environment are used instead.
func Load(path string) (*AppConfig, error) {
	var cfg AppConfig

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Expand environment variables in the YAML content
		expandedData := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = os.Getenv("TOURADMIN_API_URL")
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = defaultTimeout
	}

	if cfg.Session.Backend == "" {
		cfg.Session.Backend = BackendFile
	}
	if cfg.Session.Backend == BackendFile && cfg.Session.Path == "" {
		cfg.Session.Path = file.DefaultPath()
	}
	if cfg.Session.Profile == "" {
		cfg.Session.Profile = defaultProfile
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}

// Validate reports settings that would only fail later, on the first request.
func (c *AppConfig) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is not set (or export TOURADMIN_API_URL)")
	}

	switch c.Session.Backend {
	case BackendFile, BackendMemory:
	case BackendRedis:
		if c.Redis.URL == "" {
			return errors.New("session backend redis requires redis.url")
		}
	case BackendPostgres:
		if c.Database.URL == "" {
			return errors.New("session backend postgres requires database.url")
		}
	default:
		return fmt.Errorf("unknown session backend %q", c.Session.Backend)
	}

	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("unknown logging.format %q (text or json)", c.Logging.Format)
	}

	return nil
}
