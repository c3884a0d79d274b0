package config

import (
	"github.com/vietddude/touradmin/internal/infra/api"
	redisclient "github.com/vietddude/touradmin/internal/infra/redis"
	"github.com/vietddude/touradmin/internal/infra/storage/postgres"
)

// AppConfig represents the top-level configuration.
type AppConfig struct {
	API      api.Config         `yaml:"api"`
	Session  SessionConfig      `yaml:"session"`
	Redis    redisclient.Config `yaml:"redis"`
	Database postgres.Config    `yaml:"database"`
	Logging  LoggingConfig      `yaml:"logging"`
	Metrics  MetricsConfig      `yaml:"metrics"`
}

// Session backends.
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// SessionConfig selects where the access and refresh tokens are kept.
type SessionConfig struct {
	Backend string `yaml:"backend"` // file, memory, redis, postgres
	Path    string `yaml:"path"`    // file backend only
	Profile string `yaml:"profile"` // lets several operators or environments share one store
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// MetricsConfig holds the /metrics and /health server settings. Port 0 disables it.
type MetricsConfig struct {
	Port int `yaml:"port"`
}
