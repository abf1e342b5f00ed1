// Package config loads nutrilog settings from defaults, an optional
// YAML/JSON/TOML file and NUTRILOG_* environment variables, in increasing
// order of precedence.
package config

import (
	"fmt"

	"github.com/jinzhu/configor"
)

// Storage drivers.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

type Config struct {
	Server  ServerConfig  `yaml:"server" json:"server"`
	Storage StorageConfig `yaml:"storage" json:"storage"`
	Log     LogConfig     `yaml:"log" json:"log"`
}

type ServerConfig struct {
	Addr string `default:"127.0.0.1:5000" env:"NUTRILOG_ADDR" yaml:"addr" json:"addr"`
	// ShutdownTimeout is the graceful shutdown budget in seconds.
	ShutdownTimeout int `default:"10" env:"NUTRILOG_SHUTDOWN_TIMEOUT" yaml:"shutdown_timeout" json:"shutdown_timeout"`
}

type StorageConfig struct {
	Driver string `default:"memory" env:"NUTRILOG_STORAGE_DRIVER" yaml:"driver" json:"driver"`
	// DSN is only used by the sqlite driver.
	DSN string `default:"file:nutrilog?mode=memory&cache=shared" env:"NUTRILOG_STORAGE_DSN" yaml:"dsn" json:"dsn"`
}

type LogConfig struct {
	Level  string `default:"info" env:"NUTRILOG_LOG_LEVEL" yaml:"level" json:"level"`
	Format string `default:"text" env:"NUTRILOG_LOG_FORMAT" yaml:"format" json:"format"`
}

// Load builds a Config. path may be empty.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	var files []string
	if path != "" {
		files = append(files, path)
	}

	loader := configor.New(&configor.Config{ENVPrefix: "NUTRILOG"})
	if err := loader.Load(cfg, files...); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %d", c.Server.ShutdownTimeout)
	}
	switch c.Storage.Driver {
	case DriverMemory:
	case DriverSQLite:
		if c.Storage.DSN == "" {
			return fmt.Errorf("storage.dsn is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	return nil
}
