package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:nestmind.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule struct {
		HealthInterval time.Duration `yaml:"health_interval" json:"health_interval" jsonschema:"default=6h,description=Interval between periodic link health sweeps"`
		DigestInterval time.Duration `yaml:"digest_interval" json:"digest_interval" jsonschema:"default=24h,description=Interval between suggestion digests"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Health HealthConfig `yaml:"health" json:"health" jsonschema:"description=Link health monitor configuration"`

	Analysis AnalysisConfig `yaml:"analysis" json:"analysis" jsonschema:"description=Activity analysis configuration"`
}

// HealthConfig holds link health monitor settings
type HealthConfig struct {
	CheckTimeout    time.Duration `yaml:"check_timeout" json:"check_timeout" jsonschema:"default=10s,description=Timeout per link probe"`
	BatchSize       int           `yaml:"batch_size" json:"batch_size" jsonschema:"default=5,minimum=1,description=Links probed per batch"`
	BatchPause      time.Duration `yaml:"batch_pause" json:"batch_pause" jsonschema:"default=2s,description=Pause between batches"`
	Stagger         time.Duration `yaml:"stagger" json:"stagger" jsonschema:"default=500ms,description=Delay between probe starts within a batch"`
	RecheckInterval time.Duration `yaml:"recheck_interval" json:"recheck_interval" jsonschema:"default=24h,description=Recheck age for healthy links"`
	DeadRecheck     time.Duration `yaml:"dead_recheck" json:"dead_recheck" jsonschema:"default=168h,description=Recheck age for dead links"`
	RecoveryGrace   time.Duration `yaml:"recovery_grace" json:"recovery_grace" jsonschema:"default=5s,description=Grace delay before archive recovery starts"`
	UserAgent       string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Nestmind/1.0,description=User agent for probes"`
}

// AnalysisConfig holds activity analysis settings
type AnalysisConfig struct {
	ActivityWindowDays int `yaml:"activity_window_days" json:"activity_window_days" jsonschema:"default=30,description=Trailing window of activity events to analyze"`
	MaxSuggestions     int `yaml:"max_suggestions" json:"max_suggestions" jsonschema:"default=8,description=Maximum suggestions returned per call"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration with all defaults applied, used when no
// config file is given
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:nestmind.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// schedule
	if c.Schedule.HealthInterval == 0 {
		c.Schedule.HealthInterval = 6 * time.Hour
	}
	if c.Schedule.DigestInterval == 0 {
		c.Schedule.DigestInterval = 24 * time.Hour
	}

	// health monitor
	if c.Health.CheckTimeout == 0 {
		c.Health.CheckTimeout = 10 * time.Second
	}
	if c.Health.BatchSize == 0 {
		c.Health.BatchSize = 5
	}
	if c.Health.BatchPause == 0 {
		c.Health.BatchPause = 2 * time.Second
	}
	if c.Health.Stagger == 0 {
		c.Health.Stagger = 500 * time.Millisecond
	}
	if c.Health.RecheckInterval == 0 {
		c.Health.RecheckInterval = 24 * time.Hour
	}
	if c.Health.DeadRecheck == 0 {
		c.Health.DeadRecheck = 7 * 24 * time.Hour
	}
	if c.Health.RecoveryGrace == 0 {
		c.Health.RecoveryGrace = 5 * time.Second
	}
	if c.Health.UserAgent == "" {
		c.Health.UserAgent = "Nestmind/1.0"
	}

	// analysis
	if c.Analysis.ActivityWindowDays == 0 {
		c.Analysis.ActivityWindowDays = 30
	}
	if c.Analysis.MaxSuggestions == 0 {
		c.Analysis.MaxSuggestions = 8
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Health.CheckTimeout < time.Second {
		return fmt.Errorf("health check_timeout must be at least 1 second")
	}
	if cfg.Health.BatchSize < 1 {
		return fmt.Errorf("health batch_size must be at least 1")
	}
	if cfg.Health.RecheckInterval < time.Hour {
		return fmt.Errorf("health recheck_interval must be at least 1 hour")
	}
	if cfg.Health.DeadRecheck < cfg.Health.RecheckInterval {
		return fmt.Errorf("health dead_recheck must not be shorter than recheck_interval")
	}
	if cfg.Analysis.ActivityWindowDays < 1 {
		return fmt.Errorf("analysis activity_window_days must be positive")
	}
	if cfg.Analysis.MaxSuggestions < 1 {
		return fmt.Errorf("analysis max_suggestions must be positive")
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetHealthConfig returns link health monitor configuration
func (c *Config) GetHealthConfig() HealthConfig {
	return c.Health
}

// GetAnalysisConfig returns activity analysis configuration
func (c *Config) GetAnalysisConfig() AnalysisConfig {
	return c.Analysis
}
