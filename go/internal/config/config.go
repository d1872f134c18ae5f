package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/mcdev12/tourney/go/internal/models"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config holds settings for the tournament tooling
type Config struct {
	Log struct {
		Level   string `yaml:"level"`
		Console bool   `yaml:"console"`
	} `yaml:"log"`
	Matches struct {
		// ResultPolicy is "overwrite" or "reject"
		ResultPolicy string `yaml:"result_policy"`
	} `yaml:"matches"`
	Snapshot struct {
		Input  string `yaml:"input"`
		Output string `yaml:"output"` // stdout when empty
	} `yaml:"snapshot"`
}

// Path returns the config file location from TOURNEY_CONFIG, default tourney.yaml
func Path() string {
	return getEnv("TOURNEY_CONFIG", "tourney.yaml")
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	cfg.Log.Level = "info"
	cfg.Log.Console = true
	cfg.Matches.ResultPolicy = string(models.ResultPolicyOverwrite)
	return cfg
}

// Load reads the YAML file at path on top of the defaults, then applies
// TOURNEY_* environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.Log.Level = getEnv("TOURNEY_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Console = getEnvAsBool("TOURNEY_LOG_CONSOLE", cfg.Log.Console)
	cfg.Matches.ResultPolicy = getEnv("TOURNEY_RESULT_POLICY", cfg.Matches.ResultPolicy)
	cfg.Snapshot.Input = getEnv("TOURNEY_SNAPSHOT", cfg.Snapshot.Input)
	cfg.Snapshot.Output = getEnv("TOURNEY_OUTPUT", cfg.Snapshot.Output)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated values
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	if _, err := models.ParseResultPolicy(c.Matches.ResultPolicy); err != nil {
		return fmt.Errorf("invalid matches.result_policy: %w", err)
	}
	return nil
}

// LogLevel returns the configured zerolog level, defaulting to info
func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// MatchOptions converts match settings into constructor options
func (c *Config) MatchOptions() []models.MatchOption {
	policy, err := models.ParseResultPolicy(c.Matches.ResultPolicy)
	if err != nil {
		policy = models.ResultPolicyOverwrite
	}
	return []models.MatchOption{models.WithResultPolicy(policy)}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
