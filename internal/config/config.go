// Package config loads the trainer's YAML configuration and the user's
// target parameters.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults used when nothing is configured.
const (
	DefaultRecognitionTimeSeconds = 2.0
	DefaultTPS                    = 2.5
	DefaultWorstCases             = 3
	DefaultLogLevel               = "info"
)

var (
	ErrInvalidConfig          = errors.New("config: invalid configuration")
	ErrInvalidTargetParameter = errors.New("config: invalid target parameter")
)

var validate = validator.New()

// Config holds all trainer configuration.
type Config struct {
	// Target speed used to decide whether an attempt was fast enough
	Target TargetParameters `yaml:"target"`

	// Number of cases listed as worst cases
	WorstCases int `yaml:"worst_cases" validate:"gte=1,lte=21"`

	// Logging
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// SQLite database file, empty for the default location
	DatabasePath string `yaml:"database_path"`
}

// TargetParameters is how fast the user wants to be: a fixed time to
// recognize the case plus the time to execute its turns at a given TPS.
type TargetParameters struct {
	RecognitionTimeSeconds float64 `yaml:"recognition_time_seconds" json:"recognition_time_seconds" validate:"gt=0"`
	TPS                    float64 `yaml:"tps" json:"tps" validate:"gt=0"`
}

// DefaultTargetParameters returns 2 seconds recognition at 2.5 TPS.
func DefaultTargetParameters() TargetParameters {
	return TargetParameters{
		RecognitionTimeSeconds: DefaultRecognitionTimeSeconds,
		TPS:                    DefaultTPS,
	}
}

// TargetTimeMs returns the target time in milliseconds for an algorithm of
// the given number of turns.
func (t TargetParameters) TargetTimeMs(turns int) float64 {
	return (t.RecognitionTimeSeconds + float64(turns)/t.TPS) * 1000
}

// Validate checks both parameters are positive.
func (t TargetParameters) Validate() error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTargetParameter, err)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Target:     DefaultTargetParameters(),
		WorstCases: DefaultWorstCases,
		LogLevel:   DefaultLogLevel,
	}
}

// DefaultConfigPath returns ~/.plltrainer/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".plltrainer", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment variables override the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("PLLTRAINER_DB"); path != "" {
		c.DatabasePath = path
	}
	if level := os.Getenv("PLLTRAINER_LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := c.Target.Validate(); err != nil {
		return err
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
