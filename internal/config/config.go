// Package config loads the solver configuration from aoc.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for configuration.
const DefaultPath = "aoc.yaml"

// Config holds all solver configuration.
type Config struct {
	// Directory holding inputNN.txt files.
	InputDir string `yaml:"input_dir"`

	Logging LoggingConfig `yaml:"logging"`

	// Known answers, keyed by day number.
	Answers map[int]Answer `yaml:"answers"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// Answer is the expected output of a day. Empty parts are not checked.
type Answer struct {
	Part1 string `yaml:"part1"`
	Part2 string `yaml:"part2"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		InputDir: "input",
		Logging: LoggingConfig{
			Level: "info",
		},
		Answers: map[int]Answer{},
	}
}

// Load reads the configuration at path. A missing file yields Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decoding config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return errors.New("config: input_dir must not be empty")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Logging.Level)
	}
	for day := range c.Answers {
		if day < 1 || day > 25 {
			return fmt.Errorf("config: answer for day %d out of range", day)
		}
	}
	return nil
}
