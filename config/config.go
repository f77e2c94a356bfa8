// Package config loads the scorer's YAML configuration: the award point
// tables, the default quarter selector, and logging settings. Everything has
// a working default; a missing config file is not an error unless the
// operator named one explicitly.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete scorer configuration.
type Config struct {
	Rules   RulesConfig   `yaml:"rules"`
	Quarter string        `yaml:"quarter"` // default selector; the -quarter flag overrides
	Logging LoggingConfig `yaml:"logging"`
}

// RulesConfig carries operator overrides for the award point tables. Entries
// merge over the built-in defaults; they never clear them.
type RulesConfig struct {
	BonusLetters map[string]int `yaml:"bonus_letters"`
	Conditions   map[string]int `yaml:"conditions"`
}

// LoggingConfig contains logging settings. An empty Dir keeps logging on
// stderr only.
type LoggingConfig struct {
	Dir           string `yaml:"dir"`
	RetentionDays int    `yaml:"retention_days"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{RetentionDays: 7},
	}
}

// Load loads configuration from a YAML file, applying defaults for anything
// the file does not set.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Print displays the non-default parts of the configuration.
func (c *Config) Print() {
	if c.Quarter != "" {
		fmt.Printf("Quarter: %s\n", c.Quarter)
	}
	if len(c.Rules.BonusLetters) > 0 || len(c.Rules.Conditions) > 0 {
		fmt.Printf("Rule overrides: %d bonus letter(s), %d condition(s)\n",
			len(c.Rules.BonusLetters), len(c.Rules.Conditions))
	}
	if c.Logging.Dir != "" {
		fmt.Printf("Logging: %s (retention %dd)\n", c.Logging.Dir, c.Logging.RetentionDays)
	}
}
