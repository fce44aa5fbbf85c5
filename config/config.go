package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/agentdeck/core"
)

var (
	// ErrInvalidTrigger is returned when the configured trigger is not a
	// single character.
	ErrInvalidTrigger = fmt.Errorf("trigger must be a single character")

	// ErrInvalidAgent is returned when a configured agent entry cannot be
	// turned into a descriptor.
	ErrInvalidAgent = fmt.Errorf("invalid agent config")
)

// LoggerConfig holds structured logging settings.
type LoggerConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or text
}

// AgentConfig declares one additional agent descriptor to register at
// startup. Patterns are regular expressions compiled during validation.
type AgentConfig struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Icon          string   `yaml:"icon"`
	Description   string   `yaml:"description"`
	Category      string   `yaml:"category"`
	Primary       []string `yaml:"primary"`
	Secondary     []string `yaml:"secondary"`
	Keywords      []string `yaml:"keywords"`
	Patterns      []string `yaml:"patterns"`
	ContextTypes  []string `yaml:"context_types"`
	Accepts       []string `yaml:"accepts"`
	OutputType    string   `yaml:"output_type"`
	OutputFormats []string `yaml:"output_formats"`
}

// Descriptor converts the entry into a registrable core.AgentDescriptor.
func (a AgentConfig) Descriptor() (core.AgentDescriptor, error) {
	if a.ID == "" || a.Name == "" {
		return core.AgentDescriptor{}, fmt.Errorf("%w: id and name are required", ErrInvalidAgent)
	}
	patterns := make([]*regexp.Regexp, 0, len(a.Patterns))
	for _, p := range a.Patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return core.AgentDescriptor{}, fmt.Errorf("%w: agent %s pattern %q: %v", ErrInvalidAgent, a.ID, p, err)
		}
		patterns = append(patterns, re)
	}
	return core.AgentDescriptor{
		ID:          a.ID,
		Name:        a.Name,
		Icon:        a.Icon,
		Description: a.Description,
		Capabilities: core.Capabilities{
			Primary:   a.Primary,
			Secondary: a.Secondary,
		},
		Triggers: core.Triggers{
			Keywords:     a.Keywords,
			Patterns:     patterns,
			ContextTypes: a.ContextTypes,
		},
		Input:    core.InputSpec{Accepts: a.Accepts},
		Output:   core.OutputSpec{Type: a.OutputType, Formats: a.OutputFormats},
		Metadata: core.DescriptorMetadata{Category: a.Category},
	}, nil
}

// Config is the top-level workspace configuration.
type Config struct {
	// Trigger is the mention trigger character (default "@").
	Trigger string `yaml:"trigger"`
	// SpeedFactor scales every simulated stage delay (1.0 = defaults,
	// 0.1 = ten times faster). Must be positive.
	SpeedFactor float64 `yaml:"speed_factor"`
	// DebounceMS is the recommended delay before rendering layers re-score
	// input as the user types. The core exposes pure calls; this value is
	// purely advisory to adapters.
	DebounceMS int `yaml:"debounce_ms"`
	// Logger configures structured logging.
	Logger LoggerConfig `yaml:"logger"`
	// Agents lists additional descriptors registered after the built-ins.
	Agents []AgentConfig `yaml:"agents"`
}

// Default returns the baseline configuration.
func Default() *Config {
	return &Config{
		Trigger:     "@",
		SpeedFactor: 1.0,
		DebounceMS:  250,
		Logger:      LoggerConfig{Level: "info", Format: "json"},
	}
}

// Load reads and validates a YAML config file. Unset fields fall back to
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if len([]rune(c.Trigger)) != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidTrigger, c.Trigger)
	}
	if c.SpeedFactor <= 0 {
		return fmt.Errorf("speed_factor must be positive, got %v", c.SpeedFactor)
	}
	for _, a := range c.Agents {
		if _, err := a.Descriptor(); err != nil {
			return err
		}
	}
	return nil
}

// TriggerRune returns the trigger as a rune.
func (c *Config) TriggerRune() rune {
	return []rune(c.Trigger)[0]
}
