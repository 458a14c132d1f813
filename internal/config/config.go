package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/san-kum/ruin/internal/ruin"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPrompt   = "> "
	DefaultLogLevel = "info"
)

// Config holds every option the batch and interactive modes read.
// Games and Sets of zero mean "not configured".
type Config struct {
	Games       int    `yaml:"games" env:"GAMES"`
	Sets        int    `yaml:"sets" env:"SETS"`
	Matrix      bool   `yaml:"matrix" env:"MATRIX"`
	Interactive bool   `yaml:"interactive" env:"INTERACTIVE"`
	Plot        bool   `yaml:"plot" env:"PLOT"`
	Seed        uint64 `yaml:"seed" env:"SEED"`
	Prompt      string `yaml:"prompt" env:"PROMPT"`
	LogLevel    string `yaml:"log_level" env:"LOG_LEVEL"`
}

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "RUIN_"

func DefaultConfig() *Config {
	return &Config{
		Prompt:   DefaultPrompt,
		LogLevel: DefaultLogLevel,
	}
}

// Merge reads a YAML file over the current values. Keys absent from the
// file keep their current value.
func (c *Config) Merge(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from RUIN_* environment variables. Unset
// variables leave the field alone.
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ApplyPreset copies the preset's games and sets into c.
func (c *Config) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", name, ListPresets())
	}
	c.Games = p.Games
	c.Sets = p.Sets
	return nil
}

// Validate rejects negative sizes. Zero is allowed and means unset.
func (c *Config) Validate() error {
	if c.Games < 0 {
		return &ruin.ParamError{Field: "games", Value: fmt.Sprint(c.Games), Wrapped: ruin.ErrInvalidParameters}
	}
	if c.Sets < 0 {
		return &ruin.ParamError{Field: "sets", Value: fmt.Sprint(c.Sets), Wrapped: ruin.ErrInvalidParameters}
	}
	return nil
}

// HasParams reports whether both games and sets are configured.
func (c *Config) HasParams() bool {
	return c.Games > 0 && c.Sets > 0
}

func (c *Config) Params() ruin.Params {
	return ruin.Params{Games: c.Games, Sets: c.Sets, ShowMatrix: c.Matrix}
}

// NewCoin returns a seeded coin when Seed is set, otherwise a fresh one.
func (c *Config) NewCoin() ruin.Coin {
	if c.Seed != 0 {
		return ruin.NewSeededCoin(c.Seed, c.Seed^0x9e3779b97f4a7c15)
	}
	return ruin.NewCoin()
}
