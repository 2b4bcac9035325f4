// ABOUTME: Engine configuration
// ABOUTME: Defaults plus optional YAML config file loading
package cadenza

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds engine parameters. Zero fields fall back to defaults at
// Init.
type Config struct {
	// SampleRate is the playback device rate in Hz.
	SampleRate int `yaml:"sample_rate"`
	// Channels is the playback device channel count.
	Channels int `yaml:"channels"`
	// TickRate is the fixed-step rate, in steps per second, the caller
	// drives Tick at.
	TickRate int `yaml:"tick_rate"`
}

// DefaultConfig returns the standard engine configuration: 48kHz stereo
// output ticked at 60Hz.
func DefaultConfig() Config {
	return Config{
		SampleRate: 48000,
		Channels:   2,
		TickRate:   60,
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("invalid sample_rate: %d", c.SampleRate)
	}
	if c.Channels <= 0 {
		return fmt.Errorf("invalid channels: %d", c.Channels)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("invalid tick_rate: %d", c.TickRate)
	}
	return nil
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.SampleRate <= 0 {
		c.SampleRate = def.SampleRate
	}
	if c.Channels <= 0 {
		c.Channels = def.Channels
	}
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	return c
}
