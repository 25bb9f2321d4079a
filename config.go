package zpr

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config controls the parts of formatting that are a matter of taste.
type Config struct {
	// HexPrefixUpper makes the radix prefix follow the case of the verb:
	// {#X} prints "0XFF" instead of "0xFF".
	HexPrefixUpper bool `yaml:"hex_prefix_upper"`

	// DisplayWidth measures string width and precision in terminal columns
	// instead of bytes.
	DisplayWidth bool `yaml:"display_width"`

	// BufferSize is the staging buffer size used by Fprint and Fprintln.
	BufferSize int `yaml:"buffer_size"`
}

// DefaultConfig returns the configuration of the package-level functions.
func DefaultConfig() Config {
	return Config{BufferSize: DefaultBufferSize}
}

// LoadConfig reads a YAML configuration from r. Missing keys keep their
// defaults and unknown keys are rejected. An empty document yields
// DefaultConfig.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.BufferSize < 0 {
		return Config{}, fmt.Errorf("%w: buffer_size %d is negative", ErrInvalidConfig, cfg.BufferSize)
	}
	if cfg.BufferSize == 0 {
		cfg.BufferSize = DefaultBufferSize
	}
	return cfg, nil
}
