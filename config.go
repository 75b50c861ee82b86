package calldispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Config describes a dispatch run. It can be loaded from YAML with
// LoadConfig. Fields left out of the YAML keep their DefaultConfig
// values.
type Config struct {
	// Input is the URL or path of the caller record source.
	Input string      `json:"input" yaml:"input"`
	Log   LogConfig   `json:"log" yaml:"log"`
	Trace TraceConfig `json:"trace" yaml:"trace"`
}

type LogConfig struct {
	Level string `json:"level" yaml:"level"`
}

type TraceConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Output is a file to write spans to. Empty means stdout.
	Output string `json:"output" yaml:"output"`
}

// DefaultConfig returns the configuration used when nothing else is
// specified.
func DefaultConfig() *Config {
	return &Config{
		Input: "calls.txt",
		Log:   LogConfig{Level: "info"},
	}
}

// LoadConfig reads YAML configuration from URL on top of DefaultConfig.
func LoadConfig(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %v: %w", URL, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error describing the first invalid setting, or
// nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Input == "" {
		return fmt.Errorf("input must not be empty")
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses Level. An empty Level is info.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if c.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	return level, nil
}
