package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/algoviz/internal/graph"
	"github.com/san-kum/algoviz/internal/registry"
)

const (
	DefaultAlgorithm = "bubble"
	DefaultDelayMs   = 500
	DefaultCapacity  = 8
	MinDelayMs       = 50
	MaxDelayMs       = 2000
)

type Config struct {
	Algorithm string  `yaml:"algorithm" toml:"algorithm"`
	Values    []int   `yaml:"values,omitempty" toml:"values,omitempty"`
	Target    int     `yaml:"target" toml:"target"`
	DelayMs   int     `yaml:"delay_ms" toml:"delay_ms"`
	Start     int     `yaml:"start" toml:"start"`
	End       *int    `yaml:"end,omitempty" toml:"end,omitempty"`
	Nodes     int     `yaml:"nodes,omitempty" toml:"nodes,omitempty"`
	Edges     string  `yaml:"edges,omitempty" toml:"edges,omitempty"`
	EdgeProb  float64 `yaml:"edge_prob,omitempty" toml:"edge_prob,omitempty"`
	Limit     int     `yaml:"limit,omitempty" toml:"limit,omitempty"`
	Inner     int     `yaml:"inner,omitempty" toml:"inner,omitempty"`
	Pattern   string  `yaml:"pattern,omitempty" toml:"pattern,omitempty"`
	Capacity  int     `yaml:"capacity" toml:"capacity"`
	Seed      int64   `yaml:"seed" toml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Values:    []int{5, 3, 8, 4, 2},
		DelayMs:   DefaultDelayMs,
		Capacity:  DefaultCapacity,
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load reads a YAML config, or TOML when the file ends in .toml. Missing
// fields keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if isTOML(path) {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(cfg)
		data = buf.Bytes()
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.DelayMs < MinDelayMs || c.DelayMs > MaxDelayMs {
		return fmt.Errorf("delay_ms must be in %d..%d, got %d", MinDelayMs, MaxDelayMs, c.DelayMs)
	}
	if c.Capacity < 1 {
		return fmt.Errorf("capacity must be positive, got %d", c.Capacity)
	}
	if c.Nodes < 0 || c.Nodes > graph.MaxNodes {
		return fmt.Errorf("nodes must be in 0..%d, got %d", graph.MaxNodes, c.Nodes)
	}
	if c.EdgeProb < 0 || c.EdgeProb > 1 {
		return fmt.Errorf("edge_prob must be in [0, 1], got %g", c.EdgeProb)
	}
	return nil
}

// Input converts the config into registry input.
func (c *Config) Input() registry.Input {
	in := registry.Input{
		Values:   c.Values,
		Target:   c.Target,
		Nodes:    c.Nodes,
		Edges:    c.Edges,
		EdgeProb: c.EdgeProb,
		Start:    c.Start,
		Limit:    c.Limit,
		Inner:    c.Inner,
		Pattern:  c.Pattern,
		Seed:     c.Seed,
	}
	if c.End != nil {
		in.End, in.HasEnd = *c.End, true
	}
	return in
}
