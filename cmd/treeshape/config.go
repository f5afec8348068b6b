package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/treeshape"
	"github.com/katalvlaran/treeshape/index"
)

// Output formats.
const (
	formatYAML = "yaml"
	formatText = "text"
)

var errConfig = errors.New("treeshape: invalid config")

// Config is the optional YAML file passed with --config. Flags set on the
// command line override it.
type Config struct {
	Mode      string   `yaml:"mode"`
	Kind      string   `yaml:"kind"`
	Format    string   `yaml:"format"`
	Workers   int      `yaml:"workers"`
	Tolerance float64  `yaml:"tolerance"`
	Indices   []string `yaml:"indices"`
}

func defaultConfig() Config {
	return Config{
		Mode:      "binary",
		Kind:      "absolute",
		Format:    formatYAML,
		Tolerance: treeshape.DefaultTolerance,
	}
}

// loadConfig reads path over cfg. An empty path leaves cfg unchanged.
func loadConfig(path string, cfg *Config) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// settings is a validated Config.
type settings struct {
	mode      treeshape.Mode
	kind      treeshape.Kind
	format    string
	workers   int
	tolerance float64
	indices   []string
}

func (c Config) validate() (settings, error) {
	var (
		s   settings
		err error
	)
	if s.mode, err = index.ParseMode(c.Mode); err != nil {
		return s, err
	}
	if s.kind, err = treeshape.ParseKind(c.Kind); err != nil {
		return s, err
	}
	switch c.Format {
	case formatYAML, formatText:
		s.format = c.Format
	default:
		return s, fmt.Errorf("format %q: %w", c.Format, errConfig)
	}
	if c.Workers < 0 {
		return s, fmt.Errorf("workers=%d: %w", c.Workers, errConfig)
	}
	if c.Tolerance < 0 || math.IsNaN(c.Tolerance) {
		return s, fmt.Errorf("tolerance=%v: %w", c.Tolerance, errConfig)
	}
	for _, name := range c.Indices {
		if _, err := index.Lookup(name); err != nil {
			return s, err
		}
	}
	s.workers, s.tolerance, s.indices = c.Workers, c.Tolerance, c.Indices
	return s, nil
}
