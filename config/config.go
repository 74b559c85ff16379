// Package config loads the small set of knobs a malt run is parameterized
// by: whether addpath recurses by default, a default encoding, and the
// working directory "/"-separated path lookups are resolved against.
// DefaultEncoding is loaded but not read by the parser, which always falls
// back to utf-8 when chardet can't decide.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the teacher's small on/off struct pattern
// (inspector/info/config.go: Config) rather than a generic key/value map.
type Config struct {
	Recursive        bool   `yaml:"recursive"`
	DefaultEncoding  string `yaml:"defaultEncoding"`
	WorkingDirectory string `yaml:"workingDirectory"`
	Paths            []Path `yaml:"paths"`
}

// Path is one entry of the search path to seed a collection.PathsCollection
// with at startup.
type Path struct {
	Root      string `yaml:"root"`
	Recursive bool   `yaml:"recursive"`
	ToEnd     bool   `yaml:"toEnd"`
}

// DefaultConfig mirrors inspector/info/config.go: DefaultConfig.
func DefaultConfig() *Config {
	return &Config{
		Recursive:       true,
		DefaultEncoding: "utf-8",
	}
}

// Load reads a YAML config file at path, overlaying it onto DefaultConfig
// so an omitted field keeps its default rather than zeroing out.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
