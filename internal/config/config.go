// Package config loads optional driver configuration — REPL prompt
// text, the startup banner, and whether to force color on or off —
// from a YAML file named by the --config flag in cmd/lumen. No CLI flag
// overrides the individual settings. This is ambient CLI plumbing
// spec.md is silent on; a file is not required for any mode to work.
package config

import (
	"os"

	"github.com/juju/errors"
	"gopkg.in/yaml.v2"
)

// Config holds the driver-level settings a config file may override.
type Config struct {
	Prompt string `yaml:"prompt"`
	Banner string `yaml:"banner"`
	Color  string `yaml:"color"` // "auto", "always", or "never"
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{Prompt: "lumen> ", Banner: "Lumen", Color: "auto"}
}

// Load reads path as YAML and merges it over Default(); a missing file
// is not an error — it just means the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Annotatef(err, "could not read config %s", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Annotatef(err, "could not parse config %s", path)
	}
	return cfg, nil
}
