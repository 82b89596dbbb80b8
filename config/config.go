// Package config loads interpreter tunables from an optional YAML file.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"yapl/symtab"
)

// Config holds the small set of knobs this interpreter exposes beyond its
// otherwise fixed behavior.
type Config struct {
	// TraceFilters is a list of glob patterns passed to trace.Init; an
	// empty list traces everything once tracing is enabled.
	TraceFilters []string `yaml:"trace_filters"`

	// MaxVars overrides symtab.MaxVars. Zero means use the default.
	MaxVars int `yaml:"max_vars"`

	// ShortCircuitLogical selects whether && and || short-circuit their
	// right operand. Defaults to false, preserving the source's
	// non-short-circuit behavior.
	ShortCircuitLogical bool `yaml:"short_circuit_logical"`
}

// Default returns the interpreter's default configuration.
func Default() Config {
	return Config{
		MaxVars:             symtab.MaxVars,
		ShortCircuitLogical: false,
	}
}

// Load reads and parses a YAML config file at path, starting from
// Default() so an incomplete file still yields sane values for whatever it
// omits.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.MaxVars == 0 {
		cfg.MaxVars = symtab.MaxVars
	}
	return cfg, nil
}
