package config

import (
	"os"
	"path/filepath"
	"testing"

	"yapl/symtab"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.MaxVars != symtab.MaxVars {
		t.Fatalf("Default().MaxVars = %d, want %d", cfg.MaxVars, symtab.MaxVars)
	}
	if cfg.ShortCircuitLogical {
		t.Fatal("Default().ShortCircuitLogical must be false")
	}
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "yapl.yaml")
	contents := "trace_filters:\n  - \"For\"\n  - \"While\"\nmax_vars: 64\nshort_circuit_logical: true\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxVars != 64 {
		t.Errorf("cfg.MaxVars = %d, want 64", cfg.MaxVars)
	}
	if !cfg.ShortCircuitLogical {
		t.Error("cfg.ShortCircuitLogical = false, want true")
	}
	if len(cfg.TraceFilters) != 2 || cfg.TraceFilters[0] != "For" {
		t.Errorf("cfg.TraceFilters = %v", cfg.TraceFilters)
	}
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load of a missing file must return an error")
	}
}

func TestLoadZeroMaxVarsFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "yapl.yaml")
	if err := os.WriteFile(path, []byte("short_circuit_logical: true\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxVars != symtab.MaxVars {
		t.Fatalf("cfg.MaxVars = %d, want fallback to symtab.MaxVars (%d)", cfg.MaxVars, symtab.MaxVars)
	}
}
