package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/test/xdg")

	want := filepath.Join("/test/xdg", ConfigDir, ConfigFile)
	if got := DefaultPath(); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestLoadMissingDefaultFileReturnsDefaults(t *testing.T) {
	// Point the XDG fallback at a directory with no config file.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(cfg.ExcludedPrefixes) == 0 {
		t.Error("expected default excluded prefixes")
	}
	if len(cfg.IncludedFunctions) == 0 {
		t.Error("expected default included function prefixes")
	}
	if cfg.KeywordsFile != DefaultKeywordsFile {
		t.Errorf("KeywordsFile = %q, want %q", cfg.KeywordsFile, DefaultKeywordsFile)
	}
	if cfg.FunctionsFile != DefaultFunctionsFile {
		t.Errorf("FunctionsFile = %q, want %q", cfg.FunctionsFile, DefaultFunctionsFile)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `excluded_prefixes: [pg_, icu]
included_functions: [json]
functions_file: fns.json
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(cfg.ExcludedPrefixes) != 2 || cfg.ExcludedPrefixes[0] != "pg_" {
		t.Errorf("ExcludedPrefixes = %v", cfg.ExcludedPrefixes)
	}
	if len(cfg.IncludedFunctions) != 1 || cfg.IncludedFunctions[0] != "json" {
		t.Errorf("IncludedFunctions = %v", cfg.IncludedFunctions)
	}
	if cfg.FunctionsFile != "fns.json" {
		t.Errorf("FunctionsFile = %q, want %q", cfg.FunctionsFile, "fns.json")
	}
	// Unset fields keep their defaults.
	if cfg.KeywordsFile != DefaultKeywordsFile {
		t.Errorf("KeywordsFile = %q, want %q", cfg.KeywordsFile, DefaultKeywordsFile)
	}
}

func TestLoadExplicitEmptyExclusionList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("excluded_prefixes: []\n"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(cfg.ExcludedPrefixes) != 0 {
		t.Errorf("ExcludedPrefixes = %v, want empty list", cfg.ExcludedPrefixes)
	}
}

func TestLoadExplicitMissingPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("expected error for an explicit path that does not exist")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("excluded_prefixes: [unclosed\n"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config")
	}
}
