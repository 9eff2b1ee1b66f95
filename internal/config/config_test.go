package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return cfgPath
}

func TestInit_WithValidConfig(t *testing.T) {
	cfgPath := writeConfig(t, `
version: 1
title: Cucumber Specs
features:
  dir: specs
output:
  path: out/index.html
  format: json
results:
  format: nunit3
  files:
    - TestResult.xml
    - More.xml
log:
  level: debug
  format: json
`)

	if err := Init(cfgPath); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	cfg := Get()
	if cfg == nil {
		t.Fatal("Get() returned nil")
	}

	if cfg.Version != 1 {
		t.Errorf("expected version 1, got %d", cfg.Version)
	}
	if cfg.Title != "Cucumber Specs" {
		t.Errorf("expected title 'Cucumber Specs', got %q", cfg.Title)
	}
	if cfg.Features.Dir != "specs" {
		t.Errorf("expected features dir 'specs', got %q", cfg.Features.Dir)
	}
	if cfg.Output.Path != "out/index.html" {
		t.Errorf("expected output path 'out/index.html', got %q", cfg.Output.Path)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("expected output format 'json', got %q", cfg.Output.Format)
	}
	if cfg.Results.Format != "nunit3" {
		t.Errorf("expected results format 'nunit3', got %q", cfg.Results.Format)
	}
	if len(cfg.Results.Files) != 2 || cfg.Results.Files[1] != "More.xml" {
		t.Errorf("unexpected results files: %v", cfg.Results.Files)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log config: %+v", cfg.Log)
	}
	if ConfigFilePath() != cfgPath {
		t.Errorf("ConfigFilePath() = %q, want %q", ConfigFilePath(), cfgPath)
	}
}

func TestInit_Defaults(t *testing.T) {
	cfgPath := writeConfig(t, "version: 1\n")

	if err := Init(cfgPath); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	cfg := Get()
	if cfg.Title != "Living Documentation" {
		t.Errorf("expected default title, got %q", cfg.Title)
	}
	if cfg.Features.Dir != "features" {
		t.Errorf("expected default features dir, got %q", cfg.Features.Dir)
	}
	if cfg.Output.Path != "docs.html" {
		t.Errorf("expected default output path, got %q", cfg.Output.Path)
	}
	if cfg.Output.Format != "table" {
		t.Errorf("expected default output format, got %q", cfg.Output.Format)
	}
	if cfg.Results.Format != "none" {
		t.Errorf("expected default results format, got %q", cfg.Results.Format)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("unexpected default log config: %+v", cfg.Log)
	}
}

func TestInit_EnvOverride(t *testing.T) {
	cfgPath := writeConfig(t, "output:\n  path: from-file.html\n")
	t.Setenv("LIVINGDOC_OUTPUT_PATH", "from-env.html")
	t.Setenv("LIVINGDOC_RESULTS_FORMAT", "cucumber")

	if err := Init(cfgPath); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if got := Get().Output.Path; got != "from-env.html" {
		t.Errorf("expected env override, got %q", got)
	}
	if got := Get().Results.Format; got != "cucumber" {
		t.Errorf("expected env override, got %q", got)
	}
}

func TestInit_MissingConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "nonexistent.yaml")

	if err := Init(cfgPath); err == nil {
		t.Error("expected error for an explicit config path that does not exist")
	}
}

func TestInit_UnknownResultsFormat(t *testing.T) {
	cfgPath := writeConfig(t, "results:\n  format: junit\n")

	if err := Init(cfgPath); err == nil {
		t.Error("expected error for unknown results format")
	}
}

func TestInit_InvalidYAML(t *testing.T) {
	cfgPath := writeConfig(t, "output: [unclosed\n")

	if err := Init(cfgPath); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("DefaultConfigPath() error = %v", err)
	}
	if filepath.Base(path) != "config.yaml" || filepath.Base(filepath.Dir(path)) != "livingdoc" {
		t.Errorf("unexpected default config path: %s", path)
	}
}
