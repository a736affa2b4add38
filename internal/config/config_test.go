package config

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// CONFIG FILE TESTS
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Output.Format != FormatText {
		t.Errorf("expected Format=text, got %s", cfg.Output.Format)
	}
	if cfg.Engine.Workers != 1 {
		t.Errorf("expected Workers=1, got %d", cfg.Engine.Workers)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected Level=warn, got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	// Ensure no env vars interfere
	t.Setenv("CSF2DET_FORMAT", "")
	t.Setenv("CSF2DET_WORKERS", "")
	t.Setenv("CSF2DET_LOG_LEVEL", "")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Output.Format = FormatJSON
	cfg.Engine.Workers = 3
	cfg.Logging.Categories = map[string]bool{"render": false}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Output.Format != FormatJSON {
		t.Errorf("expected Format=json, got %s", loaded.Output.Format)
	}
	if loaded.Engine.Workers != 3 {
		t.Errorf("expected Workers=3, got %d", loaded.Engine.Workers)
	}
	if loaded.Logging.IsCategoryEnabled("render") {
		t.Error("expected render category to be disabled")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("CSF2DET_FORMAT", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output.Format != FormatText {
		t.Errorf("expected defaults, got format %s", cfg.Output.Format)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("CSF2DET_FORMAT", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("engine:\n  workers: 6\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Engine.Workers != 6 {
		t.Errorf("expected Workers=6, got %d", cfg.Engine.Workers)
	}
	if cfg.Engine.BatchSize != 256 {
		t.Errorf("expected default BatchSize=256, got %d", cfg.Engine.BatchSize)
	}
	if cfg.Output.Format != FormatText {
		t.Errorf("expected default format, got %s", cfg.Output.Format)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("output: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown format")
	}

	cfg = DefaultConfig()
	cfg.Engine.MaxDeterminants = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for negative cap")
	}

	cfg = DefaultConfig()
	cfg.Logging.Level = "chatty"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown log level")
	}

	cfg = DefaultConfig()
	cfg.Logging.Format = "logfmt"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown log format")
	}
}

func TestConfig_EffectiveWorkers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Engine.Workers = 0
	if cfg.EffectiveWorkers() < 1 {
		t.Errorf("expected at least one worker, got %d", cfg.EffectiveWorkers())
	}
	cfg.Engine.Workers = 5
	if cfg.EffectiveWorkers() != 5 {
		t.Errorf("expected 5 workers, got %d", cfg.EffectiveWorkers())
	}
}

func TestLoggingConfig_IsCategoryEnabled(t *testing.T) {
	var c LoggingConfig
	if !c.IsCategoryEnabled("expand") {
		t.Error("categories should be enabled without a filter")
	}
	c.Categories = map[string]bool{"expand": false, "batch": true}
	if c.IsCategoryEnabled("expand") {
		t.Error("expand should be disabled")
	}
	if !c.IsCategoryEnabled("batch") || !c.IsCategoryEnabled("render") {
		t.Error("batch and unlisted render should be enabled")
	}
}
