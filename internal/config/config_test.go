package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReloadDefaults(t *testing.T) {
	if err := Reload(""); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}

	if Instance.Debug {
		t.Error("debug should default to false")
	}
	if Instance.LogFormat != "human" {
		t.Errorf("log_format = %q, want %q", Instance.LogFormat, "human")
	}
	if Instance.DefaultPreset != 6 {
		t.Errorf("default_preset = %d, want 6", Instance.DefaultPreset)
	}
}

func TestReloadEnvOverride(t *testing.T) {
	t.Setenv("LZMA_TOOL_DEFAULT_PRESET", "3")
	t.Setenv("LZMA_TOOL_DEBUG", "true")

	if err := Reload(""); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}

	if Instance.DefaultPreset != 3 {
		t.Errorf("default_preset = %d, want env override 3", Instance.DefaultPreset)
	}
	if !Instance.Debug {
		t.Error("debug env override not applied")
	}
}

func TestReloadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "custom.yaml")
	content := "default_preset: 9\nlog_format: json\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Reload(cfgPath); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}

	if !ConfigLoaded {
		t.Error("ConfigLoaded should be set after reading an explicit file")
	}
	if ConfigFile != cfgPath {
		t.Errorf("ConfigFile = %q, want %q", ConfigFile, cfgPath)
	}
	if Instance.DefaultPreset != 9 {
		t.Errorf("default_preset = %d, want 9", Instance.DefaultPreset)
	}
	if Instance.LogFormat != "json" {
		t.Errorf("log_format = %q, want %q", Instance.LogFormat, "json")
	}
}

func TestReloadMissingExplicitFile(t *testing.T) {
	if err := Reload(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for an explicitly specified missing config file")
	}
}
