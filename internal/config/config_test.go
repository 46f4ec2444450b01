package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 600 {
		t.Errorf("expected height 600, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Test mesh defaults
	if cfg.Mesh.Stacks != 64 {
		t.Errorf("expected stacks 64, got %d", cfg.Mesh.Stacks)
	}
	if cfg.Mesh.Slices != 64 {
		t.Errorf("expected slices 64, got %d", cfg.Mesh.Slices)
	}

	// Test camera defaults
	if cfg.Camera.MoveSpeed != 2.5 {
		t.Errorf("expected move speed 2.5, got %f", cfg.Camera.MoveSpeed)
	}
	if cfg.Camera.MouseSensitivity != 0.1 {
		t.Errorf("expected mouse sensitivity 0.1, got %f", cfg.Camera.MouseSensitivity)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

mesh:
  stacks: 32
  slices: 48

camera:
  move_speed: 5.0
  mouse_sensitivity: 0.25

logging:
  level: "debug"
  log_file: "morphview.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Mesh.Stacks != 32 {
		t.Errorf("expected stacks 32, got %d", cfg.Mesh.Stacks)
	}
	if cfg.Mesh.Slices != 48 {
		t.Errorf("expected slices 48, got %d", cfg.Mesh.Slices)
	}

	if cfg.Camera.MoveSpeed != 5.0 {
		t.Errorf("expected move speed 5.0, got %f", cfg.Camera.MoveSpeed)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "morphview.log" {
		t.Errorf("expected log file 'morphview.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadPartialFile(t *testing.T) {
	// Values absent from the file keep their defaults.
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
mesh:
  stacks: 16
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Mesh.Stacks != 16 {
		t.Errorf("expected stacks 16, got %d", cfg.Mesh.Stacks)
	}
	if cfg.Mesh.Slices != 64 {
		t.Errorf("expected slices to keep default 64, got %d", cfg.Mesh.Slices)
	}
	if cfg.Graphics.Width != 800 {
		t.Errorf("expected width to keep default 800, got %d", cfg.Graphics.Width)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 1024
	cfg.Mesh.Slices = 96

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, configPath); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}

	if loaded.Graphics.Width != 1024 {
		t.Errorf("expected reloaded width 1024, got %d", loaded.Graphics.Width)
	}
	if loaded.Mesh.Slices != 96 {
		t.Errorf("expected reloaded slices 96, got %d", loaded.Mesh.Slices)
	}
}
