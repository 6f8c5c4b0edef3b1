package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ripper/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, path, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatalf("expected no config file at %s", path)
	}
	if cfg.Defaults.Tolerance != 30 || cfg.Defaults.FPS != 12 || cfg.Defaults.Feather != 2 {
		t.Fatalf("unexpected defaults: %+v", cfg.Defaults)
	}
	if cfg.Output.Format != "png" {
		t.Fatalf("unexpected output format: %q", cfg.Output.Format)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.FFprobeBinary() != "ffprobe" {
		t.Fatalf("unexpected ffprobe binary: %q", cfg.FFprobeBinary())
	}
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[defaults]
color = "#00FF00"
tolerance = 12
fps = 24
feather = 0

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatalf("expected config at %s to be read", resolved)
	}
	if cfg.Defaults.Color != "#00FF00" || cfg.Defaults.Tolerance != 12 || cfg.Defaults.FPS != 24 || cfg.Defaults.Feather != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg.Defaults)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging values, got %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		errPart string
	}{
		{"tolerance high", "[defaults]\ntolerance = 300\n", "tolerance"},
		{"tolerance negative", "[defaults]\ntolerance = -5\n", "tolerance"},
		{"fps zero", "[defaults]\nfps = 0\n", "fps"},
		{"feather negative", "[defaults]\nfeather = -1\n", "feather"},
		{"bad color", "[defaults]\ncolor = \"nope\"\n", "color"},
		{"bad output format", "[output]\nformat = \"jpeg\"\n", "output.format"},
		{"bad log format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"bad log level", "[logging]\nlevel = \"loud\"\n", "logging.level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.errPart) {
				t.Fatalf("expected %q in error, got %v", tc.errPart, err)
			}
		})
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to be read")
	}
	if cfg.Defaults.Tolerance != 30 {
		t.Fatalf("unexpected sample tolerance: %d", cfg.Defaults.Tolerance)
	}
}

func TestExpandPathHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	expanded, err := config.ExpandPath("~/frames")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if expanded != filepath.Join(home, "frames") {
		t.Fatalf("ExpandPath = %q, want %q", expanded, filepath.Join(home, "frames"))
	}
}
