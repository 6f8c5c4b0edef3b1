package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ripper/internal/services"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeVideoStub(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "input.mp4")
	if err := os.WriteFile(path, []byte("stub"), 0o644); err != nil {
		t.Fatalf("write stub video: %v", err)
	}
	return path
}

func TestRootRequiresTwoArgs(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	_, _, err := runCLI(t, "only-one-arg")
	if err == nil {
		t.Fatal("expected argument count error")
	}
}

func TestRootRejectsOutOfRangeTolerance(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	base := t.TempDir()
	video := writeVideoStub(t, base)
	output := filepath.Join(base, "frames")

	for _, tolerance := range []string{"-5", "300"} {
		_, _, err := runCLI(t, video, output, "--color", "#00FF00", "--tolerance", tolerance)
		if err == nil {
			t.Fatalf("expected validation error for tolerance %s", tolerance)
		}
		if !errors.Is(err, services.ErrValidation) {
			t.Fatalf("expected validation marker, got %v", err)
		}
		if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
			t.Fatalf("expected no output directory after validation failure, stat err: %v", statErr)
		}
	}
}

func TestRootRejectsNonPositiveFPS(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	base := t.TempDir()
	video := writeVideoStub(t, base)

	_, _, err := runCLI(t, video, filepath.Join(base, "frames"), "--color", "#00FF00", "--fps", "0")
	if err == nil {
		t.Fatal("expected validation error for fps 0")
	}
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation marker, got %v", err)
	}
}

func TestRootRejectsNegativeFeather(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	base := t.TempDir()
	video := writeVideoStub(t, base)

	_, _, err := runCLI(t, video, filepath.Join(base, "frames"), "--color", "#00FF00", "--feather", "-1")
	if err == nil {
		t.Fatal("expected validation error for feather -1")
	}
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation marker, got %v", err)
	}
}

func TestRootRequiresColor(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	base := t.TempDir()
	video := writeVideoStub(t, base)

	_, _, err := runCLI(t, video, filepath.Join(base, "frames"))
	if err == nil {
		t.Fatal("expected error when no color is given")
	}
	if !strings.Contains(strings.ToLower(err.Error()), "color") {
		t.Fatalf("expected color mention in error, got %v", err)
	}
}

func TestRootRejectsMalformedColor(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	base := t.TempDir()
	video := writeVideoStub(t, base)

	_, _, err := runCLI(t, video, filepath.Join(base, "frames"), "--color", "chartreuse")
	if err == nil {
		t.Fatal("expected validation error for bad color")
	}
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation marker, got %v", err)
	}
}

func TestRootRejectsMissingVideo(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	base := t.TempDir()

	_, _, err := runCLI(t, filepath.Join(base, "absent.mp4"), filepath.Join(base, "frames"), "--color", "#00FF00")
	if err == nil {
		t.Fatal("expected validation error for missing video")
	}
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation marker, got %v", err)
	}
}

func TestColorDefaultComesFromConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configPath := filepath.Join(home, ".config", "ripper", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if err := os.WriteFile(configPath, []byte("[defaults]\ncolor = \"#00FF00\"\ntolerance = 300\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	base := t.TempDir()
	video := writeVideoStub(t, base)

	// Config supplies the color but its tolerance is invalid, so loading fails
	// before anything touches the filesystem.
	_, _, err := runCLI(t, video, filepath.Join(base, "frames"))
	if err == nil {
		t.Fatal("expected config validation error")
	}
	if !strings.Contains(err.Error(), "tolerance") {
		t.Fatalf("expected tolerance failure from config, got %v", err)
	}
}
