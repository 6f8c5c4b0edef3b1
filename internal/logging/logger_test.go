package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"ripper/internal/logging"
	"ripper/internal/services"
)

func TestConsoleHandlerFormatsLine(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	scoped := logging.NewComponentLogger(logger, "extractor")
	scoped.Info("frame written", logging.Int("saved", 3), logging.String("file", "frame_0003.png"))

	line := buf.String()
	if !strings.Contains(line, "INFO extractor: frame written") {
		t.Fatalf("unexpected console line: %q", line)
	}
	if !strings.Contains(line, "saved=3") || !strings.Contains(line, "file=frame_0003.png") {
		t.Fatalf("expected attrs in console line: %q", line)
	}
}

func TestConsoleHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("suppressed")
	logger.Warn("emitted")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Fatalf("info line should be suppressed at warn level: %q", out)
	}
	if !strings.Contains(out, "emitted") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestJSONHandlerNormalizesKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("sampling", logging.Float64("interval", 2.5))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("parse json log line: %v", err)
	}
	for _, key := range []string{"ts", "level", "msg"} {
		if _, ok := payload[key]; !ok {
			t.Fatalf("expected %q key in %v", key, payload)
		}
	}
	if payload["level"] != "info" {
		t.Fatalf("expected lowercase level, got %v", payload["level"])
	}
	if payload["interval"] != 2.5 {
		t.Fatalf("expected interval attr, got %v", payload["interval"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWithContextAddsRunFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := services.WithRunID(t.Context(), "run-42")
	ctx = services.WithVideo(ctx, "clip.mp4")
	logging.WithContext(ctx, logger).Info("started")

	line := buf.String()
	if !strings.Contains(line, "run_id=run-42") || !strings.Contains(line, "video=clip.mp4") {
		t.Fatalf("expected context fields in line: %q", line)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("should not panic", logging.Error(nil))
}
