package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewConsoleLoggerWritesComponentAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	scoped := NewComponentLogger(logger, "extract")
	scoped.Info("candidates found", Args(Int("count", 3), String("video_id", "abc123"))...)

	out := buf.String()
	if !strings.Contains(out, "[extract]") {
		t.Fatalf("expected component tag in output, got %q", out)
	}
	if !strings.Contains(out, "count=3") || !strings.Contains(out, "video_id=abc123") {
		t.Fatalf("expected attrs in output, got %q", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("merge complete", Args(Int("appended", 4))...)
	if !strings.Contains(buf.String(), `"appended":4`) {
		t.Fatalf("expected json attr, got %q", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("should be dropped")
	logger.Warn("kept")
	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("info line should have been filtered, got %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("warn line missing, got %q", out)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	logger.Info("nothing")
	logger.Error("nothing", Args(Error(nil))...)
}
