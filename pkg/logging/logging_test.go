package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelInfo, "JSON"))

	logger.Debug("hidden")
	logger.Info("analysis done", "records", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "analysis done" {
		t.Errorf("msg = %v, want %q", entry["msg"], "analysis done")
	}
	if entry["records"] != float64(3) {
		t.Errorf("records = %v, want 3", entry["records"])
	}
}

func TestNewHandler_Tint(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelWarn, "tint"))

	logger.Info("hidden")
	logger.Warn("slow request", "duration_ms", 1200)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("INFO record logged at WARN level: %q", out)
	}
	if !strings.Contains(out, "slow request") || !strings.Contains(out, "duration_ms") {
		t.Errorf("output %q is missing the warning", out)
	}
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("tint output looks like JSON: %q", out)
	}
}
