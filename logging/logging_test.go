package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"ai_text_completion/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
		{"  info  ", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestInitWritesToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "test.log")

	cfg := config.Default()
	cfg.LogFile = logPath
	cfg.LogLevel = "debug"

	logger, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	logger.Debug("test_event", "key", "value")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("log entry is not JSON: %v (%q)", err, data)
	}
	if entry["msg"] != "test_event" {
		t.Errorf("log msg = %v, want test_event", entry["msg"])
	}
	if entry["key"] != "value" {
		t.Errorf("log attr key = %v, want value", entry["key"])
	}
}

func TestInitLevelFilter(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	cfg := config.Default()
	cfg.LogFile = logPath
	cfg.LogLevel = "error"

	logger, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	logger.Info("should_be_filtered")

	data, err := os.ReadFile(logPath)
	if err == nil && len(data) > 0 {
		t.Errorf("info entry written despite error level: %q", data)
	}
}
