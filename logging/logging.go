// Package logging configures the process-wide slog logger. Logs go to a
// rotating file so the terminal stays clean for the chat interface.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"ai_text_completion/config"

	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultLogFile = "ai_text_completion.log"

const (
	maxLogSizeMB  = 5
	maxLogBackups = 3
	maxLogAgeDays = 14
)

// Init configures slog to write structured JSON logs to a rotating file and
// installs the logger as the process default. On failure it still installs
// a discarding logger so callers can log unconditionally.
func Init(cfg config.Config) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.LogLevel)}

	logPath := strings.TrimSpace(cfg.LogFile)
	if logPath == "" {
		logPath = defaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		logger := slog.New(slog.NewJSONHandler(io.Discard, opts))
		slog.SetDefault(logger)
		return logger, err
	}

	writer := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
		Compress:   true,
	}

	logger := slog.New(slog.NewJSONHandler(writer, opts))
	slog.SetDefault(logger)
	return logger, nil
}

func defaultLogPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(homeDir) == "" {
		return filepath.Join(".ai_text_completion", "logs", defaultLogFile)
	}
	return filepath.Join(homeDir, ".ai_text_completion", "logs", defaultLogFile)
}

// ParseLevel maps a config log level string onto a slog level. Unknown
// values fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
