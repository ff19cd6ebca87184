package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// NewLogger builds the process logger and installs it as the slog default.
// The json format is for deployments; text adds source locations for local
// runs. A nil w logs to stderr.
func NewLogger(cfg LogConfig, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	logger := slog.New(newHandler(cfg, w))
	slog.SetDefault(logger)
	return logger
}

func newHandler(cfg LogConfig, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	if normalize(cfg.Format) == "json" {
		return slog.NewJSONHandler(w, opts)
	}

	opts.AddSource = true
	return slog.NewTextHandler(w, opts)
}

// parseLevel maps a level name; unknown names log at info
func parseLevel(s string) slog.Level {
	if level, ok := levels[normalize(s)]; ok {
		return level
	}
	return slog.LevelInfo
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
