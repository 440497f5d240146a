package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/timetracker-backend/internal/config"
)

// NewLogger builds the process logger on stderr and installs it as the slog
// default. See NewLoggerTo for the format and level rules.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := NewLoggerTo(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

// NewLoggerTo builds a logger writing to w.
//
// Format "json" is meant for the server; "text" adds source locations and is
// what trackctl uses by default. Unknown levels fall back to info.
func NewLoggerTo(w io.Writer, cfg config.LogConfig) *slog.Logger {
	text := !strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: text,
	}

	if text {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
