package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

var base = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

// Init configures the process-wide logger (called once from main).
func Init(level string) {
	base = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: ParseLevel(level)}))
	slog.SetDefault(base)
}

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

// Enabled reports whether messages at the given level are emitted.
func Enabled(level slog.Level) bool {
	return base.Enabled(context.Background(), level)
}

func Infof(format string, v ...any) {
	logf(slog.LevelInfo, format, v...)
}

func Warnf(format string, v ...any) {
	logf(slog.LevelWarn, format, v...)
}

func Errorf(format string, v ...any) {
	logf(slog.LevelError, format, v...)
}

func Debugf(format string, v ...any) {
	logf(slog.LevelDebug, format, v...)
}

func Fatalf(format string, v ...any) {
	logf(slog.LevelError, "[FATAL] "+format, v...)
	os.Exit(1)
}

func logf(level slog.Level, format string, v ...any) {
	ctx := context.Background()
	if !base.Enabled(ctx, level) {
		return
	}
	base.Log(ctx, level, fmt.Sprintf(format, v...))
}
