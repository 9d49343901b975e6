package logger

import (
	"log/slog"
	"os"
	"strings"
)

var Logger *slog.Logger

// InitLogger sets up the package-level logger with a text handler at info
// level. Used by main and by tests that need a non-nil Logger.
func InitLogger() *slog.Logger {
	config := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	Logger = slog.New(slog.NewTextHandler(os.Stdout, config))
	slog.SetDefault(Logger)

	Logger.Info("Logger initialized")

	return Logger
}

// InitLoggerWithConfig honors the configured level and format.
func InitLoggerWithConfig(level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	return Logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SafeError logs through the package logger, tolerating an uninitialized
// logger during tests.
func SafeError(msg string, args ...any) {
	if Logger == nil {
		return
	}
	Logger.Error(msg, args...)
}

func SafeWarn(msg string, args ...any) {
	if Logger == nil {
		return
	}
	Logger.Warn(msg, args...)
}

func SafeInfo(msg string, args ...any) {
	if Logger == nil {
		return
	}
	Logger.Info(msg, args...)
}
