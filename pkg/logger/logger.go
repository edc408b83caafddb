package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"JerseyStoreAPI/configs"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// NewLogger builds the service logger: JSON to stdout plus a rotated file.
func NewLogger(cfg *configs.Config) *slog.Logger {
	_ = os.MkdirAll(filepath.Dir(cfg.Log.FilePath), 0755)

	rot := &lumberjack.Logger{
		Filename:   cfg.Log.FilePath,
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
	}
	mw := io.MultiWriter(os.Stdout, rot)

	level := slog.LevelInfo
	addSource := false
	switch cfg.Env {
	case envLocal, envDev:
		level = slog.LevelDebug
		addSource = true
	case envProd:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(mw, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	}))
}

// NewTestLogger discards all output; used by the test suites.
func NewTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}
