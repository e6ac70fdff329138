// Package logging configures the process-wide slog logger from the LOG_LEVEL
// environment variable, the same convention the teacher's util.InitSlog
// (logutil.go) uses.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Init configures slog's default logger based on the LOG_LEVEL environment
// variable. Supported levels: debug, info, warn, error; anything else
// (including LOG_LEVEL being unset) defaults to info.
func Init() {
	level := slog.LevelInfo
	if raw, ok := os.LookupEnv("LOG_LEVEL"); ok {
		switch strings.ToLower(raw) {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
