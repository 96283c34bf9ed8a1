// Package logging builds the process-wide structured logger.
package logging

import (
	"log/slog"
	"os"
)

// New returns a JSON slog logger. The dev environment lowers the level to
// debug; anything else logs at info.
func New(env string) *slog.Logger {
	level := slog.LevelInfo
	if env == "dev" {
		level = slog.LevelDebug
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
