package logger

import (
	"os"

	"log/slog"
)

// SetupPrettySlog is the local-development logger: human-readable text
// output at debug level.
func SetupPrettySlog() *slog.Logger {
	return slog.New(
		slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}),
	)
}
