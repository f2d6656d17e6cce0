package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/splt/internal/config"
)

// newLogger creates a logger with timestamps at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the command logger, or log.Default() if none
// was attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// setupLogging attaches a logger to the command context. Commands that own
// the terminal log to ~/.splt/splt.log so output does not tear the screen.
func setupLogging(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	if flagVerbose {
		level = log.DebugLevel
	}

	var w io.Writer = os.Stderr
	if _, ok := cmd.Annotations[annotationTUI]; ok {
		w = logFile()
	}

	cmd.SetContext(withLogger(cmd.Context(), newLogger(w, level)))
	return nil
}

// logFile opens ~/.splt/splt.log for appending, or discards logs when it
// cannot be opened. The file stays open for the life of the process.
func logFile() io.Writer {
	dir := config.HomeDir()
	if dir == "" {
		return io.Discard
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return io.Discard
	}
	f, err := os.OpenFile(filepath.Join(dir, "splt.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard
	}
	return f
}
