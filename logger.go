package seggo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with segmentation-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithSeed adds the derived or caller-supplied seed to the logger.
func (l *Logger) WithSeed(seed uint32) *Logger {
	return &Logger{
		Logger: l.Logger.With("seed", seed),
	}
}

// WithK adds a cluster count field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithRows adds a row count field to the logger.
func (l *Logger) WithRows(rows int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rows", rows),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogRun logs one multi-start clustering run.
func (l *Logger) LogRun(ctx context.Context, k int, inertia float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "clustering run failed",
			"k", k,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "clustering run completed",
			"k", k,
			"inertia", inertia,
		)
	}
}

// LogSweep logs a full k sweep.
func (l *Logger) LogSweep(ctx context.Context, kMin, kMax, finalK int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sweep failed",
			"k_min", kMin,
			"k_max", kMax,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "sweep completed",
			"k_min", kMin,
			"k_max", kMax,
			"final_k", finalK,
		)
	}
}

// LogSnapshot logs a snapshot persistence operation.
func (l *Logger) LogSnapshot(ctx context.Context, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot saved",
			"name", name,
		)
	}
}
