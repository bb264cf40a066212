package sbbf

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with filter-specific context.
// This provides structured logging with consistent field names.
//
// Nothing is ever logged from the unchecked entry points.
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithBackend adds a backend field to the logger.
func (l *Logger) WithBackend(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("backend", name),
	}
}

// LogResolve logs which backend a filter handle runs on.
func (l *Logger) LogResolve(backend string, forced bool) {
	l.Debug("filter backend resolved",
		"backend", backend,
		"forced", forced,
	)
}

// LogInvalidBuffer logs a rejected buffer at the checked boundary.
func (l *Logger) LogInvalidBuffer(op string, err error) {
	l.Debug("buffer rejected",
		"op", op,
		"error", err,
	)
}

// LogParallelInsert logs the outcome of a parallel insert.
func (l *Logger) LogParallelInsert(ctx context.Context, count, workers, present int, err error) {
	if err != nil {
		l.WarnContext(ctx, "parallel insert aborted",
			"count", count,
			"workers", workers,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "parallel insert completed",
			"count", count,
			"workers", workers,
			"present", present,
		)
	}
}
