package hashvec

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with hashvec-specific context.
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
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithKey adds the fields of a registry key to the logger.
func (l *Logger) WithKey(k Key) *Logger {
	return &Logger{
		Logger: l.Logger.With("family", k.Family.String(), "elem", k.Elem.String()),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogRegister logs the population of a registry.
func (l *Logger) LogRegister(kind string, entries int, err error) {
	if err != nil {
		l.Error("register failed",
			"kind", kind,
			"error", err,
		)
		return
	}
	l.Debug("register completed",
		"kind", kind,
		"entries", entries,
	)
}

// LogLookup logs a registry lookup.
func (l *Logger) LogLookup(k Key, err error) {
	if err != nil {
		l.Warn("lookup failed",
			"key", k.String(),
			"error", err,
		)
		return
	}
	l.Debug("lookup completed",
		"key", k.String(),
	)
}

// LogBatch logs a batch evaluation.
func (l *Logger) LogBatch(ctx context.Context, count, failed int, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "batch failed",
			"total", count,
			"failed", failed,
			"error", err,
		)
	default:
		l.DebugContext(ctx, "batch completed",
			"count", count,
		)
	}
}
