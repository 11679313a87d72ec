package hashkit

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with hashkit-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithAlgorithm adds an algorithm field to the logger.
func (l *Logger) WithAlgorithm(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("algorithm", name),
	}
}

// WithStore adds a store field to the logger.
func (l *Logger) WithStore(store string) *Logger {
	return &Logger{
		Logger: l.Logger.With("store", store),
	}
}

// LogSum logs a digest computation. Failures are logged at debug level
// because the error is also returned to the caller in the Result.
func (l *Logger) LogSum(ctx context.Context, name, algorithm string, size int64, err error) {
	if err != nil {
		l.DebugContext(ctx, "sum failed",
			"name", name,
			"algorithm", algorithm,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "sum completed",
			"name", name,
			"algorithm", algorithm,
			"size", size,
		)
	}
}

// LogSumAll logs a batch of digest computations.
func (l *Logger) LogSumAll(ctx context.Context, count, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "batch sum completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
	} else {
		l.InfoContext(ctx, "batch sum completed",
			"count", count,
		)
	}
}

// LogRingRebuild logs a ring membership change.
func (l *Logger) LogRingRebuild(ctx context.Context, members []string, points int) {
	l.InfoContext(ctx, "hash ring rebuild",
		"members", members,
		"points", points,
	)
}

// LogLookup logs a ring lookup.
func (l *Logger) LogLookup(ctx context.Context, key []byte, node string, err error) {
	if err != nil {
		l.DebugContext(ctx, "lookup failed",
			"key", string(key),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "lookup completed",
			"key", string(key),
			"node", node,
		)
	}
}
