package rankgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with rankgo-specific context.
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

// WithModel adds the scoring model name to the logger.
func (l *Logger) WithModel(model string) *Logger {
	return &Logger{
		Logger: l.Logger.With("model", model),
	}
}

// WithTopK adds a top-k field to the logger.
func (l *Logger) WithTopK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("top_k", k),
	}
}

// LogFit logs a fit operation.
func (l *Logger) LogFit(ctx context.Context, documents, vocabulary int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fit failed",
			"documents", documents,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "fit completed",
			"documents", documents,
			"vocabulary", vocabulary,
		)
	}
}

// LogRank logs a ranking operation.
func (l *Logger) LogRank(ctx context.Context, topK, results int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "rank failed",
			"top_k", topK,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "rank completed",
			"top_k", topK,
			"results", results,
		)
	}
}

// LogExplain logs a score-explanation operation.
func (l *Logger) LogExplain(ctx context.Context, docIndex, terms int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "explain failed",
			"doc_index", docIndex,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "explain completed",
			"doc_index", docIndex,
			"terms", terms,
		)
	}
}
