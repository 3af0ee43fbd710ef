package rankgo

import (
	"log/slog"

	"github.com/hupe1980/rankgo/tokenizer"
)

type options struct {
	tokenizer        tokenizer.Tokenizer
	logger           *Logger
	metricsCollector MetricsCollector
	parallelism      int
}

// Option configures Ranker constructor behavior.
type Option func(*options)

// WithTokenizer configures the tokenizer used for documents and queries.
//
// If nil is passed, tokenizer.NewSimple() is used.
func WithTokenizer(t tokenizer.Tokenizer) Option {
	return func(o *options) {
		if t == nil {
			t = tokenizer.NewSimple()
		}
		o.tokenizer = t
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := rankgo.NewJSONLogger(slog.LevelDebug)
//	r := rankgo.NewBM25(rankgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &rankgo.BasicMetricsCollector{}
//	r := rankgo.NewBM25(rankgo.WithMetricsCollector(metrics))
//	// ... use r ...
//	stats := metrics.GetStats()
//	fmt.Printf("Ranks: %d, Avg latency: %dns\n", stats.RankCount, stats.RankAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithParallelism bounds the number of goroutines scoring documents during
// Rank. Values below 1 fall back to GOMAXPROCS. Per-document scoring is
// independent, so parallelism never changes the result ordering.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}
