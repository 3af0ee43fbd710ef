package rankgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    fitCounter    prometheus.Counter
//	    rankHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordRank(topK int, duration time.Duration, err error) {
//	    p.rankHistogram.Observe(duration.Seconds())
//	    // ... record error state, k, etc.
//	}
type MetricsCollector interface {
	// RecordFit is called after each fit operation.
	// documents is the corpus size attempted, duration is the total time
	// taken, err is nil if successful.
	RecordFit(documents int, duration time.Duration, err error)

	// RecordRank is called after each rank operation.
	// topK is the number of results requested, duration is the time
	// taken, err is nil if successful.
	RecordRank(topK int, duration time.Duration, err error)

	// RecordExplain is called after each explain operation.
	RecordExplain(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFit(int, time.Duration, error)  {}
func (NoopMetricsCollector) RecordRank(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordExplain(time.Duration, error)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FitCount          atomic.Int64
	FitErrors         atomic.Int64
	FitDocuments      atomic.Int64
	FitTotalNanos     atomic.Int64
	RankCount         atomic.Int64
	RankErrors        atomic.Int64
	RankTotalNanos    atomic.Int64
	ExplainCount      atomic.Int64
	ExplainErrors     atomic.Int64
	ExplainTotalNanos atomic.Int64
}

// RecordFit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFit(documents int, duration time.Duration, err error) {
	b.FitCount.Add(1)
	b.FitDocuments.Add(int64(documents))
	b.FitTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FitErrors.Add(1)
	}
}

// RecordRank implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRank(topK int, duration time.Duration, err error) {
	b.RankCount.Add(1)
	b.RankTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RankErrors.Add(1)
	}
}

// RecordExplain implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExplain(duration time.Duration, err error) {
	b.ExplainCount.Add(1)
	b.ExplainTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ExplainErrors.Add(1)
	}
}

// Stats is a point-in-time snapshot of collected metrics.
type Stats struct {
	FitCount      int64
	FitErrors     int64
	FitAvgNanos   int64
	RankCount     int64
	RankErrors    int64
	RankAvgNanos  int64
	ExplainCount  int64
	ExplainErrors int64
}

// GetStats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) GetStats() Stats {
	s := Stats{
		FitCount:      b.FitCount.Load(),
		FitErrors:     b.FitErrors.Load(),
		RankCount:     b.RankCount.Load(),
		RankErrors:    b.RankErrors.Load(),
		ExplainCount:  b.ExplainCount.Load(),
		ExplainErrors: b.ExplainErrors.Load(),
	}
	if s.FitCount > 0 {
		s.FitAvgNanos = b.FitTotalNanos.Load() / s.FitCount
	}
	if s.RankCount > 0 {
		s.RankAvgNanos = b.RankTotalNanos.Load() / s.RankCount
	}
	return s
}
