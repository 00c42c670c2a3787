package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	ExtractRequests  atomic.Int64
	MatchRequests    atomic.Int64
	MatchErrors      atomic.Int64
	HistoryRequests  atomic.Int64
	ResumeLoads      atomic.Int64
	ResumeLoadErrors atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"extract_requests":   metrics.ExtractRequests.Load(),
		"match_requests":     metrics.MatchRequests.Load(),
		"match_errors":       metrics.MatchErrors.Load(),
		"history_requests":   metrics.HistoryRequests.Load(),
		"resume_loads":       metrics.ResumeLoads.Load(),
		"resume_load_errors": metrics.ResumeLoadErrors.Load(),
		"cache_hits":         hits,
		"cache_misses":       misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"extract_requests", "match_requests", "match_errors",
		"history_requests", "resume_loads", "resume_load_errors",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the matchserver tool layer.
func IncrExtractRequests()  { metrics.ExtractRequests.Add(1) }
func IncrMatchRequests()    { metrics.MatchRequests.Add(1) }
func IncrMatchErrors()      { metrics.MatchErrors.Add(1) }
func IncrHistoryRequests()  { metrics.HistoryRequests.Add(1) }
func IncrResumeLoads()      { metrics.ResumeLoads.Add(1) }
func IncrResumeLoadErrors() { metrics.ResumeLoadErrors.Add(1) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
