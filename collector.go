package stability

import (
	"sync/atomic"
	"time"
)

// Collector defines an interface for collecting run metrics.
// Implement this interface to integrate with monitoring systems.
type Collector interface {
	// RecordFold is called after each fold finishes.
	RecordFold(fold int, duration time.Duration, err error)

	// RecordRun is called after the whole run finishes.
	RecordRun(folds int, duration time.Duration, err error)
}

// Compile-time checks.
var (
	_ Collector = (*NoopCollector)(nil)
	_ Collector = (*BasicCollector)(nil)
)

// NoopCollector is a no-op implementation of Collector.
type NoopCollector struct{}

// RecordFold does nothing.
func (NoopCollector) RecordFold(_ int, _ time.Duration, _ error) {}

// RecordRun does nothing.
func (NoopCollector) RecordRun(_ int, _ time.Duration, _ error) {}

// BasicCollector provides simple in-memory metrics collection.
// It is safe for concurrent use.
type BasicCollector struct {
	FoldCount     atomic.Int64
	FoldErrors    atomic.Int64
	FoldTotalTime atomic.Int64 // nanoseconds

	RunCount     atomic.Int64
	RunErrors    atomic.Int64
	RunTotalTime atomic.Int64 // nanoseconds
}

// RecordFold implements the Collector interface.
func (c *BasicCollector) RecordFold(_ int, duration time.Duration, err error) {
	c.FoldCount.Add(1)
	c.FoldTotalTime.Add(int64(duration))

	if err != nil {
		c.FoldErrors.Add(1)
	}
}

// RecordRun implements the Collector interface.
func (c *BasicCollector) RecordRun(_ int, duration time.Duration, err error) {
	c.RunCount.Add(1)
	c.RunTotalTime.Add(int64(duration))

	if err != nil {
		c.RunErrors.Add(1)
	}
}

// Stats is a snapshot of the values collected by a BasicCollector.
type Stats struct {
	FoldCount   int64
	FoldErrors  int64
	AvgFoldTime time.Duration

	RunCount   int64
	RunErrors  int64
	AvgRunTime time.Duration
}

// GetStats returns a snapshot of the collected metrics.
func (c *BasicCollector) GetStats() Stats {
	stats := Stats{
		FoldCount:  c.FoldCount.Load(),
		FoldErrors: c.FoldErrors.Load(),
		RunCount:   c.RunCount.Load(),
		RunErrors:  c.RunErrors.Load(),
	}

	if stats.FoldCount > 0 {
		stats.AvgFoldTime = time.Duration(c.FoldTotalTime.Load() / stats.FoldCount)
	}

	if stats.RunCount > 0 {
		stats.AvgRunTime = time.Duration(c.RunTotalTime.Load() / stats.RunCount)
	}

	return stats
}
