package infra

import (
	"sync/atomic"
	"time"
)

// Metrics provides lightweight observability without external dependencies.
// Uses atomic operations for thread-safety across simulation workers.
type Metrics struct {
	// Counters
	pathsCompleted atomic.Uint64
	ticksSimulated atomic.Uint64
	pathErrors     atomic.Uint64

	// Per-path latency tracking
	pathLatencySumNs atomic.Int64
	pathLatencyCount atomic.Uint64

	// Gauges
	activeWorkers atomic.Int32
}

// GlobalMetrics is the singleton metrics instance.
var GlobalMetrics = &Metrics{}

// RecordPath records one completed path with its tick count and latency.
func (m *Metrics) RecordPath(ticks int, latencyNs int64) {
	m.pathsCompleted.Add(1)
	m.ticksSimulated.Add(uint64(ticks))
	m.pathLatencySumNs.Add(latencyNs)
	m.pathLatencyCount.Add(1)
}

// RecordPathError records a path that aborted with an error.
func (m *Metrics) RecordPathError() {
	m.pathErrors.Add(1)
}

// SetActiveWorkers sets the current worker pool size.
func (m *Metrics) SetActiveWorkers(count int32) {
	m.activeWorkers.Store(count)
}

// MetricsSnapshot is a point-in-time view of all metrics.
type MetricsSnapshot struct {
	PathsCompleted uint64
	TicksSimulated uint64
	PathErrors     uint64
	AvgPathNs      int64
	ActiveWorkers  int32
	Timestamp      time.Time
}

// Snapshot returns current metrics as a snapshot.
func (m *Metrics) Snapshot() MetricsSnapshot {
	var avgPath int64
	count := m.pathLatencyCount.Load()
	if count > 0 {
		avgPath = m.pathLatencySumNs.Load() / int64(count)
	}

	return MetricsSnapshot{
		PathsCompleted: m.pathsCompleted.Load(),
		TicksSimulated: m.ticksSimulated.Load(),
		PathErrors:     m.pathErrors.Load(),
		AvgPathNs:      avgPath,
		ActiveWorkers:  m.activeWorkers.Load(),
		Timestamp:      time.Now(),
	}
}

// Reset clears all metrics (for testing).
func (m *Metrics) Reset() {
	m.pathsCompleted.Store(0)
	m.ticksSimulated.Store(0)
	m.pathErrors.Store(0)
	m.pathLatencySumNs.Store(0)
	m.pathLatencyCount.Store(0)
	m.activeWorkers.Store(0)
}
