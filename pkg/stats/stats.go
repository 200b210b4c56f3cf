// Package stats provides small reduction helpers for fixed-length series.
package stats

import "fmt"

// RunningMean accumulates elementwise sums over fixed-length series and
// yields their mean. Partial accumulators can be merged in any order, so
// the reduction parallelizes cleanly.
type RunningMean struct {
	sum  []float64
	runs int
}

// NewRunningMean creates an accumulator for series of the given length.
func NewRunningMean(length int) *RunningMean {
	return &RunningMean{sum: make([]float64, length)}
}

// Len returns the expected series length.
func (m *RunningMean) Len() int {
	return len(m.sum)
}

// Runs returns how many series have been accumulated.
func (m *RunningMean) Runs() int {
	return m.runs
}

// Add folds one series into the accumulator. The series length must match
// exactly; a mismatch means the caller's histories diverged.
func (m *RunningMean) Add(series []float64) error {
	if len(series) != len(m.sum) {
		return fmt.Errorf("series length %d, accumulator expects %d", len(series), len(m.sum))
	}
	for i, v := range series {
		m.sum[i] += v
	}
	m.runs++
	return nil
}

// Merge folds another accumulator into this one.
func (m *RunningMean) Merge(other *RunningMean) error {
	if other.Len() != len(m.sum) {
		return fmt.Errorf("accumulator length %d, expected %d", other.Len(), len(m.sum))
	}
	for i, v := range other.sum {
		m.sum[i] += v
	}
	m.runs += other.runs
	return nil
}

// Mean returns the elementwise mean of everything accumulated so far.
// With zero runs the result is all zeros.
func (m *RunningMean) Mean() []float64 {
	out := make([]float64, len(m.sum))
	if m.runs == 0 {
		return out
	}
	n := float64(m.runs)
	for i, v := range m.sum {
		out[i] = v / n
	}
	return out
}
