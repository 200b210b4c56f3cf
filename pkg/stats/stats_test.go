package stats

import (
	"math"
	"testing"
)

func TestRunningMean_AddAndMean(t *testing.T) {
	m := NewRunningMean(3)

	if err := m.Add([]float64{1, 2, 3}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := m.Add([]float64{3, 4, 5}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	mean := m.Mean()
	want := []float64{2, 3, 4}
	for i := range want {
		if mean[i] != want[i] {
			t.Errorf("Mean[%d] = %v, want %v", i, mean[i], want[i])
		}
	}
	if m.Runs() != 2 {
		t.Errorf("Expected 2 runs, got %d", m.Runs())
	}
}

func TestRunningMean_LengthMismatch(t *testing.T) {
	m := NewRunningMean(3)
	if err := m.Add([]float64{1, 2}); err == nil {
		t.Error("Expected error on short series")
	}
	if err := m.Add([]float64{1, 2, 3, 4}); err == nil {
		t.Error("Expected error on long series")
	}
	if m.Runs() != 0 {
		t.Errorf("Failed adds must not count as runs, got %d", m.Runs())
	}
}

func TestRunningMean_MergeIsOrderIndependent(t *testing.T) {
	series := [][]float64{{1, 10}, {2, 20}, {3, 30}, {4, 40}}

	// Sequential accumulation.
	seq := NewRunningMean(2)
	for _, s := range series {
		if err := seq.Add(s); err != nil {
			t.Fatal(err)
		}
	}

	// Two partials merged in reverse order.
	a, b := NewRunningMean(2), NewRunningMean(2)
	a.Add(series[0])
	a.Add(series[1])
	b.Add(series[2])
	b.Add(series[3])

	merged := NewRunningMean(2)
	if err := merged.Merge(b); err != nil {
		t.Fatal(err)
	}
	if err := merged.Merge(a); err != nil {
		t.Fatal(err)
	}

	sm, mm := seq.Mean(), merged.Mean()
	for i := range sm {
		if math.Abs(sm[i]-mm[i]) > 1e-12 {
			t.Errorf("Merged mean diverged at %d: %v vs %v", i, mm[i], sm[i])
		}
	}
	if merged.Runs() != seq.Runs() {
		t.Errorf("Run counts diverged: %d vs %d", merged.Runs(), seq.Runs())
	}
}

func TestRunningMean_MergeLengthMismatch(t *testing.T) {
	m := NewRunningMean(2)
	if err := m.Merge(NewRunningMean(3)); err == nil {
		t.Error("Expected error on mismatched accumulator lengths")
	}
}

func TestRunningMean_EmptyMeanIsZeros(t *testing.T) {
	mean := NewRunningMean(4).Mean()
	for i, v := range mean {
		if v != 0 {
			t.Errorf("Mean[%d] = %v, want 0", i, v)
		}
	}
}
