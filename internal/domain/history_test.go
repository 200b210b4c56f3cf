package domain

import "testing"

func TestTraderType_String(t *testing.T) {
	if TraderInformed.String() != "INFORMED" {
		t.Errorf("Expected INFORMED, got %s", TraderInformed.String())
	}
	if TraderUninformed.String() != "UNINFORMED" {
		t.Errorf("Expected UNINFORMED, got %s", TraderUninformed.String())
	}
	if TraderType(42).String() != "UNKNOWN" {
		t.Errorf("Expected UNKNOWN for out-of-range value")
	}
}

func TestNewPathHistory_Lengths(t *testing.T) {
	h := NewPathHistory(10)
	if len(h.Ticks) != 10 {
		t.Errorf("Expected 10 ticks, got %d", len(h.Ticks))
	}
	if len(h.Beliefs) != 11 {
		t.Errorf("Expected 11 beliefs (initial prepended), got %d", len(h.Beliefs))
	}
}

func TestAggregateHistory_Rows(t *testing.T) {
	agg := &AggregateHistory{
		Spread:      []float64{0.1, 0.2},
		Belief:      []float64{0.5, 0.4, 0.3},
		Fundamental: []float64{99, 101},
		Ask:         []float64{100.1, 100.2},
		Bid:         []float64{99.9, 99.8},
	}

	rows := agg.Rows()
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}

	// Row t carries the post-tick belief Belief[t+1].
	if rows[0].Belief != 0.4 {
		t.Errorf("Row 0 should carry post-tick belief 0.4, got %g", rows[0].Belief)
	}
	if rows[1].Belief != 0.3 {
		t.Errorf("Row 1 should carry post-tick belief 0.3, got %g", rows[1].Belief)
	}
	if rows[0].Tick != 0 || rows[1].Tick != 1 {
		t.Error("Row ticks should be sequential from 0")
	}
	if rows[1].Ask != 100.2 || rows[1].Bid != 99.8 || rows[1].Fundamental != 101 || rows[1].Spread != 0.2 {
		t.Errorf("Row 1 fields misaligned: %+v", rows[1])
	}
}
