package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"glosten_go/internal/domain"
)

func sampleAggregate() *domain.AggregateHistory {
	return &domain.AggregateHistory{
		Spread:      []float64{0.096, 0.1},
		Belief:      []float64{0.5, 0.4, 0.6},
		Fundamental: []float64{101, 99},
		Ask:         []float64{100.1, 100.12},
		Bid:         []float64{99.9, 99.88},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleAggregate()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Output is not valid CSV: %v", err)
	}

	if len(records) != 3 { // header + 2 rows
		t.Fatalf("Expected 3 records, got %d", len(records))
	}
	if strings.Join(records[0], ",") != "t,spread,delta,fundamental,ask,bid" {
		t.Errorf("Unexpected header: %v", records[0])
	}

	// Row 0: post-tick belief 0.4, quotes from the sample.
	want := []string{"0", "0.096", "0.4", "101", "100.1", "99.9"}
	for i, cell := range want {
		if records[1][i] != cell {
			t.Errorf("Row 0 col %d: got %q, want %q", i, records[1][i], cell)
		}
	}
	if records[2][0] != "1" || records[2][2] != "0.6" {
		t.Errorf("Row 1 misaligned: %v", records[2])
	}
}

func TestWriteCSVFile_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "aggregate.csv")

	if err := WriteCSVFile(path, sampleAggregate()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Output file missing: %v", err)
	}
	if !strings.HasPrefix(string(data), "t,spread,delta,fundamental,ask,bid\n") {
		t.Error("File does not start with the header row")
	}
}
