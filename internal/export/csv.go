// Package export writes the aggregated series in the tabular form the rest
// of the system consumes: one row per tick.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"

	"glosten_go/internal/domain"
)

// rounding keeps exported values stable across runs of equivalent campaigns
// without losing anything a chart or notebook would care about.
const exportPrecision = 9

var header = []string{"t", "spread", "delta", "fundamental", "ask", "bid"}

// WriteCSV writes the aggregate as (t, spread, delta, fundamental, ask, bid)
// rows. The delta column is the post-tick belief.
func WriteCSV(w io.Writer, agg *domain.AggregateHistory) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range agg.Rows() {
		rec := []string{
			strconv.Itoa(r.Tick),
			formatValue(r.Spread),
			formatValue(r.Belief),
			formatValue(r.Fundamental),
			formatValue(r.Ask),
			formatValue(r.Bid),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row %d: %w", r.Tick, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the aggregate to path, creating parent directories.
func WriteCSVFile(path string, agg *domain.AggregateHistory) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteCSV(f, agg); err != nil {
		return err
	}
	return f.Close()
}

func formatValue(v float64) string {
	return decimal.NewFromFloat(v).Round(exportPrecision).String()
}
