package infra

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"glosten_go/internal/domain"
)

const validYAML = `
app:
  name: glosten
  version: 0.1.0
model:
  value_low: 99
  value_high: 101
  initial_belief: 0.5
  informed_fraction: 0.2
  tick_count: 1000
  replications: 1000
sim:
  seed: 42
  workers: 0
output:
  csv_path: out/aggregate.csv
  chart_path: out/aggregate.png
  chart_width: 1200
  chart_height: 900
serve:
  enabled: false
  addr: "localhost:8089"
  frame_interval_ms: 20
logging:
  level: info
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	params, err := cfg.Parameters()
	if err != nil {
		t.Fatalf("Parameters failed: %v", err)
	}
	if params.ValueLow != 99 || params.ValueHigh != 101 {
		t.Errorf("Value bounds wrong: %v / %v", params.ValueLow, params.ValueHigh)
	}
	if params.TickCount != 1000 || params.ReplicationCount != 1000 {
		t.Errorf("Counts wrong: %d / %d", params.TickCount, params.ReplicationCount)
	}
	if cfg.Sim.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.Sim.Seed)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadConfig_InvalidModel(t *testing.T) {
	bad := `
model:
  value_low: 101
  value_high: 99
  initial_belief: 0.5
  informed_fraction: 0.2
  tick_count: 10
  replications: 10
`
	_, err := LoadConfig(writeConfig(t, bad))
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !errors.Is(err, domain.ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter, got %v", err)
	}
}

func TestLoadConfig_ServeRequiresAddr(t *testing.T) {
	bad := `
model:
  value_low: 99
  value_high: 101
  initial_belief: 0.5
  informed_fraction: 0.2
  tick_count: 10
  replications: 10
serve:
  enabled: true
  frame_interval_ms: 20
`
	if _, err := LoadConfig(writeConfig(t, bad)); err == nil {
		t.Error("Expected error when serve is enabled without an address")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GM_SEED", "1337")
	t.Setenv("GM_TICKS", "77")
	t.Setenv("GM_REPLICATIONS", "5")
	t.Setenv("GM_WORKERS", "3")

	cfg, err := LoadConfig(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Sim.Seed != 1337 {
		t.Errorf("Expected seed override 1337, got %d", cfg.Sim.Seed)
	}
	if cfg.Model.TickCount != 77 {
		t.Errorf("Expected tick override 77, got %d", cfg.Model.TickCount)
	}
	if cfg.Model.Replications != 5 {
		t.Errorf("Expected replication override 5, got %d", cfg.Model.Replications)
	}
	if cfg.Sim.Workers != 3 {
		t.Errorf("Expected worker override 3, got %d", cfg.Sim.Workers)
	}
}
