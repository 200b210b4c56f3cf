package infra

import (
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"glosten_go/internal/domain"
)

// Config holds the full application configuration. Loaded from yaml, then
// selected fields can be overridden through GM_* environment variables.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	Model struct {
		ValueLow         decimal.Decimal `yaml:"value_low"`
		ValueHigh        decimal.Decimal `yaml:"value_high"`
		InitialBelief    float64         `yaml:"initial_belief"`
		InformedFraction float64         `yaml:"informed_fraction"`
		TickCount        int             `yaml:"tick_count"`
		Replications     int             `yaml:"replications"`
	} `yaml:"model"`

	Sim struct {
		Seed    uint64 `yaml:"seed"`    // 0 means draw from entropy
		Workers int    `yaml:"workers"` // 0 means one per CPU
	} `yaml:"sim"`

	Output struct {
		CSVPath     string `yaml:"csv_path"`
		ChartPath   string `yaml:"chart_path"`
		ChartWidth  int    `yaml:"chart_width"`
		ChartHeight int    `yaml:"chart_height"`
	} `yaml:"output"`

	Serve struct {
		Enabled         bool   `yaml:"enabled"`
		Addr            string `yaml:"addr"`
		FrameIntervalMS int    `yaml:"frame_interval_ms"`
	} `yaml:"serve"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// LoadConfig reads and parses the configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	overrideWithEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Parameters converts the model section into validated domain parameters.
// The decimal value bounds keep yaml literals exact; the core runs on
// float64.
func (c *Config) Parameters() (domain.ModelParameters, error) {
	p := domain.ModelParameters{
		ValueLow:         c.Model.ValueLow.InexactFloat64(),
		ValueHigh:        c.Model.ValueHigh.InexactFloat64(),
		InitialBelief:    c.Model.InitialBelief,
		InformedFraction: c.Model.InformedFraction,
		TickCount:        c.Model.TickCount,
		ReplicationCount: c.Model.Replications,
	}
	if err := p.Validate(); err != nil {
		return domain.ModelParameters{}, err
	}
	return p, nil
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	if _, err := c.Parameters(); err != nil {
		return err
	}
	if c.Sim.Workers < 0 {
		return fmt.Errorf("sim.workers must not be negative, got %d", c.Sim.Workers)
	}
	if c.Output.ChartPath != "" && (c.Output.ChartWidth <= 0 || c.Output.ChartHeight <= 0) {
		return fmt.Errorf("chart dimensions must be positive, got %dx%d",
			c.Output.ChartWidth, c.Output.ChartHeight)
	}
	if c.Serve.Enabled {
		if c.Serve.Addr == "" {
			return fmt.Errorf("serve.addr is required when serve is enabled")
		}
		if c.Serve.FrameIntervalMS <= 0 {
			return fmt.Errorf("serve.frame_interval_ms must be positive, got %d", c.Serve.FrameIntervalMS)
		}
	}
	return nil
}

// overrideWithEnv applies environment overrides so batch runs can vary the
// campaign without editing the config file.
func overrideWithEnv(cfg *Config) {
	if v := os.Getenv("GM_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Sim.Seed = n
		}
	}
	if v := os.Getenv("GM_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Sim.Workers = n
		}
	}
	if v := os.Getenv("GM_TICKS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Model.TickCount = n
		}
	}
	if v := os.Getenv("GM_REPLICATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Model.Replications = n
		}
	}
}
