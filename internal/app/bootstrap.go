package app

import (
	"log/slog"

	"glosten_go/internal/infra"
)

// Bootstrap orchestrates the application startup sequence
type Bootstrap struct {
	Config *infra.Config
}

// NewBootstrap creates a new Bootstrap instance
func NewBootstrap() *Bootstrap {
	return &Bootstrap{}
}

// Initialize loads configuration and installs the default logger.
func (b *Bootstrap) Initialize(configPath string) error {
	cfg, err := infra.LoadConfig(configPath)
	if err != nil {
		return err // Let main handle the error
	}
	b.Config = cfg

	slog.SetDefault(infra.NewLogger(cfg))

	slog.Info("🚀 Bootstrapped",
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version))
	return nil
}
