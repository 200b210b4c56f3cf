package main

import (
	"context"
	"flag"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glosten_go/internal/app"
	"glosten_go/internal/engine"
	"glosten_go/internal/export"
	"glosten_go/internal/infra"
	"glosten_go/internal/plot"
	"glosten_go/internal/serve"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to configuration file")
	flag.Parse()

	bootstrap := app.NewBootstrap()
	if err := bootstrap.Initialize(*configPath); err != nil {
		slog.Error("❌ Bootstrapping failed", slog.Any("error", err))
		os.Exit(1)
	}
	cfg := bootstrap.Config

	// Graceful shutdown context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	params, err := cfg.Parameters()
	if err != nil {
		slog.Error("❌ Invalid model parameters", slog.Any("error", err))
		os.Exit(1)
	}

	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = rand.Uint64() // unseeded campaigns still get independent paths
	}

	slog.Info("✅ Starting Monte Carlo campaign",
		slog.Int("ticks", params.TickCount),
		slog.Int("replications", params.ReplicationCount),
		slog.Uint64("seed", seed),
		slog.Int("workers", cfg.Sim.Workers))

	start := time.Now()
	agg, err := engine.NewAggregator(params, seed, cfg.Sim.Workers).Run(ctx)
	if err != nil {
		slog.Error("❌ Simulation failed", slog.Any("error", err))
		os.Exit(1)
	}

	snap := infra.GlobalMetrics.Snapshot()
	slog.Info("✨ Campaign complete",
		slog.Uint64("paths", snap.PathsCompleted),
		slog.Uint64("ticks", snap.TicksSimulated),
		slog.Duration("elapsed", time.Since(start)),
		slog.Int64("avg_path_ns", snap.AvgPathNs))

	if cfg.Output.CSVPath != "" {
		if err := export.WriteCSVFile(cfg.Output.CSVPath, agg); err != nil {
			slog.Error("Failed to write CSV", slog.Any("error", err))
			os.Exit(1)
		}
		slog.Info("📄 Wrote aggregate CSV", slog.String("path", cfg.Output.CSVPath))
	}

	if cfg.Output.ChartPath != "" {
		chart := plot.Chart{Width: cfg.Output.ChartWidth, Height: cfg.Output.ChartHeight}
		if err := chart.RenderFile(cfg.Output.ChartPath, agg); err != nil {
			slog.Error("Failed to render chart", slog.Any("error", err))
			os.Exit(1)
		}
		slog.Info("📈 Rendered chart", slog.String("path", cfg.Output.ChartPath))
	}

	if cfg.Serve.Enabled {
		srv := serve.NewServer(agg, time.Duration(cfg.Serve.FrameIntervalMS)*time.Millisecond)
		slog.Info("👀 Replay server up. Press Ctrl+C to exit.", slog.String("addr", cfg.Serve.Addr))
		if err := srv.ListenAndServe(ctx, cfg.Serve.Addr); err != nil {
			slog.Error("Replay server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}
}
