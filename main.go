package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"spacex-dashboard/config"
	"spacex-dashboard/dashboard"
	"spacex-dashboard/models"
	"spacex-dashboard/services"
	"spacex-dashboard/snapshot"
	"spacex-dashboard/storage"
	"spacex-dashboard/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("=== SpaceX Launch Records Dashboard starting ===")
	logger.Info("Config | dataset: %s | listen: %s | store: %q | snapshots: %q",
		cfg.DatasetPath, cfg.Addr(), cfg.StoreDriver, cfg.SnapshotDir)

	rawLaunches, err := storage.NewCSVReader(cfg.DatasetPath).ReadRaw()
	if err != nil {
		logger.Error("Failed to read dataset: %v", err)
		os.Exit(1)
	}

	cleaner := services.NewCleaner(logger)
	records, err := cleaner.Clean(rawLaunches)
	if err != nil {
		logger.Error("Dataset is malformed: %v", err)
		os.Exit(1)
	}
	logger.Info("Loaded %d launches from %s", len(records), cfg.DatasetPath)

	if cfg.StoreDriver != "" {
		records = mirrorToStore(ctx, cfg, logger, records)
	}

	ds, err := services.NewDataset(records)
	if err != nil {
		logger.Error("Failed to build dataset: %v", err)
		os.Exit(1)
	}

	summarySvc := services.NewSummaryService(logger)
	summary := summarySvc.Generate(ds)
	summarySvc.Print(os.Stdout, summary)

	layout := services.BuildLayout(ds, services.SliderConfig{
		Min:  cfg.SliderMin,
		Max:  cfg.SliderMax,
		Step: cfg.SliderStep,
	})
	charts := services.NewChartService(ds, logger)

	rt := dashboard.NewRuntime(logger)
	if err := dashboard.RegisterCharts(rt, charts); err != nil {
		logger.Error("Failed to register callbacks: %v", err)
		os.Exit(1)
	}

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		logger.Error("Failed to listen on %s: %v", cfg.Addr(), err)
		os.Exit(1)
	}

	server := dashboard.NewServer(rt, layout, charts, summary, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return rt.Run(gctx) })
	g.Go(func() error { return server.Serve(gctx, ln) })
	if cfg.SnapshotDir != "" {
		g.Go(func() error {
			exportSnapshots(gctx, cfg, logger, "http://"+ln.Addr().String(), layout)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("Dashboard stopped: %v", err)
		os.Exit(1)
	}
	fmt.Println("  Done.")
}

// mirrorToStore writes the cleaned launches to the configured SQL store and
// reads them back. On any store failure the CSV records are used as-is.
func mirrorToStore(ctx context.Context, cfg *config.Config, logger *utils.Logger, records []*models.LaunchRecord) []*models.LaunchRecord {
	if cfg.StoreDriver == "sqlite" {
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
			logger.Error("Failed to create store directory: %v", err)
			return records
		}
	}

	store, err := storage.NewSQLStore(ctx, cfg.StoreDriver, cfg.DSN(), &utils.RetryConfig{
		MaxAttempts: cfg.MaxRetries,
		BaseDelay:   time.Second,
		Logger:      logger,
	})
	if err != nil {
		logger.Error("Failed to connect to %s store: %v", cfg.StoreDriver, err)
		return records
	}
	defer store.Close()

	if err := store.Write(records); err != nil {
		logger.Error("%s store write failed: %v", store.Driver(), err)
		return records
	}
	logger.Info("Launches stored in %s (table: launches)", store.Driver())

	stored, err := store.FetchAll()
	if err != nil {
		logger.Error("Failed to fetch launches from store: %v", err)
		return records
	}
	return stored
}

// exportSnapshots captures every site selection once the server is up.
// Failures are logged and never stop the dashboard.
func exportSnapshots(ctx context.Context, cfg *config.Config, logger *utils.Logger, baseURL string, layout *models.Layout) {
	files, err := snapshot.New(cfg, logger).Export(ctx, baseURL, layout)
	if err != nil {
		logger.Warn("[snapshot] some captures failed: %v", err)
	}
	for _, f := range files {
		logger.Info("[snapshot] saved %s", f)
	}
}
