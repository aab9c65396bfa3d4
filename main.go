package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"covidlens/adapters/coerce"
	"covidlens/adapters/tabular"
	"covidlens/domain/core"
	"covidlens/domain/table"
	"covidlens/internal"
	"covidlens/internal/config"
	"covidlens/internal/ops"
	"covidlens/internal/testkit"
	"covidlens/pipeline"
	"covidlens/ui"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := internal.NewDefaultLogger()

	gin.SetMode(cfg.Server.GinMode)

	tbl, err := loadTable(cfg, logger)
	if err != nil {
		// Missing data file is the single fatal failure: nothing renders
		// without a table.
		logger.Error("No dataset available: %v", err)
		os.Exit(1)
	}
	logger.Info("Dataset loaded: %d rows, %d columns", tbl.RowCount(), len(tbl.Headers()))

	runner := pipeline.NewRunner(logger)
	server, err := ui.NewServer(tbl, runner, logger)
	if err != nil {
		log.Fatalf("Failed to initialize dashboard server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)

	dashboard := &http.Server{Addr: ":" + cfg.Server.Port, Handler: server.Handler()}
	group.Go(func() error {
		logger.Info("[ui] dashboard listening on :%s", cfg.Server.Port)
		if err := dashboard.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	var opsServer *http.Server
	if cfg.Ops.Enabled {
		opsServer = &http.Server{
			Addr:    ":" + cfg.Ops.Port,
			Handler: ops.NewServer(func() bool { return tbl.RowCount() > 0 }).Handler(),
		}
		group.Go(func() error {
			logger.Info("[ops] sidecar listening on :%s", cfg.Ops.Port)
			if err := opsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if opsServer != nil {
			_ = opsServer.Shutdown(shutdownCtx)
		}
		return dashboard.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// loadTable reads and coerces the configured dataset. Demo mode substitutes
// a deterministic synthetic table when the file is missing.
func loadTable(cfg *config.Config, logger *internal.Logger) (*table.Table, error) {
	reader := tabular.NewDataReader(&tabular.ReaderConfig{
		FilePath: cfg.Data.DataFile,
		Sheet:    cfg.Data.Sheet,
	})
	raw, err := reader.ReadRaw()
	if err != nil {
		if cfg.Data.DemoMode && errors.Is(err, core.ErrDataFileNotFound) {
			logger.Warn("Data file missing, demo mode enabled: generating synthetic table")
			return testkit.NewGenerator(testkit.DefaultGeneratorConfig()).Generate(), nil
		}
		return nil, err
	}
	return tabular.BuildTable(raw, coerce.New(coerce.DefaultConfig())), nil
}
