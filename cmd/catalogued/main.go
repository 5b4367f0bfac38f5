package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"btp-catalogue/internal/common"
	"btp-catalogue/internal/export"
	"btp-catalogue/internal/extract"
	"btp-catalogue/internal/health"
	"btp-catalogue/internal/llm/gemini"
	"btp-catalogue/internal/pipeline"
	"btp-catalogue/internal/repository"
	"btp-catalogue/internal/server"
	"btp-catalogue/internal/storage"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, cfg.Database, log)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer repository.Close(entc, pool, log)

	if err := repository.Migrate(ctx, entc, pool, log); err != nil {
		log.Fatalf("running migrations: %v", err)
	}
	if err := repository.HealthCheck(ctx, pool, 3*time.Second, log); err != nil {
		log.Fatalf("database health: %v", err)
	}
	log.Infow("database ready")

	archive, err := storage.NewGCS(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatalf("opening archive bucket: %v", err)
	}

	products := repository.NewProductRepository(pool, log)
	factures := repository.NewFactureRepository(entc, log)
	jobs := repository.NewJobRepository(entc, log)
	users := repository.NewUserRepository(entc, log)

	providerHealth := health.NewProviderHealth(5, log)
	processor := pipeline.NewProcessor(
		extract.NewFacturX(log),
		gemini.NewRegistry(cfg.AI, log),
		products,
		factures,
		archive,
		providerHealth,
		cfg.Pipeline.MaxConcurrentAI,
		cfg.Pipeline.Timeout,
		log,
	)
	exports := export.NewService(products, factures, log)

	svc := server.NewService(cfg, pool, processor, products, factures, jobs, users,
		exports, providerHealth, log)

	srv := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           svc.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("http serving on %s", cfg.Server.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("http shutdown", "error", err)
	}
	log.Info("stopped")
}
