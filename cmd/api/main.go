package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davidmorales/storefront-backend/api/routes"
	"github.com/davidmorales/storefront-backend/internal/auth"
	"github.com/davidmorales/storefront-backend/internal/cart"
	"github.com/davidmorales/storefront-backend/internal/catalog"
	"github.com/davidmorales/storefront-backend/internal/checkout"
	"github.com/davidmorales/storefront-backend/internal/orders"
	"github.com/davidmorales/storefront-backend/pkg/config"
	"github.com/davidmorales/storefront-backend/pkg/instance"
	"github.com/davidmorales/storefront-backend/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "storefront-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Missing .env is fine in deployed environments.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logg := logger.New(logger.Options{
		ServiceName: "storefront-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})
	ctx := logg.WithField(context.Background(), "instance_id", instance.GetID())

	seed, err := loadSeed(cfg.Catalog)
	if err != nil {
		return fmt.Errorf("loading catalog seed: %w", err)
	}

	catalogSvc, err := catalog.NewService(seed)
	if err != nil {
		return fmt.Errorf("building catalog: %w", err)
	}

	carts := cart.NewStore(catalogSvc, cfg.Cart.TTL, cfg.Cart.SweepInterval)
	defer carts.Close()

	ledger := orders.NewLedger()

	checkoutSvc, err := checkout.NewService(catalogSvc, ledger)
	if err != nil {
		return fmt.Errorf("building checkout: %w", err)
	}

	authSvc, err := auth.NewService(auth.NewEnvVerifier(cfg.Admin), cfg.JWT)
	if err != nil {
		return fmt.Errorf("building auth: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	handler := routes.New(routes.Deps{
		Config:   cfg,
		Logger:   logg,
		Catalog:  catalogSvc,
		Carts:    carts,
		Ledger:   ledger,
		Checkout: checkoutSvc,
		Auth:     authSvc,
		Registry: registry,
	})

	server := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logg.Info(logg.WithField(ctx, "port", cfg.App.Port), "server.listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-shutdownCtx.Done():
	}

	logg.Info(ctx, "server.shutting_down")
	drainCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logg.Info(ctx, "server.stopped")
	return nil
}

func loadSeed(cfg config.CatalogConfig) ([]catalog.CreateProductInput, error) {
	if cfg.SeedPath == "" {
		return catalog.DefaultSeed(), nil
	}
	return catalog.LoadSeedFile(cfg.SeedPath)
}
