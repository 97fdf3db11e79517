package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fastparcel/internal/config"
	"fastparcel/internal/dashboard"
	"fastparcel/internal/logger"
	"fastparcel/internal/metrics"
	"fastparcel/internal/order"
	"fastparcel/internal/server"
	"fastparcel/internal/session"
	"fastparcel/internal/wallet"
)

// @title Fast Parcel API
// @version 1.0
// @description Demo courier booking service: booking workflow, order ledger, wallet and exports.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()
	defer logger.Sync()
	logger.Info("Starting Fast Parcel application")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	sessions := session.NewRedisStore(cfg.RedisAddr)
	defer sessions.Close()

	// The session flag is the only persisted datum; read it once so
	// the boot log shows whether a session survived the restart.
	if active, err := sessions.Active(context.Background()); err != nil {
		logger.Errorf("Failed to read persisted session flag: %v", err)
	} else {
		logger.Info("Session flag loaded", "authenticated", active)
	}

	// Business state always starts from the seed dataset.
	orders := order.NewMemoryRepository(order.Seed())
	walletRepo := wallet.NewMemoryRepository(wallet.SeedBalanceCents, wallet.SeedTransactions())
	metrics.SetWalletBalance(wallet.SeedBalanceCents)
	logger.Info("Seed data loaded", "orders", len(order.Seed()), "balance_cents", wallet.SeedBalanceCents)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	analytics := dashboard.NewAnalytics(1200 * time.Millisecond)
	go analytics.Run(ctx)

	srv := server.New(cfg, sessions, orders, walletRepo, analytics)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
