package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"novapay/config"
	"novapay/internal/adapter/genai"
	httpHandler "novapay/internal/adapter/http/handler"
	fileStorage "novapay/internal/adapter/storage/file"
	redisStorage "novapay/internal/adapter/storage/redisstore"
	"novapay/internal/core/ports"
	"novapay/internal/service"
	"novapay/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("store", cfg.Store.Backend).
		Msg("Starting NovaPay")

	ctx := context.Background()

	// Initialize snapshot store backend
	var (
		snapshots ports.SnapshotStore
		health    ports.HealthChecker
	)
	switch cfg.Store.Backend {
	case "redis":
		rdb, err := redisStorage.NewClient(ctx, cfg.Store.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		store := redisStorage.NewStore(rdb)
		snapshots, health = store, store
		log.Info().Msg("Redis snapshot store ready")
	default:
		store, err := fileStorage.NewStore(cfg.Store.Dir)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open file snapshot store")
		}
		snapshots, health = store, store
		log.Info().Str("dir", cfg.Store.Dir).Msg("File snapshot store ready")
	}

	// Initialize business services
	walletSvc, err := service.NewWalletService(ctx, snapshots, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load wallet state")
	}

	transferSvc := service.NewTransferService(walletSvc, cfg.Transfer, log)

	httpClient := &http.Client{Timeout: 10 * time.Second}
	wallet, _ := walletSvc.Snapshot()
	linkSvc := service.NewPaymentLinkService(cfg.QR.BaseURL, wallet.Currency, httpClient, log)

	geminiClient := genai.NewClient(cfg.Gemini, httpClient, log)
	assistantSvc := service.NewAssistantService(geminiClient, walletSvc, transferSvc, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		TransferSvc:    transferSvc,
		LinkSvc:        linkSvc,
		AssistantSvc:   assistantSvc,
		HealthCheckers: []ports.HealthChecker{health},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
