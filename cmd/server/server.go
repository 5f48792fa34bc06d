package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/fishing-api/internal/catalog"
	fishingv1 "github.com/KirkDiggler/fishing-api/internal/handlers/fishing/v1"
	"github.com/KirkDiggler/fishing-api/internal/orchestrators/fishing"
	"github.com/KirkDiggler/fishing-api/internal/pkg/clock"
	"github.com/KirkDiggler/fishing-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/fishing-api/internal/redis"
	playerrepo "github.com/KirkDiggler/fishing-api/internal/repositories/player"
)

var (
	httpPort      int
	redisAddr     string
	catchCooldown time.Duration
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the fishing API HTTP server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 8080, "HTTP server port")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address for player storage (empty uses in-memory storage)")
	serverCmd.Flags().DurationVar(&catchCooldown, "catch-cooldown", fishing.DefaultCatchCooldown, "minimum interval between catches")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	store, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	clk := clock.New()

	var repo playerrepo.Repository
	if redisAddr != "" {
		client, err := redisclient.NewClient(redisAddr, nil)
		if err != nil {
			return fmt.Errorf("failed to create redis client: %w", err)
		}
		defer func() {
			if err := client.Close(); err != nil {
				slog.Warn("failed to close redis client", "error", err)
			}
		}()

		repo, err = playerrepo.NewRedis(&playerrepo.RedisConfig{
			Client: client,
			Clock:  clk,
		})
		if err != nil {
			return fmt.Errorf("failed to create redis repository: %w", err)
		}
		slog.Info("using redis player storage", "addr", redisAddr)
	} else {
		repo = playerrepo.NewInMemory()
		slog.Info("using in-memory player storage")
	}

	service, err := fishing.NewOrchestrator(&fishing.Config{
		PlayerRepo:    repo,
		Catalog:       store,
		Clock:         clk,
		IDGenerator:   idgen.NewUUID("quest"),
		CatchCooldown: catchCooldown,
	})
	if err != nil {
		return fmt.Errorf("failed to create fishing orchestrator: %w", err)
	}

	handler, err := fishingv1.NewHandler(&fishingv1.HandlerConfig{Service: service})
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", httpPort),
		Handler:           fishingv1.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", httpPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed, forcing close", "error", err)
			return srv.Close()
		}

		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}
