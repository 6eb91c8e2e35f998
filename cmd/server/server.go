package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"github.com/ocarena/oc-api/internal/config"
	apiv1 "github.com/ocarena/oc-api/internal/handlers/api/v1"
	battleorc "github.com/ocarena/oc-api/internal/orchestrators/battle"
	charorc "github.com/ocarena/oc-api/internal/orchestrators/character"
	"github.com/ocarena/oc-api/internal/pkg/clock"
	"github.com/ocarena/oc-api/internal/pkg/idgen"
	"github.com/ocarena/oc-api/internal/pkg/metrics"
	redisclient "github.com/ocarena/oc-api/internal/redis"
	battlerepo "github.com/ocarena/oc-api/internal/repositories/battle"
	requestrepo "github.com/ocarena/oc-api/internal/repositories/battlerequest"
	commentrepo "github.com/ocarena/oc-api/internal/repositories/comment"
	hallrepo "github.com/ocarena/oc-api/internal/repositories/hall"
	playerrepo "github.com/ocarena/oc-api/internal/repositories/player"
)

var (
	httpPort  int
	redisAddr string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the API server",
	Long:  `Start the OC Arena JSON API server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 0, "HTTP port (overrides HTTP_PORT)")
	serverCmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address (overrides REDIS_ADDR)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if httpPort != 0 {
		cfg.HTTPPort = httpPort
	}
	if redisAddr != "" {
		cfg.RedisAddr = redisAddr
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}

	e, err := buildServer(client)
	if err != nil {
		return err
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := e.Start(fmt.Sprintf(":%d", cfg.HTTPPort)); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(
			context.Background(), time.Duration(cfg.ShutdownTimeout)*time.Second)
		defer shutdownCancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			return e.Close()
		}
		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

// buildServer wires repositories, orchestrators, and handlers onto an echo
// instance.
func buildServer(client redisclient.Client) (*echo.Echo, error) {
	clk := clock.New()

	players, err := playerrepo.NewRedis(&playerrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create player repository: %w", err)
	}
	requests, err := requestrepo.NewRedis(&requestrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create battle request repository: %w", err)
	}
	battles, err := battlerepo.NewRedis(&battlerepo.RedisConfig{Client: client, Clock: clk})
	if err != nil {
		return nil, fmt.Errorf("failed to create battle repository: %w", err)
	}
	halls, err := hallrepo.NewRedis(&hallrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create hall repository: %w", err)
	}
	comments, err := commentrepo.NewRedis(&commentrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create comment repository: %w", err)
	}

	characterService, err := charorc.New(&charorc.Config{
		PlayerRepo:  players,
		CommentRepo: comments,
		Clock:       clk,
		IDGenerator: idgen.NewUUID("comment"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create character orchestrator: %w", err)
	}

	battleService, err := battleorc.New(&battleorc.Config{
		PlayerRepo:  players,
		RequestRepo: requests,
		BattleRepo:  battles,
		HallRepo:    halls,
		Clock:       clk,
		RandSource:  rand.NewSource(time.Now().UnixNano()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create battle orchestrator: %w", err)
	}

	handler, err := apiv1.New(&apiv1.Config{
		CharacterService: characterService,
		BattleService:    battleService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create API handler: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(metrics.Middleware())

	handler.Register(e)
	e.GET("/healthz", apiv1.Healthz)
	e.GET("/metrics", metrics.EchoHandler())

	return e, nil
}
