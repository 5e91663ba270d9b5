// Wayplan server — serves the itinerary HTTP API, runs the planning
// dispatcher, and streams progress events over WebSocket.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/wayplan/wayplan/pkg/agent"
	"github.com/wayplan/wayplan/pkg/agent/orchestrator"
	"github.com/wayplan/wayplan/pkg/agent/prompt"
	"github.com/wayplan/wayplan/pkg/api"
	"github.com/wayplan/wayplan/pkg/changeset"
	"github.com/wayplan/wayplan/pkg/config"
	"github.com/wayplan/wayplan/pkg/database"
	"github.com/wayplan/wayplan/pkg/dispatch"
	"github.com/wayplan/wayplan/pkg/events"
	"github.com/wayplan/wayplan/pkg/llm"
	"github.com/wayplan/wayplan/pkg/store"
	"github.com/wayplan/wayplan/pkg/summarizer"
	"github.com/wayplan/wayplan/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting wayplan",
		"version", version.Full(),
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database and document store
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	docStore := store.NewEntStore(dbClient.Client)
	locks := store.NewLockMap()
	engine := changeset.NewEngine(docStore, locks)

	// 3. Event streaming
	bus := events.NewBus()
	publisher := events.NewPublisher(bus)
	connManager := events.NewConnectionManager(bus, 10*time.Second, cfg.Dispatch.HeartbeatInterval)
	slog.Info("Streaming infrastructure initialized")

	// 4. LLM gateway, prompt builder, and agents
	gateway := llm.NewGateway(cfg)
	prompts := prompt.NewBuilder(summarizer.New(), *cfg.Defaults.SummaryTokenBudget)

	registry := agent.NewRegistry()
	if err := agent.RegisterBuiltins(registry, cfg, gateway, prompts); err != nil {
		slog.Error("Failed to register agents", "error", err)
		os.Exit(1)
	}
	slog.Info("Agents registered", "count", registry.Len())

	// 5. Orchestrator and dispatcher
	orch := orchestrator.New(cfg, registry, docStore, engine, publisher)
	dispatcher := dispatch.New(cfg.Dispatch, orch)
	dispatcher.Start()
	slog.Info("Dispatcher started", "workers", cfg.Dispatch.WorkerCount)

	// 6. HTTP server
	httpServer := api.NewServer(api.Deps{
		Config:      cfg,
		Store:       docStore,
		Engine:      engine,
		Orch:        orch,
		Dispatcher:  dispatcher,
		Publisher:   publisher,
		ConnManager: connManager,
		DB:          dbClient,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(":" + httpPort); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Wayplan started successfully")

	// 7. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 8. Graceful shutdown: dispatcher drains active runs, then HTTP.
	dispatcher.Stop()
	slog.Info("Dispatcher stopped")

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	connManager.CloseAll()

	slog.Info("Shutdown complete")
}
