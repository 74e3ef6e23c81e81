package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/garnizeh/jobboard/api"
	migrations "github.com/garnizeh/jobboard/db"
	"github.com/garnizeh/jobboard/internal/config"
	"github.com/garnizeh/jobboard/internal/db"
	"github.com/garnizeh/jobboard/internal/generator"
	"github.com/garnizeh/jobboard/internal/repository/memory"
	"github.com/garnizeh/jobboard/internal/repository/sqlite"
	"github.com/garnizeh/jobboard/pkg/ollama"
	"github.com/garnizeh/jobboard/pkg/repository"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	log.Printf("Starting jobboard server version %s (built at %s)", version, buildTime)

	ctx := context.Background()

	// Select the store backend once at startup; handlers stay backend-agnostic.
	var store repository.Store
	var conn *db.DB
	switch cfg.StoreBackend {
	case config.BackendSQLite:
		conn, err = db.New(ctx, cfg.DatabasePath)
		if err != nil {
			log.Fatalf("Failed to open DB: %v", err)
		}
		if err := db.Migrate(ctx, conn, migrations.Migrations); err != nil {
			log.Fatalf("Failed to migrate DB: %v", err)
		}
		store = sqlite.New(conn, nil)
	default:
		store = memory.New()
	}

	client, err := ollama.NewDefaultClient(cfg.Ollama)
	if err != nil {
		log.Fatalf("Failed to create ollama client: %v", err)
	}
	engine := generator.NewEngine(client, cfg.Generator, nil)

	handler := api.SetupRoutes(cfg, version, buildTime, store, engine)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := client.Close(); err != nil {
		log.Printf("Error closing ollama client: %v", err)
	}

	if conn != nil {
		if err := conn.Close(); err != nil {
			log.Printf("Error closing DB: %v", err)
		}
	}

	log.Println("Server exited")
}
