/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the payroll engine server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load .env (if present) and environment config
  2. Parse command-line flags (flags win over environment)
  3. Initialize the snapshot storage backend
  4. Compose repository, service, handler, router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -addr     HTTP listen address (default: :8080)
  -data     Snapshot and artifact directory (default: .)
  -storage  Snapshot backend, "file" or "sqlite" (default: file)
  -db       SQLite database path when -storage=sqlite
            Use ":memory:" for an in-memory database

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close the database connection (sqlite backend)
  4. Exit

EXAMPLES:
  # File-backed snapshots in ./data
  ./server -data=./data

  # SQLite-backed snapshots
  ./server -storage=sqlite -db=./data/payroll.db

SEE ALSO:
  - api/server.go: Router configuration
  - config/config.go: Environment configuration
*/
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/api"
	"github.com/warp/payroll-engine/config"
	"github.com/warp/payroll-engine/generic"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/store/sqlite"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	addr := flag.String("addr", cfg.Addr, "HTTP listen address")
	dataDir := flag.String("data", cfg.DataDir, "snapshot and artifact directory")
	storageKind := flag.String("storage", cfg.Storage, `snapshot backend: "file" or "sqlite"`)
	dbPath := flag.String("db", cfg.DBPath, "SQLite database path")
	flag.Parse()

	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	// Snapshot storage backend
	var storage generic.Storage
	switch *storageKind {
	case "sqlite":
		store, err := sqlite.New(*dbPath)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer store.Close()
		storage = store.Snapshot("empleados")
	case "file":
		storage = generic.NewFileStorage(filepath.Join(*dataDir, "empleados.json"))
	default:
		log.Fatalf("Unknown storage backend %q", *storageKind)
	}

	repo := payroll.NewEmployeeRepository(storage)
	service := payroll.NewService(repo, *dataDir)
	service.Bonus = decimal.NewFromFloat(cfg.Bonus)
	service.Loan = decimal.NewFromFloat(cfg.Loan)

	handler := api.NewHandler(repo, service)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         *addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Payroll engine listening on %s (storage=%s)", *addr, *storageKind)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
