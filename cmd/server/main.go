/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the LifeOS finance server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load environment (.env optional), parse command-line flags
  2. Initialize SQLite store and run migrations
  3. Seed system currencies and categories (idempotent)
  4. Create API handler with dependencies
  5. Start server with graceful shutdown

CONFIGURATION:
  Flags override environment:
  -port    HTTP server port        (env PORT, default 8080)
  -db      SQLite database path    (env DB_PATH, default lifeos.db)
           Use ":memory:" for an in-memory database

  FX_BASE_URL may point the exchange rate provider at a mirror.

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close database connection
  4. Exit

SEE ALSO:
  - api/server.go: Router configuration
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Muhammadqodir/lifeos/api"
	"github.com/Muhammadqodir/lifeos/config"
	"github.com/Muhammadqodir/lifeos/fx"
	"github.com/Muhammadqodir/lifeos/store/sqlite"
)

func main() {
	cfg := config.Load()

	// Flags override environment
	port := flag.String("port", cfg.Port, "HTTP server port")
	dbPath := flag.String("db", cfg.DBPath, "SQLite database path")
	flag.Parse()

	// Initialize store
	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	// Seed shared currency/category catalog
	if err := store.Seed(context.Background()); err != nil {
		log.Fatalf("Failed to seed system data: %v", err)
	}

	// Exchange rate provider
	var provider fx.Provider
	if cfg.FXURL != "" {
		provider = fx.NewProviderWithURL(cfg.FXURL, nil)
	} else {
		provider = fx.NewJSDelivrProvider()
	}

	// Initialize handler and router
	handler := api.NewHandler(store, provider)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on http://localhost:%s", *port)
		log.Printf("API available at http://localhost:%s/api/v1", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
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
