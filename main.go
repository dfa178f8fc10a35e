package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/fairdraw/cliparse"
	"github.com/danielhkuo/fairdraw/db"
	"github.com/danielhkuo/fairdraw/engine"
	"github.com/danielhkuo/fairdraw/middleware"
	"github.com/danielhkuo/fairdraw/router"
	"github.com/danielhkuo/fairdraw/seed"
)

func main() {
	var err error

	// Load .env if present; real env vars take precedence
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	tiers, err := engine.ParseTiers(cfg.Tiers)
	if err != nil {
		slog.Error("Error parsing tier configuration", "error", err)
		os.Exit(1)
	}

	// Connect to the snapshot database
	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	// Verify connection
	if err := conn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(conn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Build the draw engine from the stored snapshot
	eng, err := engine.New(db.NewStore(conn, cfg.DatabaseType), engine.WithTiers(tiers))
	if err != nil {
		slog.Error("engine initialization failed", "error", err)
		os.Exit(1)
	}

	// Seed source: external beacon when configured, local otherwise
	var seeds seed.Source = seed.LocalSource{}
	if cfg.BeaconURL != "" {
		seeds = seed.NewBeaconSource(cfg.BeaconURL)
	}

	// Create router
	mux := router.NewRouter(eng, cfg, seeds)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
