package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"vortex-api/internal/config"
	"vortex-api/internal/http"
	"vortex-api/internal/resonance"
	"vortex-api/internal/service"
	"vortex-api/internal/storage"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// This API stores free-text notes in an append-only in-memory log and
// classifies text input into a resonance state.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: Vortex API
//   description: |
//     Append-only note memory plus a keyword-driven resonance classifier.
//     All state is held in memory and lost on restart.
//   version: 1.0.0
// schemes:
//   - http
// consumes:
//   - application/json
// produces:
//   - application/json

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat, "debug", cfg.Debug)

	var notes storage.NoteStore
	switch cfg.NoteStore {
	case config.NoteStoreSQLite:
		db, err := storage.Open()
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer func() {
			_ = db.Close()
		}()

		if err := storage.Migrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		notes = storage.NewNoteRepo(db)
	default:
		notes = storage.NewMemoryStore()
	}
	slog.Info("Note store initialized", "backend", cfg.NoteStore)

	engine := resonance.NewEngine()
	vortexService := service.NewVortexService(notes, engine)

	router := http.NewRouter(&http.Deps{
		VortexService: vortexService,
	})

	srv := http.NewServer(router, http.ServerOptions{Addr: ":" + cfg.APIPort})
	errCh, err := srv.Start()
	if err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
	slog.Info("API server started", "addr", srv.Addr())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err, ok := <-errCh:
		if ok && err != nil {
			slog.Error("API server stopped unexpectedly", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		return
	}
	slog.Info("API server stopped")
}
