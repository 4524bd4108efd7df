package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/roomdesk/meeting-room-backend/internal/app"
	"github.com/roomdesk/meeting-room-backend/internal/config"
	"github.com/roomdesk/meeting-room-backend/internal/mirror"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Pick the audit mirror: the spreadsheet when configured, in-memory otherwise.
	var m mirror.Mirror
	if cfg.SheetsCredentialsJSON != "" && cfg.SheetID != "" {
		sheetsMirror, err := mirror.NewSheetsMirror(ctx, []byte(cfg.SheetsCredentialsJSON), cfg.SheetID, cfg.SheetWorksheet)
		if err != nil {
			log.Fatalf("failed to init spreadsheet mirror: %v", err)
		}
		m = sheetsMirror
		log.Printf("mirroring mutations to spreadsheet %s (worksheet %s)", cfg.SheetID, cfg.SheetWorksheet)
	} else {
		m = mirror.NewMemoryMirror()
		log.Println("no spreadsheet configured, keeping audit records in memory")
	}

	// Init app container
	container := app.NewContainer(app.Config{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  cfg.ProdOrigins,
		Username:     cfg.Username,
		PasswordHash: cfg.PasswordHash,
		Mirror:       m,
	})

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	// Run server in separate goroutine
	go func() {
		log.Printf("server running on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Wait for Ctrl+C
	<-ctx.Done()
	log.Println("shutdown signal received")

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}

	log.Println("server exited gracefully")
}
