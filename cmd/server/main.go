// SecureNav - Crime Incident Data API and Geographic Visualization
// Copyright 2026 James Weddington (jamesweddington1215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jamesweddington1215/securenav

// Package main is the entry point for the SecureNav server application.
//
// SecureNav serves a read-only HTTP query API over a single crime
// incident CSV. The file is loaded into memory once at startup, its
// columns are auto-mapped to semantic roles (latitude, longitude, date,
// category, ...) by header name, and every endpoint answers from that
// immutable in-memory table. There is no database and no write path.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. Logging: Configure the global zerolog logger
//  3. Dataset: Load and type the incident CSV, resolve the schema map
//  4. HTTP Server: Chi router with CORS, rate limiting, Prometheus metrics,
//     and Swagger documentation
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables (CRIME_CSV, HTTP_PORT, LOG_LEVEL, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// A missing or malformed CSV is fatal: the server refuses to start
// rather than serve an empty or partial dataset.
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//
// # Example Usage
//
//	export CRIME_CSV=/data/incidents.csv
//	export HTTP_PORT=8080
//	./securenav
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jamesweddington1215/securenav/docs" // Import generated swagger docs
	"github.com/jamesweddington1215/securenav/internal/api"
	"github.com/jamesweddington1215/securenav/internal/config"
	"github.com/jamesweddington1215/securenav/internal/dataset"
	"github.com/jamesweddington1215/securenav/internal/logging"
	"github.com/jamesweddington1215/securenav/internal/metrics"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("dataset_path", cfg.Dataset.Path).
		Int("port", cfg.Server.Port).
		Msg("Starting SecureNav")

	// Load the incident CSV. A broken dataset is fatal: better to crash
	// at startup than answer queries from nothing.
	loadStart := time.Now()
	ds, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Dataset.Path).Msg("Failed to load dataset")
	}
	metrics.RecordDatasetLoad(ds.RowCount(), ds.Schema().MappedCount(), time.Since(loadStart))

	handler := api.NewHandler(ds, cfg)
	chiMw := api.NewChiMiddleware(&api.ChiMiddlewareConfig{
		CORSAllowedOrigins: cfg.Security.CORSOrigins,
		CORSAllowedMethods: []string{"GET", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		CORSMaxAge:         86400,
		RateLimitRequests:  cfg.Security.RateLimitReqs,
		RateLimitWindow:    cfg.Security.RateLimitWindow,
		RateLimitDisabled:  cfg.Security.RateLimitDisabled,
	})
	router := api.NewRouter(handler, chiMw)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server error")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}

	logging.Info().Msg("Application stopped gracefully")
}
