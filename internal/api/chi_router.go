// SecureNav - Crime Incident Data API and Geographic Visualization
// Copyright 2026 James Weddington (jamesweddington1215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jamesweddington1215/securenav

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/jamesweddington1215/securenav/internal/middleware"
)

// Router wires the handlers and middleware into the HTTP route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router over the given handler and middleware
// factory.
func NewRouter(handler *Handler, chiMw *ChiMiddleware) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: chiMw,
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler so our RequestID and Prometheus
// middleware work with r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes using the Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(chiMiddleware(middleware.RequestID)) // X-Request-ID header + logging context
	r.Use(chimiddleware.RealIP)                // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)             // Recover from panics
	r.Use(router.chiMiddleware.CORS())         // CORS must be global to handle OPTIONS preflight

	// ========================
	// Health Endpoint
	// ========================
	// Permissive rate limiting so monitoring tools can poll freely
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Get("/", router.handler.Health)
	})

	// ========================
	// Query Endpoints
	// ========================
	// Read-only endpoints over the in-memory dataset
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/columns", router.handler.Columns)
		r.Get("/incidents", router.handler.Incidents)
		r.Get("/stats", router.handler.Stats)
		r.Get("/geojson", router.handler.GeoJSON)
		r.Get("/heatmap", router.handler.Heatmap)
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
