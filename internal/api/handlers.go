// SecureNav - Crime Incident Data API and Geographic Visualization
// Copyright 2026 James Weddington (jamesweddington1215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jamesweddington1215/securenav

package api

import (
	"time"

	"github.com/jamesweddington1215/securenav/internal/cache"
	"github.com/jamesweddington1215/securenav/internal/config"
	"github.com/jamesweddington1215/securenav/internal/dataset"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: Shared helper functions
//   - handlers_health.go: Health endpoint
//   - handlers_core.go: Columns and incidents endpoints
//   - handlers_stats.go: Aggregation endpoint
//   - handlers_geo.go: GeoJSON and heatmap endpoints
type Handler struct {
	ds        *dataset.Dataset
	config    *config.Config
	cache     *cache.Cache
	startTime time.Time
}

// NewHandler creates an API handler over the loaded dataset. The dataset
// is read-only for the process lifetime; handlers share it without
// locking. Stats and heatmap responses are cached with the configured
// TTL since they are stable until restart but cost a full table scan.
func NewHandler(ds *dataset.Dataset, cfg *config.Config) *Handler {
	return &Handler{
		ds:        ds,
		config:    cfg,
		cache:     cache.New(cfg.Cache.TTL),
		startTime: time.Now(),
	}
}
