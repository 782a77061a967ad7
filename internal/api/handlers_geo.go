// SecureNav - Crime Incident Data API and Geographic Visualization
// Copyright 2026 James Weddington (jamesweddington1215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jamesweddington1215/securenav

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/jamesweddington1215/securenav/internal/logging"
	"github.com/jamesweddington1215/securenav/internal/metrics"
	"github.com/jamesweddington1215/securenav/internal/models"
)

// GeoJSON type definitions. Coordinates follow the GeoJSON convention:
// [longitude, latitude].
type GeoJSONGeometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type GeoJSONProperties struct {
	ID          string     `json:"id"`
	Date        *time.Time `json:"date"`
	Category    *string    `json:"category"`
	Description *string    `json:"description"`
	City        *string    `json:"city"`
	State       *string    `json:"state"`
}

type GeoJSONFeature struct {
	Type       string            `json:"type"`
	Geometry   GeoJSONGeometry   `json:"geometry"`
	Properties GeoJSONProperties `json:"properties"`
}

type GeoJSONFeatureCollection struct {
	Type     string           `json:"type"`
	Features []GeoJSONFeature `json:"features"`
}

// buildGeoJSONCollection creates a FeatureCollection from incident
// projections that already carry valid coordinates.
func buildGeoJSONCollection(points []models.Incident) GeoJSONFeatureCollection {
	features := make([]GeoJSONFeature, 0, len(points))
	for i := range points {
		p := &points[i]
		features = append(features, GeoJSONFeature{
			Type: "Feature",
			Geometry: GeoJSONGeometry{
				Type:        "Point",
				Coordinates: []float64{*p.Lng, *p.Lat},
			},
			Properties: GeoJSONProperties{
				ID:          p.ID,
				Date:        p.Date,
				Category:    p.Category,
				Description: p.Description,
				City:        p.City,
				State:       p.State,
			},
		})
	}

	return GeoJSONFeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}

// GeoJSON handles GeoJSON export requests
//
// @Summary Export incidents as GeoJSON points
// @Description Returns a FeatureCollection with one Point feature per filtered incident with valid coordinates. Requires the latitude and longitude roles to be mapped.
// @Tags Geo
// @Accept json
// @Produce application/geo+json
// @Param q query string false "Case-insensitive substring match on description/category"
// @Param category query string false "Exact category match (case-insensitive)"
// @Param city query string false "Exact city match (case-insensitive)"
// @Param state query string false "Exact state match (case-insensitive)"
// @Param start_date query string false "Inclusive lower date bound"
// @Param end_date query string false "Inclusive upper date bound"
// @Success 200 {object} GeoJSONFeatureCollection "FeatureCollection of incident points"
// @Failure 400 {object} models.APIResponse "Latitude/longitude roles not mapped"
// @Router /geojson [get]
func (h *Handler) GeoJSON(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireDataset(w) {
		return
	}

	filter, msg := buildFilter(r)
	if msg != "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", msg, nil)
		return
	}

	start := time.Now()
	points, err := h.ds.GeoPoints(filter)
	if err != nil {
		respondDatasetError(w, err)
		return
	}
	metrics.RecordQuery("geojson", time.Since(start))

	w.Header().Set("Content-Type", "application/geo+json")
	if err := json.NewEncoder(w).Encode(buildGeoJSONCollection(points)); err != nil {
		logging.Error().Err(err).Msg("Failed to encode GeoJSON")
	}
}

// Heatmap handles grid heatmap requests
//
// @Summary Bin incidents into a spatial grid
// @Description Divides the bounding box of the filtered incidents into bins x bins cells and counts incidents per cell. Requires the latitude and longitude roles to be mapped.
// @Tags Geo
// @Accept json
// @Produce json
// @Param bins query int false "Grid resolution per axis (max 500)" default(50)
// @Param q query string false "Case-insensitive substring match on description/category"
// @Param category query string false "Exact category match (case-insensitive)"
// @Param city query string false "Exact city match (case-insensitive)"
// @Param state query string false "Exact state match (case-insensitive)"
// @Param start_date query string false "Inclusive lower date bound"
// @Param end_date query string false "Inclusive upper date bound"
// @Success 200 {object} models.APIResponse{data=models.HeatmapPayload} "Heatmap retrieved successfully"
// @Failure 400 {object} models.APIResponse "Unmapped geo roles or invalid bins"
// @Router /heatmap [get]
func (h *Handler) Heatmap(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireDataset(w) {
		return
	}

	req := HeatmapRequest{Bins: getIntParam(r, "bins", h.config.API.DefaultBins)}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	if req.Bins > h.config.API.MaxBins {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "bins exceeds maximum", nil)
		return
	}

	filter, msg := buildFilter(r)
	if msg != "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", msg, nil)
		return
	}

	cacheKey := "heatmap:" + r.URL.RawQuery
	if cached, ok := h.cache.Get(cacheKey); ok {
		metrics.CacheHits.WithLabelValues("heatmap").Inc()
		respondJSON(w, http.StatusOK, &models.APIResponse{
			Status: "success",
			Data:   cached,
			Metadata: models.Metadata{
				Timestamp: time.Now(),
				Cached:    true,
			},
		})
		return
	}
	metrics.CacheMisses.WithLabelValues("heatmap").Inc()

	start := time.Now()
	payload, err := h.ds.Heatmap(req.Bins, filter)
	if err != nil {
		respondDatasetError(w, err)
		return
	}
	metrics.RecordQuery("heatmap", time.Since(start))

	h.cache.Set(cacheKey, payload)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   payload,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}
