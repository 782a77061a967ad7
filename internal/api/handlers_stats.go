// SecureNav - Crime Incident Data API and Geographic Visualization
// Copyright 2026 James Weddington (jamesweddington1215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jamesweddington1215/securenav

package api

import (
	"net/http"
	"time"

	"github.com/jamesweddington1215/securenav/internal/metrics"
	"github.com/jamesweddington1215/securenav/internal/models"
)

// Stats handles aggregation requests
//
// @Summary Aggregate incidents into buckets
// @Description Groups the filtered incidents by a semantic role (category, city, state) or a date truncation (day, month, year) and counts occurrences. Rows with unparseable dates land in an explicit "unknown" bucket for temporal groupings.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param by query string false "Aggregation key" Enums(category, day, month, year, city, state) default(category)
// @Param q query string false "Case-insensitive substring match on description/category"
// @Param category query string false "Exact category match (case-insensitive)"
// @Param city query string false "Exact city match (case-insensitive)"
// @Param state query string false "Exact state match (case-insensitive)"
// @Param start_date query string false "Inclusive lower date bound"
// @Param end_date query string false "Inclusive upper date bound"
// @Success 200 {object} models.APIResponse{data=models.StatsPayload} "Aggregation retrieved successfully"
// @Failure 400 {object} models.APIResponse "Unmapped role or invalid parameter"
// @Router /stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireDataset(w) {
		return
	}

	by := r.URL.Query().Get("by")
	if by == "" {
		by = "category"
	}
	req := StatsRequest{By: by}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	filter, msg := buildFilter(r)
	if msg != "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", msg, nil)
		return
	}

	cacheKey := "stats:" + r.URL.RawQuery
	if cached, ok := h.cache.Get(cacheKey); ok {
		metrics.CacheHits.WithLabelValues("stats").Inc()
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
	metrics.CacheMisses.WithLabelValues("stats").Inc()

	start := time.Now()
	buckets, err := h.ds.Aggregate(by, filter)
	if err != nil {
		respondDatasetError(w, err)
		return
	}
	metrics.RecordQuery("stats", time.Since(start))

	payload := models.StatsPayload{By: by, Data: buckets}
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
