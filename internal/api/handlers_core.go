// SecureNav - Crime Incident Data API and Geographic Visualization
// Copyright 2026 James Weddington (jamesweddington1215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jamesweddington1215/securenav

package api

import (
	"net/http"
	"time"

	"github.com/jamesweddington1215/securenav/internal/dataset"
	"github.com/jamesweddington1215/securenav/internal/metrics"
	"github.com/jamesweddington1215/securenav/internal/models"
)

// requireDataset responds with 503 when the dataset failed to load.
// Normally unreachable since a load failure is fatal at startup; kept
// so handler tests can exercise the degraded path.
func (h *Handler) requireDataset(w http.ResponseWriter) bool {
	if h.ds == nil {
		respondError(w, http.StatusServiceUnavailable, "INTERNAL_ERROR", "Dataset not loaded", nil)
		return false
	}
	return true
}

// Columns handles column introspection requests
//
// @Summary List dataset columns and the resolved schema map
// @Description Returns the original column names in file order, the role-to-column schema map (null for unmapped roles), and the row count
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.ColumnsPayload} "Columns retrieved successfully"
// @Router /columns [get]
func (h *Handler) Columns(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireDataset(w) {
		return
	}

	schema := h.ds.Schema()
	mapped := make(map[string]*string, len(dataset.Roles))
	for _, role := range dataset.Roles {
		if col, ok := schema.Column(role); ok {
			c := col
			mapped[string(role)] = &c
		} else {
			mapped[string(role)] = nil
		}
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.ColumnsPayload{
			Columns:  h.ds.Columns(),
			Mapped:   mapped,
			RowCount: h.ds.RowCount(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// buildFilter parses the shared filter parameters from the query string.
// Returns a non-empty message naming the offending parameter when a
// bound fails to parse.
func buildFilter(r *http.Request) (dataset.Filter, string) {
	q := r.URL.Query()

	f := dataset.Filter{
		Query:    q.Get("q"),
		Category: q.Get("category"),
		City:     q.Get("city"),
		State:    q.Get("state"),
	}

	var msg string
	if f.StartDate, msg = getDateParam(r, "start_date"); msg != "" {
		return f, msg
	}
	if f.EndDate, msg = getDateParam(r, "end_date"); msg != "" {
		return f, msg
	}
	if f.MinLat, msg = getFloatParam(r, "min_lat"); msg != "" {
		return f, msg
	}
	if f.MaxLat, msg = getFloatParam(r, "max_lat"); msg != "" {
		return f, msg
	}
	if f.MinLng, msg = getFloatParam(r, "min_lng"); msg != "" {
		return f, msg
	}
	if f.MaxLng, msg = getFloatParam(r, "max_lng"); msg != "" {
		return f, msg
	}

	return f, ""
}

// Incidents handles filtered, paginated listing requests
//
// @Summary List incidents
// @Description Returns incidents matching the given predicates, sorted and paginated. Total reports the match count before pagination.
// @Tags Core
// @Accept json
// @Produce json
// @Param q query string false "Case-insensitive substring match on description/category"
// @Param category query string false "Exact category match (case-insensitive)"
// @Param city query string false "Exact city match (case-insensitive)"
// @Param state query string false "Exact state match (case-insensitive)"
// @Param start_date query string false "Inclusive lower date bound"
// @Param end_date query string false "Inclusive upper date bound"
// @Param min_lat query number false "Bounding box: minimum latitude"
// @Param max_lat query number false "Bounding box: maximum latitude"
// @Param min_lng query number false "Bounding box: minimum longitude"
// @Param max_lng query number false "Bounding box: maximum longitude"
// @Param sort query string false "Sort field (role name), '-' prefix for descending" default(-date)
// @Param limit query int false "Page size (max 1000)" default(100)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {object} models.APIResponse{data=models.IncidentsPayload} "Incidents retrieved successfully"
// @Failure 400 {object} models.APIResponse "Invalid parameter"
// @Router /incidents [get]
func (h *Handler) Incidents(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireDataset(w) {
		return
	}

	filter, msg := buildFilter(r)
	if msg != "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", msg, nil)
		return
	}

	req := IncidentsRequest{
		Limit:  getIntParam(r, "limit", h.config.API.DefaultLimit),
		Offset: getIntParam(r, "offset", 0),
		MinLat: filter.MinLat,
		MaxLat: filter.MaxLat,
		MinLng: filter.MinLng,
		MaxLng: filter.MaxLng,
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	if req.Limit > h.config.API.MaxLimit {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "limit exceeds maximum", nil)
		return
	}

	sortParam := r.URL.Query().Get("sort")
	if sortParam == "" {
		sortParam = "-date" // newest first
	}
	sortSpec, err := dataset.ParseSort(sortParam)
	if err != nil {
		respondDatasetError(w, err)
		return
	}

	start := time.Now()
	result := h.ds.Query(filter, sortSpec, dataset.Page{Limit: req.Limit, Offset: req.Offset})
	metrics.RecordQuery("incidents", time.Since(start))

	items := make([]models.Incident, 0, len(result.Rows))
	for _, row := range result.Rows {
		items = append(items, h.ds.Project(row))
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.IncidentsPayload{
			Total:  result.Total,
			Limit:  req.Limit,
			Offset: req.Offset,
			Items:  items,
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}
