// SecureNav - Crime Incident Data API and Geographic Visualization
// Copyright 2026 James Weddington (jamesweddington1215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jamesweddington1215/securenav

package api

import (
	"net/http"
	"time"

	"github.com/jamesweddington1215/securenav/internal/models"
)

// Health handles health check requests
//
// @Summary Get system health status
// @Description Returns service health including dataset load status, row count, mapped role count, and uptime
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Health status retrieved successfully"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	loaded := h.ds != nil

	status := "healthy"
	if !loaded {
		status = "degraded"
	}

	health := models.HealthStatus{
		Status:        status,
		Version:       "1.0.0",
		DatasetLoaded: loaded,
		Uptime:        time.Since(h.startTime).Seconds(),
	}
	if loaded {
		health.RowCount = h.ds.RowCount()
		health.MappedRoles = h.ds.Schema().MappedCount()
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
