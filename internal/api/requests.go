// SecureNav - Crime Incident Data API and Geographic Visualization
// Copyright 2026 James Weddington (jamesweddington1215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jamesweddington1215/securenav

// Package api provides HTTP request validation structs with
// go-playground/validator tags, checked before any dataset work runs.
//
// Example usage:
//
//	req := IncidentsRequest{
//	    Limit:  getIntParam(r, "limit", h.config.API.DefaultLimit),
//	    Offset: getIntParam(r, "offset", 0),
//	}
//	if apiErr := validateRequest(&req); apiErr != nil {
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
package api

// IncidentsRequest represents the validated query parameters for the
// /incidents endpoint. Date bounds and the sort key are parsed
// separately via the dataset package's lenient parsers.
//
// Fields:
//   - Limit: Results per page (1 to the configured maximum, 1000 by default)
//   - Offset: Rows skipped before the page starts
//   - MinLat..MaxLng: Optional inclusive bounding box
type IncidentsRequest struct {
	Limit  int      `validate:"min=1,max=1000"`
	Offset int      `validate:"min=0"`
	MinLat *float64 `validate:"omitempty,latitude"`
	MaxLat *float64 `validate:"omitempty,latitude"`
	MinLng *float64 `validate:"omitempty,longitude"`
	MaxLng *float64 `validate:"omitempty,longitude"`
}

// StatsRequest represents the validated query parameters for /stats.
//
// Fields:
//   - By: Aggregation key (role name or date truncation)
type StatsRequest struct {
	By string `validate:"required,oneof=category day month year city state"`
}

// HeatmapRequest represents the validated query parameters for /heatmap.
//
// Fields:
//   - Bins: Grid resolution per axis (1 to the configured maximum, 500 by default)
type HeatmapRequest struct {
	Bins int `validate:"min=1,max=500"`
}
