// SecureNav - Crime Incident Data API and Geographic Visualization
// Copyright 2026 James Weddington (jamesweddington1215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jamesweddington1215/securenav

package models

import (
	"time"
)

// Incident is the projection of a single dataset row onto the mapped
// semantic roles. Unmapped roles render as null; the raw columns stay
// in the dataset and are visible via /columns.
type Incident struct {
	ID          string     `json:"id"`
	Date        *time.Time `json:"date"`
	Category    *string    `json:"category"`
	Description *string    `json:"description"`
	Lat         *float64   `json:"lat"`
	Lng         *float64   `json:"lng"`
	City        *string    `json:"city"`
	State       *string    `json:"state"`
}

// IncidentsPayload is the data payload for GET /incidents.
// Total is the count of rows matching all predicates before pagination.
type IncidentsPayload struct {
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
	Items  []Incident `json:"items"`
}

// ColumnsPayload is the data payload for GET /columns. Mapped holds the
// resolved schema map; roles without a matching column are null.
type ColumnsPayload struct {
	Columns  []string           `json:"columns"`
	Mapped   map[string]*string `json:"mapped"`
	RowCount int                `json:"row_count"`
}

// StatsBucket is one aggregation group: a bucket label and its row count.
type StatsBucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// StatsPayload is the data payload for GET /stats.
type StatsPayload struct {
	By   string        `json:"by"`
	Data []StatsBucket `json:"data"`
}

// HealthStatus is the data payload for GET /health.
type HealthStatus struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	DatasetLoaded bool    `json:"dataset_loaded"`
	RowCount      int     `json:"row_count"`
	MappedRoles   int     `json:"mapped_roles"`
	Uptime        float64 `json:"uptime"`
}

// HeatmapBounds is the overall bounding box of the rows that fell into
// the heatmap grid.
type HeatmapBounds struct {
	LatMin float64 `json:"lat_min"`
	LatMax float64 `json:"lat_max"`
	LngMin float64 `json:"lng_min"`
	LngMax float64 `json:"lng_max"`
}

// HeatmapCell is one non-empty cell of the spatial grid. Lat/Lng are the
// cell center; the min/max fields are the cell's own bounding box.
type HeatmapCell struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	LatMin float64 `json:"lat_min"`
	LatMax float64 `json:"lat_max"`
	LngMin float64 `json:"lng_min"`
	LngMax float64 `json:"lng_max"`
	Count  int     `json:"count"`
}

// HeatmapPayload is the data payload for GET /heatmap. Bounds is nil when
// the filtered set has no rows with valid coordinates.
type HeatmapPayload struct {
	Bins    int            `json:"bins"`
	Bounds  *HeatmapBounds `json:"bounds,omitempty"`
	LatStep float64        `json:"lat_step,omitempty"`
	LngStep float64        `json:"lng_step,omitempty"`
	Grid    []HeatmapCell  `json:"grid"`
}
