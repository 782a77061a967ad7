// SecureNav - Crime Incident Data API and Geographic Visualization
// Copyright 2026 James Weddington (jamesweddington1215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jamesweddington1215/securenav

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/jamesweddington1215/securenav/internal/config"
	"github.com/jamesweddington1215/securenav/internal/dataset"
	"github.com/jamesweddington1215/securenav/internal/models"
)

// testColumns and testRecords form the handler test fixture: five
// incidents over two cities, one row missing coordinates and one with an
// unparseable date.
var testColumns = []string{"id", "date", "offense", "description", "lat", "lon", "city", "state"}

var testRecords = [][]string{
	{"C-1", "2024-01-05", "BURGLARY", "Forced entry at residence", "36.15", "-95.99", "Tulsa", "OK"},
	{"C-2", "2024-01-20", "THEFT", "Bicycle stolen from porch", "36.10", "-95.90", "Tulsa", "OK"},
	{"C-3", "2024-02-11", "BURGLARY", "Garage break-in", "35.47", "-97.52", "Oklahoma City", "OK"},
	{"C-4", "not-a-date", "ASSAULT", "Altercation outside bar", "36.12", "-95.93", "Tulsa", "OK"},
	{"C-5", "2024-03-01", "THEFT", "", "", "", "Broken Arrow", "OK"},
}

func testConfig() *config.Config {
	return &config.Config{
		API: config.APIConfig{
			DefaultLimit: 100,
			MaxLimit:     1000,
			DefaultBins:  50,
			MaxBins:      500,
		},
		Cache: config.CacheConfig{TTL: 5 * time.Minute},
	}
}

// setupTestHandler creates a handler over an in-memory dataset.
func setupTestHandler(t *testing.T, columns []string, records [][]string) *Handler {
	t.Helper()
	ds, err := dataset.New(columns, records)
	if err != nil {
		t.Fatalf("dataset.New() error: %v", err)
	}
	return NewHandler(ds, testConfig())
}

// envelope mirrors models.APIResponse with a raw Data field so tests can
// decode the payload into the expected type.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

// doRequest runs the handler and decodes the response envelope.
func doRequest(t *testing.T, handlerFunc http.HandlerFunc, method, target string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	handlerFunc(rr, req)

	var env envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, rr.Body.String())
	}
	return rr.Code, env
}

func assertErrorCode(t *testing.T, status int, env envelope, wantStatus int, wantCode string) {
	t.Helper()
	if status != wantStatus {
		t.Errorf("status = %d, want %d", status, wantStatus)
	}
	if env.Status != "error" {
		t.Errorf("envelope status = %q, want error", env.Status)
	}
	if env.Error == nil {
		t.Fatal("envelope error is nil")
	}
	if env.Error.Code != wantCode {
		t.Errorf("error code = %q, want %q", env.Error.Code, wantCode)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	t.Run("healthy with loaded dataset", func(t *testing.T) {
		h := setupTestHandler(t, testColumns, testRecords)
		status, env := doRequest(t, h.Health, http.MethodGet, "/api/v1/health")
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200", status)
		}

		var health models.HealthStatus
		if err := json.Unmarshal(env.Data, &health); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if health.Status != "healthy" {
			t.Errorf("Status = %q, want healthy", health.Status)
		}
		if !health.DatasetLoaded {
			t.Error("DatasetLoaded = false, want true")
		}
		if health.RowCount != 5 {
			t.Errorf("RowCount = %d, want 5", health.RowCount)
		}
		if health.MappedRoles != 8 {
			t.Errorf("MappedRoles = %d, want 8", health.MappedRoles)
		}
	})

	t.Run("degraded without dataset", func(t *testing.T) {
		h := NewHandler(nil, testConfig())
		status, env := doRequest(t, h.Health, http.MethodGet, "/api/v1/health")
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200", status)
		}

		var health models.HealthStatus
		if err := json.Unmarshal(env.Data, &health); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if health.Status != "degraded" {
			t.Errorf("Status = %q, want degraded", health.Status)
		}
	})
}

func TestColumns(t *testing.T) {
	t.Parallel()
	h := setupTestHandler(t,
		[]string{"Date", "Offense", "Lat", "Lon", "City"},
		[][]string{{"2024-01-05", "THEFT", "36.1", "-95.9", "Tulsa"}},
	)

	status, env := doRequest(t, h.Columns, http.MethodGet, "/api/v1/columns")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	var payload models.ColumnsPayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if len(payload.Columns) != 5 || payload.Columns[0] != "Date" {
		t.Errorf("Columns = %v, want original header order", payload.Columns)
	}
	if payload.RowCount != 1 {
		t.Errorf("RowCount = %d, want 1", payload.RowCount)
	}

	wantMapped := map[string]string{
		"date":      "Date",
		"category":  "Offense",
		"latitude":  "Lat",
		"longitude": "Lon",
		"city":      "City",
	}
	for role, want := range wantMapped {
		got, ok := payload.Mapped[role]
		if !ok || got == nil {
			t.Errorf("role %s not mapped, want %q", role, want)
			continue
		}
		if *got != want {
			t.Errorf("role %s = %q, want %q", role, *got, want)
		}
	}
	for _, role := range []string{"description", "id", "state"} {
		if got, ok := payload.Mapped[role]; !ok {
			t.Errorf("role %s missing from mapped, want explicit null", role)
		} else if got != nil {
			t.Errorf("role %s = %q, want null", role, *got)
		}
	}
}

func TestIncidents(t *testing.T) {
	t.Parallel()
	h := setupTestHandler(t, testColumns, testRecords)

	t.Run("filtered and paginated", func(t *testing.T) {
		status, env := doRequest(t, h.Incidents, http.MethodGet,
			"/api/v1/incidents?city=Tulsa&limit=2&offset=0")
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200", status)
		}

		var payload models.IncidentsPayload
		if err := json.Unmarshal(env.Data, &payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if payload.Total != 3 {
			t.Errorf("Total = %d, want 3", payload.Total)
		}
		if len(payload.Items) != 2 {
			t.Fatalf("got %d items, want 2", len(payload.Items))
		}
		// Default sort is newest first; the unparseable date sorts last.
		if payload.Items[0].ID != "C-2" || payload.Items[1].ID != "C-1" {
			t.Errorf("items = %s, %s; want C-2, C-1", payload.Items[0].ID, payload.Items[1].ID)
		}
		if payload.Limit != 2 || payload.Offset != 0 {
			t.Errorf("limit/offset echo = %d/%d, want 2/0", payload.Limit, payload.Offset)
		}
	})

	t.Run("explicit ascending sort", func(t *testing.T) {
		status, env := doRequest(t, h.Incidents, http.MethodGet, "/api/v1/incidents?sort=date&limit=1")
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200", status)
		}
		var payload models.IncidentsPayload
		if err := json.Unmarshal(env.Data, &payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if payload.Items[0].ID != "C-1" {
			t.Errorf("first item = %s, want C-1 (oldest)", payload.Items[0].ID)
		}
	})

	t.Run("empty page past the end", func(t *testing.T) {
		status, env := doRequest(t, h.Incidents, http.MethodGet, "/api/v1/incidents?offset=100")
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200", status)
		}
		var payload models.IncidentsPayload
		if err := json.Unmarshal(env.Data, &payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if payload.Total != 5 {
			t.Errorf("Total = %d, want 5 (total independent of pagination)", payload.Total)
		}
		if len(payload.Items) != 0 {
			t.Errorf("got %d items, want 0", len(payload.Items))
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name     string
			params   string
			wantCode string
		}{
			{"zero limit", "limit=0", "VALIDATION_ERROR"},
			{"negative offset", "offset=-1", "VALIDATION_ERROR"},
			{"limit over maximum", "limit=5000", "VALIDATION_ERROR"},
			{"unknown sort field", "sort=severity", "VALIDATION_ERROR"},
			{"bad start date", "start_date=not-a-date", "VALIDATION_ERROR"},
			{"bad min_lat", "min_lat=abc", "VALIDATION_ERROR"},
			{"out-of-range latitude", "min_lat=200", "VALIDATION_ERROR"},
			{"out-of-range longitude", "max_lng=500", "VALIDATION_ERROR"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				status, env := doRequest(t, h.Incidents, http.MethodGet,
					"/api/v1/incidents?"+tt.params)
				assertErrorCode(t, status, env, http.StatusBadRequest, tt.wantCode)
			})
		}
	})
}

func TestStats(t *testing.T) {
	t.Parallel()

	t.Run("defaults to category", func(t *testing.T) {
		h := setupTestHandler(t, testColumns, testRecords)
		status, env := doRequest(t, h.Stats, http.MethodGet, "/api/v1/stats")
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200", status)
		}

		var payload models.StatsPayload
		if err := json.Unmarshal(env.Data, &payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if payload.By != "category" {
			t.Errorf("By = %q, want category", payload.By)
		}
		if len(payload.Data) != 3 {
			t.Fatalf("got %d buckets, want 3", len(payload.Data))
		}
		if payload.Data[0].Key != "BURGLARY" || payload.Data[0].Count != 2 {
			t.Errorf("first bucket = %+v, want BURGLARY x2", payload.Data[0])
		}
	})

	t.Run("second identical request is cached", func(t *testing.T) {
		h := setupTestHandler(t, testColumns, testRecords)
		target := "/api/v1/stats?by=month"

		_, first := doRequest(t, h.Stats, http.MethodGet, target)
		if first.Metadata.Cached {
			t.Error("first response reported cached")
		}

		_, second := doRequest(t, h.Stats, http.MethodGet, target)
		if !second.Metadata.Cached {
			t.Error("second response not cached")
		}

		var payload models.StatsPayload
		if err := json.Unmarshal(second.Data, &payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if len(payload.Data) != 4 {
			t.Errorf("got %d buckets, want 4 (3 months + unknown)", len(payload.Data))
		}
	})

	t.Run("unknown aggregation key", func(t *testing.T) {
		h := setupTestHandler(t, testColumns, testRecords)
		status, env := doRequest(t, h.Stats, http.MethodGet, "/api/v1/stats?by=severity")
		assertErrorCode(t, status, env, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	t.Run("unmapped role", func(t *testing.T) {
		h := setupTestHandler(t,
			[]string{"id", "date"},
			[][]string{{"1", "2024-01-05"}},
		)
		status, env := doRequest(t, h.Stats, http.MethodGet, "/api/v1/stats?by=city")
		assertErrorCode(t, status, env, http.StatusBadRequest, "MISSING_ROLE")
	})
}

func TestGeoJSON(t *testing.T) {
	t.Parallel()

	t.Run("feature collection", func(t *testing.T) {
		h := setupTestHandler(t, testColumns, testRecords)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/geojson", nil)
		rr := httptest.NewRecorder()
		h.GeoJSON(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rr.Code)
		}
		if ct := rr.Header().Get("Content-Type"); ct != "application/geo+json" {
			t.Errorf("Content-Type = %q, want application/geo+json", ct)
		}

		var fc GeoJSONFeatureCollection
		if err := json.Unmarshal(rr.Body.Bytes(), &fc); err != nil {
			t.Fatalf("decode collection: %v", err)
		}
		if fc.Type != "FeatureCollection" {
			t.Errorf("Type = %q, want FeatureCollection", fc.Type)
		}
		// C-5 has no coordinates and is skipped.
		if len(fc.Features) != 4 {
			t.Fatalf("got %d features, want 4", len(fc.Features))
		}

		f := fc.Features[0]
		if f.Type != "Feature" || f.Geometry.Type != "Point" {
			t.Errorf("feature shape = %s/%s, want Feature/Point", f.Type, f.Geometry.Type)
		}
		// GeoJSON order is [lng, lat].
		if len(f.Geometry.Coordinates) != 2 || f.Geometry.Coordinates[0] != -95.99 || f.Geometry.Coordinates[1] != 36.15 {
			t.Errorf("coordinates = %v, want [-95.99 36.15]", f.Geometry.Coordinates)
		}
		if f.Properties.ID != "C-1" {
			t.Errorf("properties id = %q, want C-1", f.Properties.ID)
		}
	})

	t.Run("respects filters", func(t *testing.T) {
		h := setupTestHandler(t, testColumns, testRecords)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/geojson?category=BURGLARY", nil)
		rr := httptest.NewRecorder()
		h.GeoJSON(rr, req)

		var fc GeoJSONFeatureCollection
		if err := json.Unmarshal(rr.Body.Bytes(), &fc); err != nil {
			t.Fatalf("decode collection: %v", err)
		}
		if len(fc.Features) != 2 {
			t.Errorf("got %d features, want 2", len(fc.Features))
		}
	})

	t.Run("missing coordinate columns", func(t *testing.T) {
		h := setupTestHandler(t,
			[]string{"id", "date", "offense"},
			[][]string{{"1", "2024-01-05", "THEFT"}},
		)
		status, env := doRequest(t, h.GeoJSON, http.MethodGet, "/api/v1/geojson")
		assertErrorCode(t, status, env, http.StatusBadRequest, "MISSING_ROLE")
	})
}

func TestHeatmap(t *testing.T) {
	t.Parallel()

	quadrants := func(t *testing.T) *Handler {
		t.Helper()
		return setupTestHandler(t,
			[]string{"id", "lat", "lon"},
			[][]string{
				{"sw", "0.0", "0.0"},
				{"se", "0.0", "1.0"},
				{"nw", "1.0", "0.0"},
				{"ne", "1.0", "1.0"},
			},
		)
	}

	t.Run("bins the grid", func(t *testing.T) {
		h := quadrants(t)
		status, env := doRequest(t, h.Heatmap, http.MethodGet, "/api/v1/heatmap?bins=2")
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200", status)
		}

		var payload models.HeatmapPayload
		if err := json.Unmarshal(env.Data, &payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if payload.Bins != 2 {
			t.Errorf("Bins = %d, want 2", payload.Bins)
		}
		if len(payload.Grid) != 4 {
			t.Fatalf("got %d cells, want 4", len(payload.Grid))
		}
		for _, cell := range payload.Grid {
			if cell.Count != 1 {
				t.Errorf("cell count = %d, want 1", cell.Count)
			}
		}
	})

	t.Run("second identical request is cached", func(t *testing.T) {
		h := quadrants(t)
		target := "/api/v1/heatmap?bins=2"
		_, first := doRequest(t, h.Heatmap, http.MethodGet, target)
		if first.Metadata.Cached {
			t.Error("first response reported cached")
		}
		_, second := doRequest(t, h.Heatmap, http.MethodGet, target)
		if !second.Metadata.Cached {
			t.Error("second response not cached")
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		h := quadrants(t)
		for _, params := range []string{"bins=0", "bins=-5", "bins=501"} {
			status, env := doRequest(t, h.Heatmap, http.MethodGet, "/api/v1/heatmap?"+params)
			assertErrorCode(t, status, env, http.StatusBadRequest, "VALIDATION_ERROR")
		}
	})

	t.Run("missing coordinate columns", func(t *testing.T) {
		h := setupTestHandler(t,
			[]string{"id", "offense"},
			[][]string{{"1", "THEFT"}},
		)
		status, env := doRequest(t, h.Heatmap, http.MethodGet, "/api/v1/heatmap")
		assertErrorCode(t, status, env, http.StatusBadRequest, "MISSING_ROLE")
	})
}

// TestMethodNotAllowed verifies every endpoint rejects non-GET methods.
func TestMethodNotAllowed(t *testing.T) {
	t.Parallel()
	h := setupTestHandler(t, testColumns, testRecords)

	endpoints := []struct {
		name        string
		handlerFunc http.HandlerFunc
		path        string
	}{
		{"health", h.Health, "/api/v1/health"},
		{"columns", h.Columns, "/api/v1/columns"},
		{"incidents", h.Incidents, "/api/v1/incidents"},
		{"stats", h.Stats, "/api/v1/stats"},
		{"geojson", h.GeoJSON, "/api/v1/geojson"},
		{"heatmap", h.Heatmap, "/api/v1/heatmap"},
	}
	for _, ep := range endpoints {
		for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
			t.Run(ep.name+"_"+method, func(t *testing.T) {
				status, env := doRequest(t, ep.handlerFunc, method, ep.path)
				assertErrorCode(t, status, env, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED")
			})
		}
	}
}

// TestResponseHeaders verifies the shared JSON response headers.
func TestResponseHeaders(t *testing.T) {
	t.Parallel()
	h := setupTestHandler(t, testColumns, testRecords)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/columns", nil)
	rr := httptest.NewRecorder()
	h.Columns(rr, req)

	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if rr.Header().Get("ETag") == "" {
		t.Error("ETag header missing")
	}
	if cc := rr.Header().Get("Cache-Control"); cc == "" {
		t.Error("Cache-Control header missing")
	}
}
