// SecureNav - Crime Incident Data API and Geographic Visualization
// Copyright 2026 James Weddington (jamesweddington1215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jamesweddington1215/securenav

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jamesweddington1215/securenav/internal/logging"
)

func TestRequestIDGeneratesHeader(t *testing.T) {
	t.Parallel()

	var capturedID string
	handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
		capturedID = GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	headerID := rr.Header().Get("X-Request-ID")
	if headerID == "" {
		t.Fatal("expected X-Request-ID header to be set")
	}
	if capturedID != headerID {
		t.Errorf("context ID %q does not match header ID %q", capturedID, headerID)
	}
}

func TestRequestIDPreservesUpstreamID(t *testing.T) {
	t.Parallel()

	handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
		if got := logging.RequestIDFromContext(r.Context()); got != "upstream-7" {
			t.Errorf("logging context ID = %q, want upstream-7", got)
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/columns", nil)
	req.Header.Set("X-Request-ID", "upstream-7")
	rr := httptest.NewRecorder()
	handler(rr, req)

	if got := rr.Header().Get("X-Request-ID"); got != "upstream-7" {
		t.Errorf("X-Request-ID = %q, want upstream-7", got)
	}
}

func TestPrometheusMetricsPassesThrough(t *testing.T) {
	t.Parallel()

	handler := PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/incidents", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	if rr.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusTeapot)
	}
}
