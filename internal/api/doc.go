// SecureNav - Crime Incident Data API and Geographic Visualization
// Copyright 2026 James Weddington (jamesweddington1215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jamesweddington1215/securenav

/*
Package api provides the HTTP REST API layer for SecureNav.

This package implements the read-only query endpoints over the in-memory
incident dataset: column introspection, filtered/paginated listing,
aggregation, GeoJSON export, and a grid heatmap.

Key Components:

  - Router: Chi route configuration with per-group middleware
  - Handler: Request handlers for all endpoints
  - Response formatting: Standardized JSON envelope with metadata
  - Error handling: Consistent error codes (VALIDATION_ERROR, MISSING_ROLE)
  - Rate limiting and CORS via the go-chi middleware ecosystem
*/
package api
