// SecureNav - Crime Incident Data API and Geographic Visualization
// Copyright 2026 James Weddington (jamesweddington1215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jamesweddington1215/securenav

// Package main provides the SecureNav HTTP server
//
// SecureNav serves a read-only query API over a crime incident CSV
// loaded into memory at startup.
//
// @title SecureNav API
// @version 1.0
// @description Read-only query API over a crime incident CSV: column introspection, filtered listing, aggregation, and geospatial projections
// @description
// @description ## Dataset
// @description
// @description A single CSV is loaded into memory at startup. Columns are auto-mapped
// @description to semantic roles (latitude, longitude, date, category, description,
// @description id, city, state) by case-insensitive header matching. Query `/columns`
// @description to see which roles resolved for the loaded file.
// @description
// @description ## Filtering
// @description
// @description All query endpoints accept the same predicate set, combined with AND:
// @description `q` (substring over description/category), `category`/`city`/`state`
// @description (case-insensitive equality), `start_date`/`end_date` (inclusive), and
// @description `min_lat`/`max_lat`/`min_lng`/`max_lng` (bounding box).
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description Rate limit headers are included in responses: `X-RateLimit-Limit`, `X-RateLimit-Remaining`, `X-RateLimit-Reset`.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message",
// @description     "details": {}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-08-24T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/jamesweddington1215/securenav/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Core
// @tag.description Core API endpoints for health checks, schema introspection, and incident listing
//
// @tag.name Analytics
// @tag.description Aggregation endpoints bucketing incidents by role or date truncation
//
// @tag.name Geo
// @tag.description Geospatial projections: GeoJSON export and grid heatmaps
package main
