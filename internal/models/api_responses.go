// SecureNav - Crime Incident Data API and Geographic Visualization
// Copyright 2026 James Weddington (jamesweddington1215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jamesweddington1215/securenav

package models

import (
	"time"
)

// APIResponse is the standardized response wrapper used by all HTTP endpoints.
// It provides a consistent structure for both successful and error responses.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"total": 100, "items": [...]},
//	  "metadata": {
//	    "timestamp": "2026-08-24T12:00:00Z",
//	    "query_time_ms": 3,
//	    "cached": false
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "MISSING_ROLE",
//	    "message": "dataset has no latitude/longitude columns"
//	  },
//	  "metadata": {"timestamp": "2026-08-24T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
//
// Fields:
//   - Timestamp: Server time when the response was generated (RFC3339)
//   - QueryTimeMS: In-memory query execution time in milliseconds (0 if cached)
//   - Cached: Whether the response was served from the TTL cache
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError represents an error response with structured details.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid input parameters (bad bounds, unknown sort key)
//   - MISSING_ROLE: A required semantic role is not mapped in the dataset
//   - NOT_FOUND: Resource doesn't exist
//   - METHOD_NOT_ALLOWED: Wrong HTTP method
//   - INTERNAL_ERROR: Unexpected server failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
