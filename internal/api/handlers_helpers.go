// SecureNav - Crime Incident Data API and Geographic Visualization
// Copyright 2026 James Weddington (jamesweddington1215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jamesweddington1215/securenav

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/jamesweddington1215/securenav/internal/dataset"
	"github.com/jamesweddington1215/securenav/internal/logging"
	"github.com/jamesweddington1215/securenav/internal/models"
	"github.com/jamesweddington1215/securenav/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent
// log injection. Newlines, carriage returns, and other control bytes are
// replaced with a hex escape.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=60")
	w.Header().Set("Vary", "Accept-Encoding")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a simple ETag from data using FNV-1a.
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.FormatUint(uint64(hash), 16)
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", sanitizeLogValue(code)).Str("error", sanitizeLogValue(err.Error())).Msg("API Error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondDatasetError maps dataset query errors onto HTTP responses:
// MissingRoleError -> 400 MISSING_ROLE, InvalidParameterError -> 400
// VALIDATION_ERROR, anything else -> 500.
func respondDatasetError(w http.ResponseWriter, err error) {
	var missingRole *dataset.MissingRoleError
	if errors.As(err, &missingRole) {
		respondError(w, http.StatusBadRequest, "MISSING_ROLE", missingRole.Error(), nil)
		return
	}

	var invalidParam *dataset.InvalidParameterError
	if errors.As(err, &invalidParam) {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", invalidParam.Error(), nil)
		return
	}

	respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Query failed", err)
}

// requireMethod enforces the HTTP method, responding with 405 and
// returning false on mismatch.
func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return false
	}
	return true
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil on success or a models.APIError with the VALIDATION_ERROR
// code on failure.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// getIntParam extracts an integer query parameter with a default value.
func getIntParam(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

// getFloatParam extracts an optional float query parameter. Returns an
// error message naming the parameter when the value is not numeric.
func getFloatParam(r *http.Request, key string) (*float64, string) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil, ""
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, "Invalid " + key
	}

	return &f, ""
}

// getDateParam extracts an optional date query parameter using the
// dataset's lenient formats. Returns an error message naming the
// parameter when the value matches no known layout.
func getDateParam(r *http.Request, key string) (*time.Time, string) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil, ""
	}

	t, ok := dataset.ParseDate(value)
	if !ok {
		return nil, "Invalid " + key
	}

	return &t, ""
}
