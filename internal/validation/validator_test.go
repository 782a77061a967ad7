// SecureNav - Crime Incident Data API and Geographic Visualization
// Copyright 2026 James Weddington (jamesweddington1215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jamesweddington1215/securenav

package validation

import (
	"strings"
	"testing"
)

type pageParams struct {
	Limit  int `validate:"min=1,max=1000"`
	Offset int `validate:"min=0"`
}

type boundsParams struct {
	MinLat float64 `validate:"omitempty,latitude"`
	MinLng float64 `validate:"omitempty,longitude"`
	By     string  `validate:"omitempty,oneof=category city state day month year"`
}

func TestValidateStructPasses(t *testing.T) {
	t.Parallel()

	if err := ValidateStruct(&pageParams{Limit: 100, Offset: 0}); err != nil {
		t.Errorf("valid struct failed validation: %v", err)
	}
}

func TestValidateStructLimitBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  pageParams
		wantErr bool
	}{
		{"limit at minimum", pageParams{Limit: 1}, false},
		{"limit at maximum", pageParams{Limit: 1000}, false},
		{"limit zero", pageParams{Limit: 0}, true},
		{"limit over cap", pageParams{Limit: 1001}, true},
		{"negative offset", pageParams{Limit: 10, Offset: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.params)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStruct(%+v) error = %v, wantErr %v", tt.params, err, tt.wantErr)
			}
		})
	}
}

func TestValidateStructOneOf(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&boundsParams{By: "offense"})
	if err == nil {
		t.Fatal("expected error for unknown aggregation key")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if !strings.Contains(apiErr.Message, "must be one of") {
		t.Errorf("message = %q, want oneof translation", apiErr.Message)
	}
}

func TestToAPIErrorMultipleFields(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&pageParams{Limit: 0, Offset: -5})
	if err == nil {
		t.Fatal("expected validation errors")
	}
	if len(err.Errors()) != 2 {
		t.Fatalf("got %d errors, want 2", len(err.Errors()))
	}

	apiErr := err.ToAPIError()
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Error("expected fields detail for multi-error response")
	}
	if !strings.Contains(apiErr.Message, ";") {
		t.Errorf("message = %q, want joined messages", apiErr.Message)
	}
}

func TestGetValidatorSingleton(t *testing.T) {
	t.Parallel()

	if GetValidator() != GetValidator() {
		t.Error("expected the same validator instance")
	}
}
