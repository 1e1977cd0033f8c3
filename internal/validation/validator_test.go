// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package validation

import (
	"strings"
	"testing"
)

type recommendBody struct {
	UserID *int     `json:"user_id" validate:"required,gte=0"`
	K      *int     `json:"k,omitempty" validate:"omitempty,gte=1,lte=100"`
	Alpha  *float64 `json:"alpha" validate:"omitempty,gte=0,lte=1"`
}

type uiForm struct {
	UserID int     `form:"user_id" validate:"gte=0"`
	K      int     `form:"k" validate:"gte=5,lte=20"`
	Alpha  float64 `form:"alpha" validate:"gte=0,lte=1"`
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestGetValidatorSingleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantTag   string
	}{
		{"valid body", &recommendBody{UserID: intPtr(1), K: intPtr(10), Alpha: floatPtr(0.7)}, "", ""},
		{"zero alpha is allowed", &recommendBody{UserID: intPtr(0), Alpha: floatPtr(0)}, "", ""},
		{"missing user", &recommendBody{K: intPtr(10)}, "user_id", "required"},
		{"negative user", &recommendBody{UserID: intPtr(-1)}, "user_id", "gte"},
		{"k too large", &recommendBody{UserID: intPtr(1), K: intPtr(500)}, "k", "lte"},
		{"alpha above one", &recommendBody{UserID: intPtr(1), Alpha: floatPtr(1.2)}, "alpha", "lte"},
		{"form k below range", &uiForm{UserID: 3, K: 2, Alpha: 0.5}, "k", "gte"},
		{"form valid", &uiForm{UserID: 3, K: 10, Alpha: 0.7}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(tt.input)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
		})
	}
}

func TestToAPIError_Single(t *testing.T) {
	verr := ValidateStruct(&recommendBody{UserID: intPtr(1), Alpha: floatPtr(2)})
	if verr == nil {
		t.Fatal("expected validation error")
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != ErrorCode {
		t.Errorf("Code = %q, want %q", apiErr.Code, ErrorCode)
	}
	if apiErr.Message != "alpha must be less than or equal to 1" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "alpha" {
		t.Errorf("Details[field] = %v", apiErr.Details["field"])
	}
	if v, ok := apiErr.Details["value"].(float64); !ok || v != 2 {
		t.Errorf("Details[value] = %#v, want dereferenced 2.0", apiErr.Details["value"])
	}
}

func TestToAPIError_Multiple(t *testing.T) {
	verr := ValidateStruct(&uiForm{UserID: -1, K: 50, Alpha: -0.5})
	if verr == nil {
		t.Fatal("expected validation error")
	}

	apiErr := verr.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 3 {
		t.Fatalf("Details[fields] = %#v, want 3 entries", apiErr.Details["fields"])
	}
	for _, name := range []string{"user_id", "k", "alpha"} {
		if !strings.Contains(apiErr.Message, name) {
			t.Errorf("Message %q does not mention %s", apiErr.Message, name)
		}
	}
}

func TestToAPIError_Empty(t *testing.T) {
	apiErr := (&RequestValidationError{}).ToAPIError()
	if apiErr.Code != ErrorCode || apiErr.Message != "Validation failed" {
		t.Errorf("empty ToAPIError() = %+v", apiErr)
	}
}
