// Copyright (c) 2026 Moviq. All rights reserved.
// Author: dev.kabir01@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devkabir/moviq/internal/platform/apperr"
	"github.com/devkabir/moviq/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "raw_text", "Interstellar (2014)", false},
		{"empty_string", "raw_text", "", true},
		{"whitespace_only", "raw_text", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Positive checks the numeric identifier rule.
*/
func TestValidator_Positive(t *testing.T) {
	tests := []struct {
		name    string
		value   int64
		isValid bool
	}{
		{"positive_id", 42, true},
		{"zero", 0, false},
		{"negative", -7, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Positive("content_id", tt.value)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_OneOf checks enum membership validation.
*/
func TestValidator_OneOf(t *testing.T) {
	allowed := []string{"bn", "en", "hi"}

	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"allowed_value", "bn", true},
		{"other_allowed_value", "en", true},
		{"unknown_value", "fr", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.OneOf("language", tt.value, allowed)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("raw_text", "Man of Steel").
		MinLen("raw_text", "Man of Steel", 3).
		MaxLen("raw_text", "Man of Steel", 100).
		Positive("content_id", 1001).
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("raw_text", "").          // Fails
		MinLen("raw_text", "a", 3).        // Fails
		OneOf("language", "xx", []string{"bn", "en"}). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}
