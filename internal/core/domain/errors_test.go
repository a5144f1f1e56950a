package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrValidation", ErrValidation},
		{"ErrConfiguration", ErrConfiguration},
		{"ErrNotInResult", ErrNotInResult},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrors_Uniqueness tests that all errors are distinct
func TestErrors_Uniqueness(t *testing.T) {
	allErrors := []error{
		ErrNotFound,
		ErrInvalidInput,
		ErrValidation,
		ErrConfiguration,
		ErrNotInResult,
	}

	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i != j {
				assert.False(t, errors.Is(err1, err2),
					"Error %v should not match error %v", err1, err2)
			}
		}
	}
}

func TestValidationError_Is(t *testing.T) {
	var err error = &ValidationError{Step: StepSize, Field: StepSize.Required()}

	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrConfiguration))
	assert.Equal(t, "step 2: property size is required", err.Error())
}

func TestValidationError_As(t *testing.T) {
	wrapped := fmt.Errorf("advance: %w", &ValidationError{Step: StepPackage, Field: "package level"})

	var verr *ValidationError
	require.True(t, errors.As(wrapped, &verr))
	assert.Equal(t, StepPackage, verr.Step)
	assert.Equal(t, "package level", verr.Field)
}

// TestErrors_InSwitchStatement tests using errors in switch statements
func TestErrors_InSwitchStatement(t *testing.T) {
	testErr := fmt.Errorf("base price: %w", ErrConfiguration)

	var result string
	switch {
	case errors.Is(testErr, ErrValidation):
		result = "validation"
	case errors.Is(testErr, ErrConfiguration):
		result = "configuration"
	default:
		result = "unknown"
	}

	assert.Equal(t, "configuration", result)
}
