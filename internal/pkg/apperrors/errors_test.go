package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorError(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "With Code",
			appError: &AppError{
				Code:    "TEST_CODE",
				Message: "This is a test error",
			},
			expected: "[TEST_CODE] This is a test error",
		},
		{
			name: "Without Code",
			appError: &AppError{
				Message: "This is a test error without code",
			},
			expected: "This is a test error without code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Error()
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestWrapDatabaseError(t *testing.T) {
	cause := errors.New("connection reset")
	err := WrapDatabaseError(cause, "failed to save")

	assert.ErrorIs(t, err, ErrDatabase)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindInternal, KindOf(err))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"nil", nil, ""},
		{"validation", NewValidationError("firstName", "must not be empty"), KindValidation},
		{"wrapped validation", fmt.Errorf("register: %w", NewValidationError("cpf", "Invalid CPF")), KindValidation},
		{"conflict", NewConflictError("cpf", "cpf already registered", nil), KindConflict},
		{"already exists sentinel", fmt.Errorf("%w: uq_customers_email", ErrAlreadyExists), KindConflict},
		{"business rule", NewBusinessRuleError("first_installment_window", "Invalid Date"), KindBusinessRule},
		{"not found", NewNotFoundError("customer", 7), KindNotFound},
		{"invalid argument", fmt.Errorf("%w: bad id", ErrInvalidArgument), KindInvalidArgument},
		{"unauthorized", ErrUnauthorized, KindUnauthorized},
		{"anything else", errors.New("boom"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
		})
	}
}

func TestDetails(t *testing.T) {
	t.Run("validation lists every field", func(t *testing.T) {
		err := NewValidationErrors([]FieldViolation{
			{Field: "firstName", Message: "This field is required"},
			{Field: "cpf", Message: "Invalid CPF"},
		})
		assert.Equal(t, map[string]string{
			"firstName": "This field is required",
			"cpf":       "Invalid CPF",
		}, Details(err))
	})

	t.Run("conflict is keyed by the violated key", func(t *testing.T) {
		err := NewConflictError("email", "email already registered", errors.New("23505"))
		assert.Equal(t, map[string]string{"email": "email already registered"}, Details(err))
	})

	t.Run("business rule is keyed by rule", func(t *testing.T) {
		err := NewBusinessRuleError("credit_ownership", "Contact admin")
		assert.Equal(t, map[string]string{"credit_ownership": "Contact admin"}, Details(err))
	})

	t.Run("internal errors hide their cause", func(t *testing.T) {
		err := WrapDatabaseError(errors.New("password authentication failed"), "failed")
		assert.Equal(t, map[string]string{"cause": "An unexpected error occurred."}, Details(err))
	})

	t.Run("not found carries its message", func(t *testing.T) {
		err := NewNotFoundError("credit", "abc")
		assert.Equal(t, "resource not found: credit abc", Details(err)["cause"])
	})
}

func TestNewValidationErrorsEmpty(t *testing.T) {
	assert.NoError(t, NewValidationErrors(nil))
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationErrors([]FieldViolation{
		{Field: "firstName", Message: "This field is required"},
		{Field: "street", Message: "This field is required"},
	})
	assert.EqualError(t, err, "validation failed for 'firstName': This field is required, 'street': This field is required")
	assert.ErrorIs(t, err, ErrValidation)
}
