package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound = errors.New("resource not found")

	ErrInvalidArgument = errors.New("invalid argument")

	ErrValidation = errors.New("validation failed")

	ErrAlreadyExists = errors.New("resource already exists")

	ErrBusinessRule = errors.New("business rule violated")

	ErrDatabase = errors.New("database error")

	ErrInternalServer = errors.New("internal server error")

	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict is an alias kept so callers can match either name.
	ErrConflict = ErrAlreadyExists
)

type Kind string

const (
	KindValidation      Kind = "ValidationError"
	KindInvalidArgument Kind = "IllegalArgumentError"
	KindConflict        Kind = "ConflictError"
	KindBusinessRule    Kind = "BusinessRuleError"
	KindNotFound        Kind = "NotFoundError"
	KindUnauthorized    Kind = "UnauthorizedError"
	KindInternal        Kind = "InternalError"
)

type FieldViolation struct {
	Field   string
	Message string
}

type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = fmt.Sprintf("'%s': %s", v.Field, v.Message)
	}
	return "validation failed for " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(field, message string) error {
	return &ValidationError{Violations: []FieldViolation{{Field: field, Message: message}}}
}

// NewValidationErrors returns nil when there is nothing to report.
func NewValidationErrors(violations []FieldViolation) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}

type ConflictError struct {
	Key     string
	Message string
	Cause   error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict on '%s': %s", e.Key, e.Message)
}

func (e *ConflictError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrAlreadyExists}
	}
	return []error{ErrAlreadyExists, e.Cause}
}

func NewConflictError(key, message string, cause error) error {
	return &ConflictError{Key: key, Message: message, Cause: cause}
}

type BusinessRuleError struct {
	Rule    string
	Message string
}

func (e *BusinessRuleError) Error() string {
	return fmt.Sprintf("business rule '%s' violated: %s", e.Rule, e.Message)
}

func (e *BusinessRuleError) Unwrap() error {
	return ErrBusinessRule
}

func NewBusinessRuleError(rule, message string) error {
	return &BusinessRuleError{Rule: rule, Message: message}
}

func NewNotFoundError(resource string, key any) error {
	return fmt.Errorf("%w: %s %v", ErrNotFound, resource, key)
}

type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func WrapDatabaseError(cause error, message string) error {
	return &AppError{
		Code:    "DB_ERROR",
		Message: message,
		Cause:   fmt.Errorf("%w: %w", ErrDatabase, cause),
	}
}

// KindOf classifies err into exactly one Kind. Order matters: the more
// specific typed errors are checked before the sentinels they wrap.
func KindOf(err error) Kind {
	var (
		validationErr *ValidationError
		conflictErr   *ConflictError
		businessErr   *BusinessRuleError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &validationErr), errors.Is(err, ErrValidation):
		return KindValidation
	case errors.As(err, &conflictErr), errors.Is(err, ErrAlreadyExists):
		return KindConflict
	case errors.As(err, &businessErr), errors.Is(err, ErrBusinessRule):
		return KindBusinessRule
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	default:
		return KindInternal
	}
}

// Details builds the key to message map carried by the error payload.
// Internal errors never leak their cause.
func Details(err error) map[string]string {
	details := make(map[string]string)
	if err == nil {
		return details
	}

	var (
		validationErr *ValidationError
		conflictErr   *ConflictError
		businessErr   *BusinessRuleError
	)
	switch {
	case errors.As(err, &validationErr):
		for _, v := range validationErr.Violations {
			details[v.Field] = v.Message
		}
	case errors.As(err, &conflictErr):
		details[conflictErr.Key] = conflictErr.Message
	case errors.As(err, &businessErr):
		details[businessErr.Rule] = businessErr.Message
	case KindOf(err) == KindInternal:
		details["cause"] = "An unexpected error occurred."
	default:
		details["cause"] = err.Error()
	}
	return details
}
