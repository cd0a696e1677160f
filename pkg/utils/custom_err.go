package utils

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrAIServiceUnavailable = errors.New("ai service unavailable")
	ErrAIGateway            = errors.New("ai gateway request failed")
	ErrSchemaViolation      = errors.New("ai response violates expected schema")
	ErrDatabaseError        = errors.New("database error")
	ErrRecordNotFound       = errors.New("record not found")
	ErrAccountNotFound      = errors.New("account not found")
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInactiveAccount      = errors.New("account is inactive")
	ErrForbidden            = errors.New("not allowed to access this resource")
	ErrInvalidPage          = errors.New("invalid page parameter")
	ErrInvalidPageSize      = errors.New("invalid page size parameter")
)

// FieldViolation is a single field-level validation failure.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every field violation found in one input so the
// caller sees the full list instead of the first failure. errors.Is reports
// true against ErrValidation.
type ValidationErrors struct {
	Violations []FieldViolation
}

func (e *ValidationErrors) Add(field, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Message: message})
}

func (e *ValidationErrors) HasViolations() bool {
	return len(e.Violations) > 0
}

func (e *ValidationErrors) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationErrors) Unwrap() error {
	return ErrValidation
}
