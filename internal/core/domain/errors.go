package domain

import "errors"

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidRole        = errors.New("invalid role")

	ErrAnimalNotFound = errors.New("animal not found")
	ErrInvalidID      = errors.New("invalid animal id")
	ErrEmptyBatch     = errors.New("empty array provided for bulk creation")
)

// FieldViolation describes a single failed validation rule.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Rule    string `json:"rule"`
}

// ValidationError aggregates every violation found in a request payload.
// The request is rejected as a whole; nothing is partially applied.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// NewValidationError builds a ValidationError from individual violations.
func NewValidationError(violations ...FieldViolation) *ValidationError {
	return &ValidationError{Violations: violations}
}
