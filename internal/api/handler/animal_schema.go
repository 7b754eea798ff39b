package handler

import (
	"time"

	"github.com/shelterworks/shelter-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error   string                  `json:"error"`
	Details []domain.FieldViolation `json:"details,omitempty"`
}

// --- Request types ---

// createAnimalRequest carries every field required to create a record.
// Unknown JSON fields are silently dropped by decoding, never rejected.
type createAnimalRequest struct {
	Name    string `json:"name"    validate:"required,min=2,max=100"`
	Species string `json:"species" validate:"required,min=2,max=100"`
	Race    string `json:"race"    validate:"required,min=2,max=100"`
	Gender  string `json:"gender"  validate:"required,oneof=Male Female"`
	Age     *int   `json:"age"     validate:"required,gte=0,lte=1000"`
}

// updateAnimalRequest is the partial-update shape: every field optional,
// validated with the same bounds when present.
type updateAnimalRequest struct {
	Name    *string `json:"name"    validate:"omitempty,min=2,max=100"`
	Species *string `json:"species" validate:"omitempty,min=2,max=100"`
	Race    *string `json:"race"    validate:"omitempty,min=2,max=100"`
	Gender  *string `json:"gender"  validate:"omitempty,oneof=Male Female"`
	Age     *int    `json:"age"     validate:"omitempty,gte=0,lte=1000"`
}

// --- Response types ---

// animalResponse is the wire shape of a stored record. Kept separate from the
// domain entity so the JSON contract is not coupled to internal changes.
type animalResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Race      string    `json:"race"`
	Gender    string    `json:"gender"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type deleteAnimalResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
