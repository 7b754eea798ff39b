package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shelterworks/shelter-api/internal/core/domain"
)

func handleError(t *testing.T, err error, development bool) (*httptest.ResponseRecorder, errorResponse) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop(), development)(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return rec, body
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest, "invalid animal id"},
		{"empty batch", domain.ErrEmptyBatch, http.StatusBadRequest, "empty array provided for bulk creation"},
		{"animal not found", domain.ErrAnimalNotFound, http.StatusNotFound, "animal not found"},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized, "invalid token"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"user exists", domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest, "role must be admin or user"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := handleError(t, tc.err, false)
			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			if body.Error != tc.wantMsg {
				t.Fatalf("expected message %q, got %q", tc.wantMsg, body.Error)
			}
		})
	}
}

func TestErrorHandler_ValidationDetails(t *testing.T) {
	err := domain.NewValidationError(
		domain.FieldViolation{Field: "name", Message: "name is required", Rule: "required"},
		domain.FieldViolation{Field: "age", Message: "age must be at most 1000", Rule: "lte"},
	)

	rec, body := handleError(t, err, false)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body.Error != "validation failed" {
		t.Fatalf("unexpected error message: %q", body.Error)
	}
	if len(body.Details) != 2 {
		t.Fatalf("expected 2 details, got %d", len(body.Details))
	}
	if body.Details[0].Field != "name" || body.Details[1].Rule != "lte" {
		t.Fatalf("unexpected details: %+v", body.Details)
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	rec, body := handleError(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"), false)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body.Error != "missing authorization header" {
		t.Fatalf("unexpected message: %q", body.Error)
	}
}

func TestErrorHandler_UnexpectedErrorHidesCause(t *testing.T) {
	rec, body := handleError(t, errors.New("store exploded"), false)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body.Error != "internal server error" {
		t.Fatalf("unexpected message: %q", body.Error)
	}
	if body.Detail != "" {
		t.Fatalf("detail must be empty outside development, got %q", body.Detail)
	}
}

func TestErrorHandler_UnexpectedErrorDetailInDevelopment(t *testing.T) {
	_, body := handleError(t, errors.New("store exploded"), true)

	if body.Detail != "store exploded" {
		t.Fatalf("expected cause in detail, got %q", body.Detail)
	}
}
