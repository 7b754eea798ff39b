package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shelterworks/shelter-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
// Details is only populated for validation failures; Detail only carries the
// underlying cause of unexpected errors in development.
type errorResponse struct {
	Error   string                  `json:"error"`
	Details []domain.FieldViolation `json:"details,omitempty"`
	Detail  string                  `json:"detail,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Renders validation failures with per-field diagnostics.
//   - Logs unexpected errors internally; the client sees a generic message,
//     plus the cause when running in development.
func NewHTTPErrorHandler(log zerolog.Logger, development bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, errorResponse{
				Error:   "validation failed",
				Details: ve.Violations,
			})
			return
		}

		code, msg, detail := resolveError(err, log, c, development)
		_ = c.JSON(code, errorResponse{Error: msg, Detail: detail})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, development bool) (int, string, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), ""
	}

	// Known domain errors map to deterministic HTTP codes. The auth errors stay
	// generic on purpose: the response never reveals which check failed.
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, "invalid animal id", ""
	case errors.Is(err, domain.ErrEmptyBatch):
		return http.StatusBadRequest, err.Error(), ""
	case errors.Is(err, domain.ErrAnimalNotFound):
		return http.StatusNotFound, "animal not found", ""
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid token", ""
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials", ""
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists", ""
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found", ""
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "role must be admin or user", ""
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	detail := ""
	if development {
		detail = err.Error()
	}
	return http.StatusInternalServerError, "internal server error", detail
}
