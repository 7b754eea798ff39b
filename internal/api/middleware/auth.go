package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shelterworks/shelter-api/internal/core/token"
)

// Context keys set by the Auth middleware for downstream handlers.
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextRole     = "role"
)

// Auth is the per-request gate on protected routes: it extracts the bearer
// token, verifies it through the codec, and attaches the identity to the
// echo context. Rejection short-circuits before any handler or store access.
// The guard is stateless; every request is evaluated independently.
func Auth(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := codec.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ContextUserID, claims.UserID())
			c.Set(ContextUsername, claims.Username)
			c.Set(ContextRole, claims.Role)

			return next(c)
		}
	}
}
