package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shelterworks/shelter-api/internal/api/metrics"
)

// Limiter abstracts the rate-limit counter (Redis).
type Limiter interface {
	// Allow records a hit for the key and reports whether it stays within
	// the window's budget.
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit rejects clients that exceed the per-IP request budget with 429.
// Counter errors fail open: availability beats strictness for this API.
func RateLimit(limiter Limiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("ip", c.RealIP()).Msg("rate limit check failed, allowing request")
				return next(c)
			}
			if !ok {
				metrics.RateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests, please try again later")
			}
			return next(c)
		}
	}
}
