package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/shelterworks/shelter-api/internal/api/handler"
)

// Deps carries everything the router needs; the composition root owns
// construction of stores, services and handlers.
type Deps struct {
	Logger      zerolog.Logger
	Development bool

	BodyLimit   string
	CORSOrigins []string

	Auth      echo.MiddlewareFunc
	RateLimit echo.MiddlewareFunc // nil when Redis is not configured

	AuthHandler   *handler.AuthHandler
	AnimalHandler *handler.AnimalHandler
	Health        *handler.HealthHandler
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger, d.Development)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.BodyLimit(d.BodyLimit))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: d.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("shelter"))
	if d.RateLimit != nil {
		e.Use(d.RateLimit)
	}

	// --- Auth routes (no token required) ---
	e.POST("/auth/register", d.AuthHandler.Register)
	e.POST("/auth/login", d.AuthHandler.Login)

	// --- Animal routes (bearer token on every one) ---
	animals := e.Group("/animals", d.Auth)
	animals.GET("", d.AnimalHandler.List)
	animals.POST("", d.AnimalHandler.Create)
	animals.GET("/:id", d.AnimalHandler.Get)
	animals.PUT("/:id", d.AnimalHandler.Update)
	animals.DELETE("/:id", d.AnimalHandler.Delete)

	// --- Operational endpoints ---
	e.GET("/health", d.Health.Liveness)
	e.GET("/health/ready", d.Health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler()) // Prometheus scrape target
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
