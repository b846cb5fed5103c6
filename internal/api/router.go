package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/minesite/dispatch-form/docs"
	"github.com/minesite/dispatch-form/internal/api/handler"
	"github.com/minesite/dispatch-form/internal/api/middleware"
	"github.com/minesite/dispatch-form/internal/core/domain"
	"github.com/minesite/dispatch-form/internal/core/ports"
)

// Deps are the services and settings the router wires into handlers.
type Deps struct {
	Auth        ports.AuthService
	Drivers     ports.DriverService
	Submissions ports.SubmissionService
	Form        ports.FormService
	Guard       ports.SubmitGuard
	Store       ports.Pinger
	StoreName   string

	JWTSecret string
	TokenTTL  time.Duration
	Swagger   bool
	Log       zerolog.Logger

	// Registry receives the HTTP request metrics. Nil means the default
	// Prometheus registry, which also holds the metrics package collectors.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	promCfg := echoprometheus.MiddlewareConfig{Subsystem: "dispatch"}
	promHandler := echoprometheus.NewHandler()
	if d.Registry != nil {
		promCfg.Registerer = d.Registry
		promHandler = echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Registry})
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(promCfg))

	healthHandler := handler.NewHealthHandler(d.Store, d.StoreName)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", promHandler)
	if d.Swagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	authHandler := handler.NewAuthHandler(d.Auth, middleware.NewTokenIssuer(d.JWTSecret, d.TokenTTL))
	userHandler := handler.NewUserHandler(d.Auth)
	driverHandler := handler.NewDriverHandler(d.Drivers)
	submissionHandler := handler.NewSubmissionHandler(d.Submissions)
	formHandler := handler.NewFormHandler(d.Form, d.Guard)

	requireAuth := middleware.Auth(d.JWTSecret, d.Auth)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	v1 := e.Group("/v1")
	v1.POST("/auth/login", authHandler.Login)

	authed := v1.Group("", requireAuth)
	authed.POST("/auth/logout", authHandler.Logout)
	authed.GET("/auth/me", authHandler.Me)
	authed.GET("/drivers", driverHandler.List)

	authed.GET("/form", formHandler.Get)
	authed.DELETE("/form", formHandler.Reset)
	authed.PATCH("/form/drivers/:id", formHandler.UpdateDriver)
	authed.PATCH("/form/escorts/:key", formHandler.UpdateEscort)
	authed.PATCH("/form/notes", formHandler.SetNotes)
	authed.POST("/form/submit", formHandler.Submit)

	admin := authed.Group("", adminOnly)
	admin.POST("/drivers", driverHandler.Add)
	admin.DELETE("/drivers/:name", driverHandler.Delete)
	admin.GET("/users", userHandler.List)
	admin.POST("/users", userHandler.Create)
	admin.DELETE("/users/:username", userHandler.Delete)
	admin.GET("/submissions", submissionHandler.List)
	admin.GET("/submissions/:id", submissionHandler.Get)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil || v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
