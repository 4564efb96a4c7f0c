package api

import (
	"context"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/zuperior/content-api/docs"
	"github.com/zuperior/content-api/internal/api/handler"
	"github.com/zuperior/content-api/internal/api/middleware"
	"github.com/zuperior/content-api/internal/core/ports"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Logger zerolog.Logger

	AuthService     ports.AuthService
	CategoryService ports.CategoryService
	ArticleService  ports.ArticleService
	AssetService    ports.AssetService
	QuizService     ports.QuizService

	// IdempotencyStore is optional; nil disables replay of POST creates.
	IdempotencyStore ports.IdempotencyStore
	IdempotencyTTL   time.Duration

	JWTSecret    string
	AuthRequired bool
	BodyLimit    string

	// ReadinessChecks are pinged by GET /health/ready.
	ReadinessChecks map[string]func(ctx context.Context) error

	// Registry receives the HTTP metrics and backs GET /metrics. Defaults
	// to the global Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echomiddleware.CORS())
	if deps.BodyLimit != "" {
		e.Use(echomiddleware.BodyLimit(deps.BodyLimit))
	}
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "content",
		Registerer: registerer,
	}))

	// --- Operational endpoints ---
	checks := make(map[string]handler.DependencyCheck, len(deps.ReadinessChecks))
	for name, check := range deps.ReadinessChecks {
		checks[name] = check
	}
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(checks).Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	// --- Write guards ---
	var write []echo.MiddlewareFunc
	if deps.AuthRequired {
		write = append(write, middleware.Auth(deps.JWTSecret))
	}
	create := append([]echo.MiddlewareFunc{}, write...)
	create = append(create, middleware.Idempotency(deps.IdempotencyStore, deps.IdempotencyTTL, deps.Logger))

	v1 := e.Group("/api/v1")

	authHandler := handler.NewAuthHandler(deps.AuthService, deps.Logger)
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)

	resources := []struct {
		path string
		h    crudHandler
	}{
		{"/category", handler.NewCategoryHandler(deps.CategoryService, deps.Logger)},
		{"/article", handler.NewArticleHandler(deps.ArticleService, deps.Logger)},
		{"/asset", handler.NewAssetHandler(deps.AssetService, deps.Logger)},
		{"/quiz", handler.NewQuizHandler(deps.QuizService, deps.Logger)},
	}
	for _, r := range resources {
		g := v1.Group(r.path)
		g.GET("", r.h.List)
		g.GET("/:id", r.h.Get)
		g.POST("", r.h.Create, create...)
		g.PUT("/:id", r.h.Update, write...)
		g.DELETE("/:id", r.h.Delete, write...)
	}

	return e
}

type crudHandler interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Error != nil || v.Status >= 500 {
				event = log.Error().Err(v.Error)
			}
			event.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
