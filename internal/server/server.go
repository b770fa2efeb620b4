package server

import (
	"fmt"
	"sort"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"helloweb/internal/config"
	handlers "helloweb/internal/http/handler"
	"helloweb/internal/http/middleware"
	"helloweb/internal/service"
	"helloweb/internal/view"
)

const appName = "helloweb"

// Deps are the process-level collaborators injected into the app.
type Deps struct {
	Logger *zap.Logger
	// Registry receives the HTTP metrics and backs /metrics. Nil disables metrics.
	Registry *prometheus.Registry
	// Tracing installs the otelfiber middleware.
	Tracing bool
}

// Route is one registered method/path pair.
type Route struct {
	Method string
	Path   string
	Name   string
}

// New assembles the Fiber app: view engine, service, middleware chain and routes.
func New(cfg *config.AppConfig, deps Deps) (*fiber.App, error) {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	renderer, err := view.New(cfg.View.Engine)
	if err != nil {
		return nil, err
	}
	svc, err := service.NewGreetingService(renderer)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:               appName,
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: !cfg.Debug,
		EnablePrintRoutes:     cfg.Debug,
	})

	// RequestID first so every later middleware and the error handler can see it.
	app.Use(middleware.RequestID())
	if deps.Tracing {
		app.Use(otelfiber.Middleware())
	}
	app.Use(middleware.Logger(deps.Logger))

	var opts handlers.Options
	if cfg.MetricsEnabled && deps.Registry != nil {
		prom, err := middleware.NewPrometheusMiddleware(deps.Registry)
		if err != nil {
			return nil, fmt.Errorf("register http metrics: %w", err)
		}
		app.Use(prom.Handler())
		opts.Metrics = deps.Registry
	}

	// Innermost, so a panic surfaces as a 500 to the logger and metrics.
	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.Debug}))

	handlers.RegisterRoutes(app, svc, opts)

	deps.Logger.Debug("app_assembled",
		zap.String("view_engine", renderer.Name()),
		zap.Bool("home_enabled", svc.HomeEnabled()),
		zap.Bool("metrics_enabled", opts.Metrics != nil),
		zap.Bool("tracing_enabled", deps.Tracing),
	)

	return app, nil
}

// Routes lists the handler routes of app sorted by path then method.
// Middleware registered with Use and HEAD twins of GET routes are omitted.
func Routes(app *fiber.App) []Route {
	var out []Route
	for _, r := range app.GetRoutes(true) {
		if r.Method == fiber.MethodHead {
			continue
		}
		out = append(out, Route{Method: r.Method, Path: r.Path, Name: r.Name})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	return out
}
