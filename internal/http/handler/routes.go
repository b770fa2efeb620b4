package handler

import (
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "helloweb/docs"
	"helloweb/internal/http/middleware"
	"helloweb/internal/service"
)

// Options controls the optional routes registered by RegisterRoutes.
type Options struct {
	// Metrics, when set, exposes a Prometheus scrape endpoint at /metrics.
	Metrics prometheus.Gatherer
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// /home is only registered when the service can render it.
func RegisterRoutes(app *fiber.App, svc service.GreetingService, opts Options) {
	app.Get("/", Index(svc)).Name("index")
	app.Get("/user/:name", User(svc)).Name("user")
	if svc.HomeEnabled() {
		app.Get("/home", Home(svc)).Name("home")
	}

	app.Get("/healthz", LivenessProbe()).Name("healthz")

	if opts.Metrics != nil {
		app.Get(middleware.MetricsPath, adaptor.HTTPHandler(
			promhttp.HandlerFor(opts.Metrics, promhttp.HandlerOpts{}),
		)).Name("metrics")
	}

	app.Get("/swagger/*", SwaggerUI()).Name("swagger")
}

// Index godoc
// @Summary Hello World page echoing the caller's User-Agent
// @Produce html
// @Success 200 {string} string
// @Router / [get]
func Index(svc service.GreetingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ua := strings.ToValidUTF8(utils.CopyString(c.Get(fiber.HeaderUserAgent)), string(utf8.RuneError))
		body, err := svc.Index(c.UserContext(), ua)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return sendHTML(c, body)
	}
}

// User godoc
// @Summary Greeting page for name
// @Produce html
// @Param name path string true "name to greet"
// @Success 200 {string} string
// @Router /user/{name} [get]
func User(svc service.GreetingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Path rules only: "+" stays a plus sign.
		name, err := url.PathUnescape(utils.CopyString(c.Params("name")))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_NAME", "invalid name encoding")
		}
		name = strings.ToValidUTF8(name, string(utf8.RuneError))
		body, err := svc.User(c.UserContext(), name)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return sendHTML(c, body)
	}
}

// Home godoc
// @Summary Static home page rendered from a template
// @Produce html
// @Success 200 {string} string
// @Failure 404 {object} errorPayload
// @Router /home [get]
func Home(svc service.GreetingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := svc.Home(c.UserContext())
		if err != nil {
			if errors.Is(err, service.ErrHomeUnavailable) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return sendHTML(c, body)
	}
}

// LivenessProbe is a simple liveness check; the app has no dependencies to ping.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// SwaggerUI serves the generated API docs. The document leaves host empty so
// the UI targets whichever host served it.
func SwaggerUI() fiber.Handler {
	return swagger.HandlerDefault
}

func sendHTML(c *fiber.Ctx, body string) error {
	c.Type("html", "utf-8")
	return c.Status(fiber.StatusOK).SendString(body)
}
