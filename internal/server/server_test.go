package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"helloweb/internal/config"
	"helloweb/internal/http/middleware"
	"helloweb/internal/view"
)

func testConfig(engine string) *config.AppConfig {
	return &config.AppConfig{
		AppHost:        "127.0.0.1",
		Port:           "0",
		LogLevel:       "info",
		MetricsEnabled: true,
		View:           config.ViewConfig{Engine: engine},
	}
}

func newTestApp(t *testing.T, engine string) *fiber.App {
	t.Helper()
	app, err := New(testConfig(engine), Deps{Logger: zap.NewNop(), Registry: prometheus.NewRegistry()})
	require.NoError(t, err)
	return app
}

func get(t *testing.T, app *fiber.App, target string, header map[string]string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func TestNew_UnknownEngine(t *testing.T) {
	_, err := New(testConfig("mustache"), Deps{})
	assert.ErrorIs(t, err, view.ErrUnknownEngine)
}

func TestNew_DuplicateRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(testConfig(view.EngineInline), Deps{Registry: reg})
	require.NoError(t, err)

	_, err = New(testConfig(view.EngineInline), Deps{Registry: reg})
	assert.Error(t, err)
}

func TestGreetingRoutes(t *testing.T) {
	for _, engine := range []string{view.EngineInline, view.EngineTemplate} {
		t.Run(engine, func(t *testing.T) {
			app := newTestApp(t, engine)

			t.Run("index echoes user agent", func(t *testing.T) {
				resp, body := get(t, app, "/", map[string]string{"User-Agent": "TestAgent/1.0"})

				assert.Equal(t, http.StatusOK, resp.StatusCode)
				assert.Contains(t, body, "Hello World!")
				assert.Contains(t, body, "Your browser is TestAgent/1.0")
				assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
			})

			t.Run("user greets name", func(t *testing.T) {
				resp, body := get(t, app, "/user/Alice", nil)

				assert.Equal(t, http.StatusOK, resp.StatusCode)
				assert.Contains(t, body, "Hello, Alice!")
			})

			t.Run("user keeps plus signs", func(t *testing.T) {
				resp, body := get(t, app, "/user/C++", nil)

				assert.Equal(t, http.StatusOK, resp.StatusCode)
				assert.Equal(t, "<p>Hello, C&#43;&#43;!</p>", body)
			})

			t.Run("index escapes user agent", func(t *testing.T) {
				_, body := get(t, app, "/", map[string]string{"User-Agent": "A&B"})

				assert.Contains(t, body, "Your browser is A&amp;B")
			})

			t.Run("invalid utf-8 name is replaced", func(t *testing.T) {
				resp, body := get(t, app, "/user/%ff", nil)

				assert.Equal(t, http.StatusOK, resp.StatusCode)
				assert.True(t, utf8.ValidString(body))
				assert.Contains(t, body, "Hello, \uFFFD!")
			})

			t.Run("user escapes html", func(t *testing.T) {
				resp, body := get(t, app, "/user/%3Cscript%3E", nil)

				assert.Equal(t, http.StatusOK, resp.StatusCode)
				assert.Contains(t, body, "Hello, &lt;script&gt;!")
				assert.NotContains(t, body, "<script>")
			})

			t.Run("undefined path is not 2xx", func(t *testing.T) {
				resp, _ := get(t, app, "/nowhere", nil)

				assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			})
		})
	}
}

func TestHomeRoute(t *testing.T) {
	t.Run("template engine serves identical pages", func(t *testing.T) {
		app := newTestApp(t, view.EngineTemplate)

		resp1, first := get(t, app, "/home", nil)
		resp2, second := get(t, app, "/home", nil)

		assert.Equal(t, http.StatusOK, resp1.StatusCode)
		assert.Equal(t, http.StatusOK, resp2.StatusCode)
		assert.Equal(t, first, second)
		assert.Contains(t, first, "<h1>Home</h1>")
	})

	t.Run("inline engine has no home", func(t *testing.T) {
		app := newTestApp(t, view.EngineInline)

		resp, _ := get(t, app, "/home", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t, view.EngineInline)

	get(t, app, "/user/Alice", nil)
	resp, body := get(t, app, "/metrics", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `http_requests_total{method="GET",path="/user/:name",status="200"} 1`)
}

func TestMetricsDisabled(t *testing.T) {
	cfg := testConfig(view.EngineInline)
	cfg.MetricsEnabled = false
	app, err := New(cfg, Deps{Registry: prometheus.NewRegistry()})
	require.NoError(t, err)

	resp, _ := get(t, app, "/metrics", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRequestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app, err := New(testConfig(view.EngineTemplate), Deps{Logger: zap.New(core)})
	require.NoError(t, err)

	get(t, app, "/user/Alice", map[string]string{middleware.RequestIDHeader: "rid-1"})

	entries := logs.FilterMessage("http_request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "rid-1", entries[0].ContextMap()["request_id"])
	assert.Equal(t, "/user/Alice", entries[0].ContextMap()["path"])
}

func TestRoutes(t *testing.T) {
	app := newTestApp(t, view.EngineTemplate)

	var paths []string
	for _, r := range Routes(app) {
		assert.Equal(t, fiber.MethodGet, r.Method)
		paths = append(paths, r.Path)
	}

	assert.Equal(t, []string{"/", "/healthz", "/home", "/metrics", "/swagger/*", "/user/:name"}, paths)
}
