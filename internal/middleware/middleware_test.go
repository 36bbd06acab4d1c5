package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/YeZawHlaing/eduverse/internal/config"
	"github.com/YeZawHlaing/eduverse/internal/errs"
	"github.com/YeZawHlaing/eduverse/internal/response"
	"github.com/YeZawHlaing/eduverse/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary:   config.Primary{Env: "test"},
			RateLimit: &config.RateLimitConfig{Enabled: false},
		},
		Logger: &logger,
	}
}

func newTestEcho(s *server.Server) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler
	e.Use(RequestID())
	e.Use(NewContextEnhancer(s).EnhanceContext())
	return e
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func serve(e *echo.Echo, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = "192.0.2.10:5000"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGlobalErrorHandler(t *testing.T) {
	s := newTestServer()
	e := newTestEcho(s)

	e.GET("/not-found", func(c echo.Context) error {
		return errs.NewNotFoundError("Pathway not found with ID: 1", nil)
	})
	e.GET("/duplicate", func(c echo.Context) error {
		return errs.DuplicateKey("Pathway with name 'Algebra I' already exists")
	})
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("dial tcp 10.0.0.5:5432: connection refused")
	})

	t.Run("http error", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/not-found")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		body := decodeEnvelope(t, rec)
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, float64(http.StatusNotFound), body["httpStatus"])
		assert.Equal(t, "Pathway not found with ID: 1", body["message"])
		assert.Nil(t, body["data"])
	})

	t.Run("classified domain error", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/duplicate")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeEnvelope(t, rec)["message"], "already exists")
	})

	t.Run("unknown error hides detail", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/boom")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
		assert.Equal(t, "Internal Server Error", decodeEnvelope(t, rec)["message"])
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/nowhere")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Route not found", decodeEnvelope(t, rec)["message"])
	})
}

func TestRequestID(t *testing.T) {
	e := newTestEcho(newTestServer())
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	rec := serve(e, http.MethodGet, "/ping")
	generated := rec.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestGetLoggerFallback(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.NotNil(t, GetLogger(c))
}

func TestRateLimit(t *testing.T) {
	s := newTestServer()
	s.Config.RateLimit = &config.RateLimitConfig{
		Enabled:           true,
		RequestsPerSecond: 0.001,
		Burst:             1,
		ExpiresIn:         time.Minute,
	}

	e := newTestEcho(s)
	e.Use(NewRateLimitMiddleware(s).Limit())
	e.GET("/pathways", func(c echo.Context) error {
		return c.JSON(http.StatusOK, response.Success(http.StatusOK, "ok", nil))
	})

	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/pathways").Code)

	rec := serve(e, http.MethodGet, "/pathways")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "error", decodeEnvelope(t, rec)["status"])
}

func TestRateLimitDisabled(t *testing.T) {
	s := newTestServer()
	e := newTestEcho(s)
	e.Use(NewRateLimitMiddleware(s).Limit())
	e.GET("/pathways", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/pathways").Code)
	}
}

func TestMetricsInstrument(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetricsMiddleware(registry)

	e := newTestEcho(newTestServer())
	e.Use(m.Instrument())
	e.GET("/pathway/:pathwayId", func(c echo.Context) error {
		if c.Param("pathwayId") == "404" {
			return errs.NewNotFoundError("Pathway not found with ID: 404", nil)
		}
		return c.NoContent(http.StatusOK)
	})

	serve(e, http.MethodGet, "/pathway/1")
	serve(e, http.MethodGet, "/pathway/2")
	serve(e, http.MethodGet, "/pathway/404")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/pathway/:pathwayId", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/pathway/:pathwayId", "404")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.inFlight))
}

func TestServerFaultHasSingleErrorLine(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServer()
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	s.Logger = &logger

	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler
	e.Use(RequestID())
	e.Use(NewContextEnhancer(s).EnhanceContext())
	e.Use(NewGlobalMiddlewares(s).RequestLogger())
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("dial tcp 10.0.0.5:5432: connection refused")
	})
	e.GET("/missing", func(c echo.Context) error {
		return errs.NewNotFoundError("Pathway not found with ID: 9", nil)
	})

	levels := func() []string {
		var out []string
		for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
			var line map[string]any
			require.NoError(t, json.Unmarshal([]byte(raw), &line), raw)
			out = append(out, line["level"].(string))
		}
		buf.Reset()
		return out
	}

	rec := serve(e, http.MethodGet, "/boom")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	got := levels()
	assert.Equal(t, 1, countOf(got, "error"), got)
	assert.Equal(t, 1, countOf(got, "warn"), got)

	rec = serve(e, http.MethodGet, "/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	got = levels()
	assert.Zero(t, countOf(got, "error"), got)
}

func countOf(levels []string, level string) int {
	n := 0
	for _, l := range levels {
		if l == level {
			n++
		}
	}
	return n
}
