package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/YeZawHlaing/eduverse/internal/config"
	"github.com/YeZawHlaing/eduverse/internal/middleware"
	"github.com/YeZawHlaing/eduverse/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{Primary: config.Primary{Env: "test"}},
		Logger: &logger,
	}
}

// newTestEcho mounts register on /api/auth behind the same error handling
// the router installs, without authentication.
func newTestEcho(s *server.Server, register func(g *echo.Group)) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(s).GlobalErrorHandler
	e.Use(middleware.RequestID())
	e.Use(middleware.NewContextEnhancer(s).EnhanceContext())

	register(e.Group("/api/auth"))
	return e
}

type envelope struct {
	Status     string          `json:"status"`
	HTTPStatus int             `json:"httpStatus"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Error      *string         `json:"error"`
	Code       string          `json:"code"`
}

func do(t *testing.T, e *echo.Echo, method, path, body string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}
