package middleware

import (
	"net/http"

	"github.com/YeZawHlaing/eduverse/internal/errs"
	"github.com/YeZawHlaing/eduverse/internal/response"
	"github.com/YeZawHlaing/eduverse/internal/server"
	"github.com/YeZawHlaing/eduverse/internal/sqlerr"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  global.server.Config.Server.CORSAllowedOrigins,
		ExposeHeaders: []string{RequestIDHeader},
	})
}

// RequestLogger writes one access log line per request. When the handler
// returned an error the status comes from the error, since the global error
// handler has not written the response yet.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status
			if v.Error != nil {
				statusCode = httpErrorFor(v.Error).Status
			}

			logger := GetLogger(c)

			// Failures get one error line from GlobalErrorHandler; the access
			// line stays below error level.
			e := logger.Info()
			if statusCode >= 400 {
				e = logger.Warn()
			}

			if userID := GetUserID(c); userID != "" {
				e = e.Str("user_id", userID)
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// httpErrorFor classifies any error a handler can return. Errors that are
// neither HTTP nor echo errors go through sqlerr, so driver errors get their
// kind and anything unrecognised becomes a generic 500.
func httpErrorFor(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if echoErr.Code == http.StatusNotFound {
			return errs.NewNotFoundError("Route not found", nil).WithCause(err)
		}

		message, ok := echoErr.Message.(string)
		if !ok {
			message = http.StatusText(echoErr.Code)
		}
		return errs.NewHTTPError(echoErr.Code, "", message).WithCause(err)
	}

	return errs.FromError(sqlerr.HandleError(err))
}

// GlobalErrorHandler renders every error that escapes a handler as an error
// envelope. Server faults are logged at error level with the original cause;
// client errors only at debug.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	httpErr := httpErrorFor(err)

	logger := GetLogger(c)
	var event *zerolog.Event
	if httpErr.Status >= http.StatusInternalServerError {
		event = logger.Error().Stack()
	} else {
		event = logger.Debug()
	}
	event = event.Err(err)
	if cause := httpErr.Unwrap(); cause != nil {
		event = event.AnErr("cause", cause)
	}
	event.
		Int("status", httpErr.Status).
		Str("error_code", httpErr.Code).
		Msg(httpErr.Message)

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(httpErr.Status)
	} else {
		err = c.JSON(httpErr.Status, response.FromHTTPError(httpErr))
	}
	if err != nil {
		logger.Error().Err(err).Msg("failed to write error response")
	}
}
