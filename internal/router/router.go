// Package router builds the echo instance: global middlewares in order,
// system routes and the authenticated API group.
package router

import (
	"github.com/YeZawHlaing/eduverse/internal/handler"
	"github.com/YeZawHlaing/eduverse/internal/middleware"
	"github.com/YeZawHlaing/eduverse/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter wires every middleware and route. Rate limiting runs after the
// request logger so rejected requests are still logged and counted.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Metrics.Instrument(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, s, h)

	api := router.Group("/api/auth", middlewares.Auth.RequireAuth)
	h.Pathway.Register(api)
	h.Admin.Register(api)

	return router
}
