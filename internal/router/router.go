// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the route groups, mapping each
// path constant to its handler and wiring the validation stage in front of
// the multi-flip route.
package router

import (
	"github.com/fairflip/coinflip/internal/handler"
	"github.com/fairflip/coinflip/internal/middleware"
	"github.com/fairflip/coinflip/internal/server"
	"github.com/labstack/echo/v4"
)

// New builds the Echo instance: global middleware in pipeline order, the
// global error handler as the single error funnel, and all routes.
func New(s *server.Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	m := middleware.NewMiddlewares(s)
	h := handler.NewHandlers(s)

	// Every error raised anywhere in the pipeline lands here.
	e.HTTPErrorHandler = m.Global.ErrorHandler

	// Pipeline order: correlation ID first so the context logger can pick
	// it up, then the request logger wrapping everything downstream.
	e.Use(
		m.Global.CORS(),
		middleware.RequestID(),
		m.ContextEnhancer.EnhanceContext(),
		m.Global.RequestLogger(),
		m.Global.Recover(),
		m.Global.Secure(),
	)

	registerPageRoutes(e, h)
	registerCoinRoutes(e, h, m)
	registerSystemRoutes(e, h)

	return e
}

// registerPageRoutes maps the landing page paths.
func registerPageRoutes(e *echo.Echo, h *handler.Handlers) {
	e.GET(handler.PathRoot, h.Pages.Index)
	e.GET(handler.PathIndex, h.Pages.Index)
}

// registerCoinRoutes maps the randomness endpoints. The multi-flip route
// carries the flip-count validation stage so the handler only ever sees a
// validated count.
func registerCoinRoutes(e *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	e.GET(handler.PathCoin, h.Coin.FlipOne)
	e.GET(handler.PathCoinFlips, h.Coin.FlipMany, m.FlipCount.Validate(handler.ParamFlips))
}
