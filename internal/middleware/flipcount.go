package middleware

import (
	"github.com/fairflip/coinflip/internal/server"
	"github.com/fairflip/coinflip/internal/validation"
	"github.com/labstack/echo/v4"
)

// FlipCountKey is the context key holding the validated flip count.
const FlipCountKey = "flip_count"

// FlipCountMiddleware is the validation stage for the multi-flip route.
//
// It runs between route dispatch and the handler: the raw flips path
// segment is parsed and bounds-checked, and on failure the request
// short-circuits to the global error handler without the handler ever
// executing (so invalid requests never consume randomness).
type FlipCountMiddleware struct {
	server *server.Server
}

// NewFlipCountMiddleware constructs the flip-count validation stage.
func NewFlipCountMiddleware(s *server.Server) *FlipCountMiddleware {
	return &FlipCountMiddleware{server: s}
}

// Validate returns an Echo middleware that validates the named path
// parameter and stores the resulting count in context for the handler.
func (m *FlipCountMiddleware) Validate(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			n, err := validation.ParseFlipCount(c.Param(param))
			if err != nil {
				return err
			}

			c.Set(FlipCountKey, n)
			return next(c)
		}
	}
}

// GetFlipCount retrieves the validated flip count from Echo context.
// ok is false when the validation stage did not run for this request.
func GetFlipCount(c echo.Context) (n int, ok bool) {
	n, ok = c.Get(FlipCountKey).(int)
	return n, ok
}
