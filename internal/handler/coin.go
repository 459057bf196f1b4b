package handler

import (
	"net/http"

	"github.com/fairflip/coinflip/internal/errs"
	"github.com/fairflip/coinflip/internal/middleware"
	"github.com/fairflip/coinflip/internal/rng"
	"github.com/fairflip/coinflip/internal/server"
	"github.com/labstack/echo/v4"
)

// CoinHandler serves the randomness endpoints.
type CoinHandler struct {
	Handler
}

// NewCoinHandler constructs a CoinHandler with access to shared app
// dependencies, notably the randomness generator.
func NewCoinHandler(s *server.Server) *CoinHandler {
	return &CoinHandler{Handler: NewHandler(s)}
}

// FlipResponse is the body of the single-flip endpoint.
type FlipResponse struct {
	Flip rng.Outcome `json:"coin-flip"`
}

// FlipsResponse is the body of the multi-flip endpoint. Flips preserves
// draw order and its length equals the validated flip count.
type FlipsResponse struct {
	Flips []rng.Outcome `json:"coin-flips"`
}

// FlipOne handles GET /rng/coin: one uniform draw, no parameters.
func (h *CoinHandler) FlipOne(c echo.Context) error {
	outcome := h.server.Flipper.Flip()

	middleware.GetLogger(c).Debug().
		Str("outcome", string(outcome)).
		Msg("coin flipped")

	return c.JSON(http.StatusOK, FlipResponse{Flip: outcome})
}

// FlipMany handles GET /rng/coin/:flips.
//
// It runs after the flip-count validation stage and reads the validated
// count from context. A missing count means the route was wired without
// the validation middleware; that is an internal fault, not client input.
func (h *CoinHandler) FlipMany(c echo.Context) error {
	n, ok := middleware.GetFlipCount(c)
	if !ok {
		return errs.NewInternalServerError()
	}

	seq := h.server.Flipper.FlipMany(n)

	middleware.GetLogger(c).Debug().
		Int("flips", n).
		Msg("coins flipped")

	return c.JSON(http.StatusOK, FlipsResponse{Flips: seq})
}
