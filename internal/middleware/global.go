package middleware

import (
	"net/http"

	"github.com/fairflip/coinflip/internal/errs"
	"github.com/fairflip/coinflip/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// GlobalMiddlewares groups the middleware applied to every route plus the
// global error handler. The struct form gives middleware access to shared
// app dependencies via *server.Server.
type GlobalMiddlewares struct {
	server *server.Server
}

// NewGlobalMiddlewares constructs the global middleware bundle.
func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{server: s}
}

// CORS returns Echo's CORS middleware configured from server config.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSOrigins,
	})
}

// Recover returns Echo's panic recovery middleware. Panics become errors
// that flow into the global error handler as 500s instead of killing the
// process.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Secure returns Echo's secure headers middleware.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// RequestLogger returns Echo's request logger middleware with a custom
// LogValuesFunc that writes one zerolog record per completed request.
//
// The record carries client IP, method, decoded request path, final status
// code, status text, latency, and the request ID. It is emitted after the
// handler (or error handler) has produced the response, and a logging
// failure can never affect the response.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogError:    true,
		LogLatency:  true,
		LogMethod:   true,
		LogURIPath:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			// When a handler returns an error, Echo has not written the
			// final status at the moment the logger runs; the error handler
			// decides it. Derive the status from the error so the record
			// never claims 200 for a failed request.
			// https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
			if v.Error != nil {
				var httpErr *errs.HTTPError
				var echoErr *echo.HTTPError

				if errors.As(v.Error, &httpErr) {
					statusCode = httpErr.Status
				} else if errors.As(v.Error, &echoErr) {
					statusCode = echoErr.Code
				} else {
					statusCode = http.StatusInternalServerError
				}
			}

			logger := GetLogger(c)

			// 5xx is a server fault, 4xx a client fault.
			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			if requestID := GetRequestID(c); requestID != "" {
				e = e.Str("request_id", requestID)
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("status_text", http.StatusText(statusCode)).
				Str("method", v.Method).
				Str("path", v.URIPath).
				Str("ip", v.RemoteIP).
				Msg("request")

			return nil
		},
	})
}

// ErrorHandler is the final error funnel for the entire HTTP server.
//
// Every error ends up here regardless of where it was raised: validation
// failures, handler errors, Echo's own routing errors (404/405), and
// recovered panics. It translates whatever it receives into the stable
// error envelope, logs the original error, and writes the response exactly
// once.
func (global *GlobalMiddlewares) ErrorHandler(err error, c echo.Context) {
	// Keep the original error for logging; the client may get a sanitized
	// version, logs keep the real one.
	originalErr := err

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		var echoErr *echo.HTTPError
		switch {
		case errors.As(err, &echoErr) && echoErr.Code == http.StatusNotFound:
			// Unmatched route.
			httpErr = errs.NewNotFoundError("route not found")

		case errors.As(err, &echoErr) && echoErr.Code < http.StatusInternalServerError:
			// Other Echo client errors (e.g. 405). Normalize the message,
			// which echo stores as interface{}.
			message := http.StatusText(echoErr.Code)
			if msg, ok := echoErr.Message.(string); ok {
				message = msg
			}
			httpErr = &errs.HTTPError{
				Name:    errs.NameFromStatus(echoErr.Code),
				Status:  echoErr.Code,
				Message: message,
			}

		default:
			// Unanticipated failure: generic 500, no internal detail leaks.
			httpErr = errs.NewInternalServerError()
		}
	}

	logger := GetLogger(c)
	logger.Error().
		Err(originalErr).
		Int("status", httpErr.Status).
		Str("error_name", httpErr.Name).
		Msg(httpErr.Message)

	// Only write if the handler has not already committed a response.
	if !c.Response().Committed {
		if writeErr := c.JSON(httpErr.Status, errs.Response{Error: httpErr}); writeErr != nil {
			logger.Error().Err(writeErr).Msg("failed to write error response")
		}
	}
}
