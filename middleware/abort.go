package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/appkit/core/handler"
	"github.com/dmitrymomot/appkit/core/response"
)

// AbortConfig configures the abort-to-response middleware.
type AbortConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Logger records failures converted to responses (default: slog.Default())
	Logger *slog.Logger
}

// Abort creates the terminal error-to-response middleware with default
// configuration.
func Abort[C handler.Context]() handler.Middleware[C] {
	return AbortWithConfig[C](AbortConfig{})
}

// AbortWithConfig creates a middleware that converts any failure coming
// back up the chain into an HTTP-shaped response: a structured HTTPError
// renders with its own status and code, everything else renders as a
// generic 500. Clients never see a raw failure. If the response body has
// already started, the failure is only logged.
func AbortWithConfig[C handler.Context](cfg AbortConfig) handler.Middleware[C] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			resp := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				wt := track(w)
				err := resp(wt, r)
				if err == nil {
					return nil
				}

				if wt.written {
					cfg.Logger.Error("failure after response started",
						slog.String("error", err.Error()),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					)
					return nil
				}

				var httpErr response.HTTPError
				if !errors.As(err, &httpErr) {
					httpErr = response.ErrInternalServerError
					cfg.Logger.Error("unhandled request failure",
						slog.String("error", err.Error()),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					)
				}
				return response.JSONWithStatus(httpErr, httpErr.Status)(wt, r)
			}
		}
	}
}
