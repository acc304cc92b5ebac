package middleware

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/appkit/core/handler"
	"github.com/dmitrymomot/appkit/core/response"
)

// TypeSafeErrorsConfig configures the typed-error mapping middleware.
type TypeSafeErrorsConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
}

// TypeSafeErrors creates the typed-error mapping middleware with default
// configuration.
func TypeSafeErrors[C handler.Context]() handler.Middleware[C] {
	return TypeSafeErrorsWithConfig[C](TypeSafeErrorsConfig{})
}

// TypeSafeErrorsWithConfig creates a middleware that renders structured
// response.HTTPError failures with their declared status and code.
// Failures of any other type pass through untouched, for an outer abort
// middleware to handle.
func TypeSafeErrorsWithConfig[C handler.Context](cfg TypeSafeErrorsConfig) handler.Middleware[C] {
	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			resp := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				wt := track(w)
				err := resp(wt, r)
				if err == nil || wt.written {
					return err
				}

				var httpErr response.HTTPError
				if errors.As(err, &httpErr) {
					return response.JSONWithStatus(httpErr, httpErr.Status)(wt, r)
				}
				return err
			}
		}
	}
}
