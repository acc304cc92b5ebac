package middleware

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/appkit/core/handler"
)

// DateConfig configures the date-stamping middleware.
type DateConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Now overrides the clock, for tests (default: time.Now)
	Now func() time.Time
}

// Date creates the date-stamping middleware with default configuration.
func Date[C handler.Context]() handler.Middleware[C] {
	return DateWithConfig[C](DateConfig{})
}

// DateWithConfig creates a middleware stamping every response with an
// RFC 7231 Date header.
func DateWithConfig[C handler.Context](cfg DateConfig) handler.Middleware[C] {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			resp := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				w.Header().Set("Date", cfg.Now().UTC().Format(http.TimeFormat))
				return resp(w, r)
			}
		}
	}
}
