package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrymomot/appkit/core/handler"
	"github.com/dmitrymomot/appkit/core/response"
)

// ValidationError carries per-field validation failures raised by a
// handler. The validation middleware renders it as a 422 with the field
// map attached.
type ValidationError struct {
	Fields map[string]string
}

func (e ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ValidationConfig configures the validation middleware.
type ValidationConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
}

// Validation creates the validation-error mapping middleware with
// default configuration.
func Validation[C handler.Context]() handler.Middleware[C] {
	return ValidationWithConfig[C](ValidationConfig{})
}

// ValidationWithConfig creates a middleware that converts
// ValidationError failures into a 422 response carrying the offending
// fields. Other failures pass through.
func ValidationWithConfig[C handler.Context](cfg ValidationConfig) handler.Middleware[C] {
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

				var vErr ValidationError
				if errors.As(err, &vErr) {
					details := make(map[string]any, len(vErr.Fields))
					for field, msg := range vErr.Fields {
						details[field] = msg
					}
					httpErr := response.ErrUnprocessableEntity.WithDetails(details)
					return response.JSONWithStatus(httpErr, httpErr.Status)(wt, r)
				}
				return err
			}
		}
	}
}
