package response

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/appkit/core/handler"
)

// JSON renders v as an application/json body with status 200.
func JSON(v any) handler.Response {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus renders v as an application/json body with the given
// status code.
func JSONWithStatus(v any, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		return json.NewEncoder(w).Encode(v)
	}
}

// String renders a plain-text body with status 200.
func String(s string) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, err := w.Write([]byte(s))
		return err
	}
}

// Status writes a bare status code with no body.
func Status(status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(status)
		return nil
	}
}

// Error returns a response that propagates err without writing anything,
// deferring to error-mapping middleware further up the chain.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}

// WithHeader decorates a response with an extra header, set before the
// wrapped response renders.
func WithHeader(resp handler.Response, key, value string) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set(key, value)
		return resp(w, r)
	}
}
