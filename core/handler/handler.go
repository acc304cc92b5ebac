package handler

import "net/http"

// Response is a deferred response renderer. It writes status, headers,
// and body; rendering errors bubble up to the surrounding pipeline.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc is a type-safe request handler with custom context support.
type HandlerFunc[C Context] func(ctx C) Response

// Middleware wraps a handler to add cross-cutting behavior. A middleware
// may short-circuit by returning its own Response without calling next,
// or post-process the Response returned by next before handing it upward.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]

// ErrorHandler converts errors raised during request processing
// into a client-facing response.
type ErrorHandler[C Context] func(ctx C, err error)
