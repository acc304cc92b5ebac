// Package handler defines the request-handling contracts shared by the
// pipeline, middleware, and application container: a generic Context
// interface, HandlerFunc, deferred Response renderers, and Middleware.
//
// Handlers return a Response instead of writing directly, which lets
// middleware post-process the response before anything hits the wire:
//
//	func hello(ctx *handler.Ctx) handler.Response {
//		return func(w http.ResponseWriter, r *http.Request) error {
//			_, err := io.WriteString(w, "hello")
//			return err
//		}
//	}
package handler
