package pipeline

import (
	"net/http"

	"github.com/dmitrymomot/appkit/core/handler"
	"github.com/dmitrymomot/appkit/core/response"
)

// Router is the route-lookup collaborator the fallback responder wraps.
// How routes are registered and matched is the router's own business;
// the responder only needs a per-request lookup.
type Router[C handler.Context] interface {
	Match(method, path string) (handler.HandlerFunc[C], bool)
}

// Fallback returns the terminal pipeline handler. A matched route is
// invoked as-is. On a miss the method decides the outcome:
//
//   - GET, POST, PUT, PATCH, DELETE fail with response.ErrNotFound,
//     left for the error-mapping middleware to render;
//   - OPTIONS gets a courtesy 200 with "Allow: OPTIONS" and no body;
//   - anything else gets a bare 501.
//
// Only the first branch is a failure; the other two are direct
// responses.
func Fallback[C handler.Context](router Router[C]) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		r := ctx.Request()
		if h, ok := router.Match(r.Method, r.URL.Path); ok {
			return h(ctx)
		}

		switch r.Method {
		case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			return response.Error(response.ErrNotFound)
		case http.MethodOptions:
			return response.WithHeader(response.Status(http.StatusOK), "Allow", http.MethodOptions)
		default:
			return response.Status(http.StatusNotImplemented)
		}
	}
}

// RouteTable is a minimal exact-match Router for assembly and tests.
// Production deployments plug in a real router through the same
// interface; nothing here attempts pattern matching.
type RouteTable[C handler.Context] struct {
	routes map[string]handler.HandlerFunc[C]
}

// NewRouteTable creates an empty route table.
func NewRouteTable[C handler.Context]() *RouteTable[C] {
	return &RouteTable[C]{routes: make(map[string]handler.HandlerFunc[C])}
}

// Handle registers a handler for an exact method and path.
func (t *RouteTable[C]) Handle(method, path string, h handler.HandlerFunc[C]) {
	t.routes[method+" "+path] = h
}

// Match implements Router.
func (t *RouteTable[C]) Match(method, path string) (handler.HandlerFunc[C], bool) {
	h, ok := t.routes[method+" "+path]
	return h, ok
}
