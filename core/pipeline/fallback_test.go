package pipeline_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/appkit/core/handler"
	"github.com/dmitrymomot/appkit/core/pipeline"
	"github.com/dmitrymomot/appkit/core/response"
)

func TestFallbackInvokesMatchedRoute(t *testing.T) {
	t.Parallel()

	routes := pipeline.NewRouteTable[*handler.Ctx]()
	routes.Handle(http.MethodGet, "/hello", func(ctx *handler.Ctx) handler.Response {
		return response.String("hi")
	})

	h := pipeline.Fallback[*handler.Ctx](routes)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/hello", nil)
	require.NoError(t, h(handler.NewCtx(w, r))(w, r))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hi", w.Body.String())
}

func TestFallbackMissDefaultMethodsFailNotFound(t *testing.T) {
	t.Parallel()

	routes := pipeline.NewRouteTable[*handler.Ctx]()
	h := pipeline.Fallback[*handler.Ctx](routes)

	for _, method := range []string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
	} {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(method, "/missing", nil)

		err := h(handler.NewCtx(w, r))(w, r)
		require.Error(t, err, method)
		assert.ErrorIs(t, err, response.ErrNotFound, method)
	}
}

func TestFallbackMissOptionsCourtesyResponse(t *testing.T) {
	t.Parallel()

	routes := pipeline.NewRouteTable[*handler.Ctx]()
	h := pipeline.Fallback[*handler.Ctx](routes)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodOptions, "/missing", nil)
	require.NoError(t, h(handler.NewCtx(w, r))(w, r))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OPTIONS", w.Header().Get("Allow"))
	assert.Empty(t, w.Body.String())
}

func TestFallbackMissOtherMethodsNotImplemented(t *testing.T) {
	t.Parallel()

	routes := pipeline.NewRouteTable[*handler.Ctx]()
	h := pipeline.Fallback[*handler.Ctx](routes)

	for _, method := range []string{http.MethodTrace, http.MethodConnect, "PROPFIND"} {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(method, "/missing", nil)

		require.NoError(t, h(handler.NewCtx(w, r))(w, r), method)
		assert.Equal(t, http.StatusNotImplemented, w.Code, method)
	}
}

func TestFallbackMatchedRouteFailurePropagates(t *testing.T) {
	t.Parallel()

	routes := pipeline.NewRouteTable[*handler.Ctx]()
	routes.Handle(http.MethodGet, "/broken", func(ctx *handler.Ctx) handler.Response {
		return response.Error(response.ErrForbidden)
	})

	h := pipeline.Fallback[*handler.Ctx](routes)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/broken", nil)

	err := h(handler.NewCtx(w, r))(w, r)
	assert.ErrorIs(t, err, response.ErrForbidden)
}
