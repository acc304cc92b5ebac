package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/appkit/core/handler"
	"github.com/dmitrymomot/appkit/core/response"
	"github.com/dmitrymomot/appkit/middleware"
)

func TestDateStampsResponse(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)
	m := middleware.DateWithConfig[*handler.Ctx](middleware.DateConfig{
		Now: func() time.Time { return fixed },
	})
	h := m(func(ctx *handler.Ctx) handler.Response {
		return response.String("ok")
	})

	w := runHandler(t, h, http.MethodGet, "/x")

	assert.Equal(t, "Sat, 14 Mar 2026 09:26:53 GMT", w.Header().Get("Date"))
	assert.Equal(t, "ok", w.Body.String())
}

func TestDateSkip(t *testing.T) {
	t.Parallel()

	m := middleware.DateWithConfig[*handler.Ctx](middleware.DateConfig{
		Skip: func(ctx handler.Context) bool { return true },
	})
	h := m(func(ctx *handler.Ctx) handler.Response {
		return response.String("ok")
	})

	w := runHandler(t, h, http.MethodGet, "/x")

	assert.Empty(t, w.Header().Get("Date"))
}
