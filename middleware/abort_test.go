package middleware_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/appkit/core/handler"
	"github.com/dmitrymomot/appkit/core/response"
	"github.com/dmitrymomot/appkit/middleware"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func failing(err error) handler.HandlerFunc[*handler.Ctx] {
	return func(ctx *handler.Ctx) handler.Response {
		return response.Error(err)
	}
}

func runHandler(t *testing.T, h handler.HandlerFunc[*handler.Ctx], method, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(method, path, nil)
	require.NoError(t, h(handler.NewCtx(w, r))(w, r))
	return w
}

func TestAbortRendersStructuredError(t *testing.T) {
	t.Parallel()

	m := middleware.AbortWithConfig[*handler.Ctx](middleware.AbortConfig{Logger: discardLogger()})
	h := m(failing(response.ErrNotFound))

	w := runHandler(t, h, http.MethodDelete, "/missing")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "not_found", body["code"])
	assert.Equal(t, "Not Found", body["message"])
}

func TestAbortMapsUnknownFailureTo500(t *testing.T) {
	t.Parallel()

	m := middleware.AbortWithConfig[*handler.Ctx](middleware.AbortConfig{Logger: discardLogger()})
	h := m(failing(errors.New("database exploded")))

	w := runHandler(t, h, http.MethodGet, "/x")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "database exploded",
		"internal details never reach the client")
	assert.Contains(t, w.Body.String(), "internal_server_error")
}

func TestAbortPassesSuccessThrough(t *testing.T) {
	t.Parallel()

	m := middleware.AbortWithConfig[*handler.Ctx](middleware.AbortConfig{Logger: discardLogger()})
	h := m(func(ctx *handler.Ctx) handler.Response {
		return response.String("fine")
	})

	w := runHandler(t, h, http.MethodGet, "/x")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fine", w.Body.String())
}

func TestAbortDoesNotDoubleWrite(t *testing.T) {
	t.Parallel()

	m := middleware.AbortWithConfig[*handler.Ctx](middleware.AbortConfig{Logger: discardLogger()})
	h := m(func(ctx *handler.Ctx) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusAccepted)
			return errors.New("failed mid-stream")
		}
	})

	w := runHandler(t, h, http.MethodGet, "/x")

	assert.Equal(t, http.StatusAccepted, w.Code,
		"a started response is left alone, the failure is only logged")
}
