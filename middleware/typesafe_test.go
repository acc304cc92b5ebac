package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/appkit/core/handler"
	"github.com/dmitrymomot/appkit/core/response"
	"github.com/dmitrymomot/appkit/middleware"
)

func TestTypeSafeErrorsRendersHTTPError(t *testing.T) {
	t.Parallel()

	m := middleware.TypeSafeErrors[*handler.Ctx]()
	h := m(failing(response.ErrForbidden.WithMessage("no access to workspace")))

	w := runHandler(t, h, http.MethodGet, "/workspace")

	assert.Equal(t, http.StatusForbidden, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "forbidden", body["code"])
	assert.Equal(t, "no access to workspace", body["message"])
}

func TestTypeSafeErrorsPassesUntypedFailuresUpward(t *testing.T) {
	t.Parallel()

	cause := errors.New("untyped failure")

	m := middleware.TypeSafeErrors[*handler.Ctx]()
	h := m(failing(cause))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/x", nil)
	err := h(handler.NewCtx(w, r))(w, r)

	assert.ErrorIs(t, err, cause, "untyped failures are someone else's job")
}
