package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/appkit/core/handler"
	"github.com/dmitrymomot/appkit/core/response"
	"github.com/dmitrymomot/appkit/core/session"
	"github.com/dmitrymomot/appkit/middleware"
)

func sessionsMiddleware(store session.Store) handler.Middleware[*handler.Ctx] {
	return middleware.SessionsWithConfig[*handler.Ctx](middleware.SessionsConfig{
		Store:  store,
		TTL:    time.Hour,
		Logger: discardLogger(),
	})
}

func TestSessionsCreatesSessionAndSetsCookie(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore(time.Hour)

	var sessionID string
	h := sessionsMiddleware(store)(func(ctx *handler.Ctx) handler.Response {
		sess, ok := middleware.GetSession(ctx)
		require.True(t, ok, "session is available to handlers")
		sess.Values["user"] = "alice"
		sessionID = sess.ID
		return response.String("ok")
	})

	w := runHandler(t, h, http.MethodGet, "/x")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session_id", cookies[0].Name)
	assert.Equal(t, sessionID, cookies[0].Value)

	saved, found, err := store.Load(context.Background(), sessionID)
	require.NoError(t, err)
	require.True(t, found, "session persisted after response")
	assert.Equal(t, "alice", saved.Values["user"])
}

func TestSessionsLoadsExistingSession(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore(time.Hour)

	sess := session.New()
	sess.Values["user"] = "bob"
	require.NoError(t, store.Save(context.Background(), sess))

	h := sessionsMiddleware(store)(func(ctx *handler.Ctx) handler.Response {
		got, ok := middleware.GetSession(ctx)
		require.True(t, ok)
		assert.Equal(t, sess.ID, got.ID)
		assert.Equal(t, "bob", got.Values["user"])
		return response.String("ok")
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.AddCookie(&http.Cookie{Name: "session_id", Value: sess.ID})
	require.NoError(t, h(handler.NewCtx(w, r))(w, r))

	assert.Empty(t, w.Result().Cookies(), "no new cookie for an existing session")
}

func TestSessionsUnknownCookieStartsFresh(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore(time.Hour)

	h := sessionsMiddleware(store)(func(ctx *handler.Ctx) handler.Response {
		sess, ok := middleware.GetSession(ctx)
		require.True(t, ok)
		assert.NotEqual(t, "expired-id", sess.ID, "stale cookie gets a fresh session")
		return response.String("ok")
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.AddCookie(&http.Cookie{Name: "session_id", Value: "expired-id"})
	require.NoError(t, h(handler.NewCtx(w, r))(w, r))

	require.Len(t, w.Result().Cookies(), 1, "replacement cookie issued")
}

func TestGetSessionWithoutMiddleware(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/x", nil)

	_, ok := middleware.GetSession(handler.NewCtx(w, r))
	assert.False(t, ok)
}
