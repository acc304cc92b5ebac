package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/appkit/core/handler"
	"github.com/dmitrymomot/appkit/core/session"
)

// sessionContextKey is used as a key for storing the session in request context.
type sessionContextKey struct{}

// SessionsConfig configures the session middleware.
type SessionsConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Store persists sessions (required)
	Store session.Store
	// CookieName carries the session ID (default: "session_id")
	CookieName string
	// TTL is the session cookie lifetime (default: 24h)
	TTL time.Duration
	// Logger records store failures (default: slog.Default())
	Logger *slog.Logger
}

// SessionsWithConfig creates a middleware that loads the client's
// session from the store (creating one when absent), exposes it through
// GetSession, and saves it back after the response renders. Store
// failures degrade to a fresh session rather than failing the request.
func SessionsWithConfig[C handler.Context](cfg SessionsConfig) handler.Middleware[C] {
	if cfg.Store == nil {
		panic("middleware: sessions requires a store")
	}
	if cfg.CookieName == "" {
		cfg.CookieName = "session_id"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			sess, isNew := loadSession(ctx, cfg)
			ctx.SetValue(sessionContextKey{}, &sess)

			resp := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				if isNew {
					http.SetCookie(w, &http.Cookie{
						Name:     cfg.CookieName,
						Value:    sess.ID,
						Path:     "/",
						MaxAge:   int(cfg.TTL.Seconds()),
						HttpOnly: true,
						SameSite: http.SameSiteLaxMode,
					})
				}
				if err := cfg.Store.Save(r.Context(), sess); err != nil {
					cfg.Logger.Error("failed to save session",
						slog.String("session_id", sess.ID),
						slog.String("error", err.Error()),
					)
				}
				return resp(w, r)
			}
		}
	}
}

func loadSession[C handler.Context](ctx C, cfg SessionsConfig) (session.Session, bool) {
	cookie, err := ctx.Request().Cookie(cfg.CookieName)
	if err != nil || cookie.Value == "" {
		return session.New(), true
	}

	sess, found, err := cfg.Store.Load(ctx, cookie.Value)
	if err != nil {
		cfg.Logger.Error("failed to load session",
			slog.String("session_id", cookie.Value),
			slog.String("error", err.Error()),
		)
	}
	if !found || err != nil {
		return session.New(), true
	}
	return sess, false
}

// GetSession retrieves the request's session. The second result is false
// when no session middleware ran.
func GetSession(ctx handler.Context) (*session.Session, bool) {
	s, ok := ctx.Value(sessionContextKey{}).(*session.Session)
	return s, ok
}
