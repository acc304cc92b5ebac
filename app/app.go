package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"

	gocache "github.com/patrickmn/go-cache"

	"github.com/dmitrymomot/appkit/core/config"
	"github.com/dmitrymomot/appkit/core/container"
	"github.com/dmitrymomot/appkit/core/crypto"
	"github.com/dmitrymomot/appkit/core/email"
	"github.com/dmitrymomot/appkit/core/handler"
	"github.com/dmitrymomot/appkit/core/logger"
	"github.com/dmitrymomot/appkit/core/pipeline"
	"github.com/dmitrymomot/appkit/core/session"
	redisdb "github.com/dmitrymomot/appkit/integration/database/redis"
	"github.com/dmitrymomot/appkit/integration/email/postmark"
	"github.com/dmitrymomot/appkit/middleware"
)

// Context is the request context type the container's pipeline runs on.
type Context = handler.Ctx

// ErrFrozen reports an attempt to reconfigure the pipeline after the
// first request was served.
var ErrFrozen = errors.New("app: pipeline is frozen once requests are served")

// App is the application container: it owns the service container, the
// crypto capability registry, the middleware pipeline, and the fallback
// router responder, and exposes the assembled responder as an
// http.Handler. One App serves many concurrent requests; everything it
// assembled is read-only by then.
type App struct {
	config    Config
	logger    *slog.Logger
	logFloor  *slog.LevelVar
	logOutput io.Writer
	services  *container.Container
	routes    *pipeline.RouteTable[*Context]
	router    pipeline.Router[*Context]
	pipeline  *pipeline.Pipeline[*Context]
	providers []Provider

	buildOnce sync.Once
	respond   handler.HandlerFunc[*Context]
	frozen    atomic.Bool
}

// Option configures the App during construction.
type Option func(*App) error

// New assembles an application container from the environment:
// configuration, logger posture, crypto capabilities, service
// registrations, middleware pipeline, and finally the provider hooks,
// in that order.
func New(opts ...Option) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, opts...)
}

// NewFromConfig assembles an application container from an explicit
// configuration, skipping the environment lookup.
func NewFromConfig(cfg Config, opts ...Option) (*App, error) {
	a := &App{
		config:   cfg,
		services: container.New(),
		routes:   pipeline.NewRouteTable[*Context](),
	}
	a.router = a.routes

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	if a.logger == nil {
		var lopts []logger.Option
		if cfg.IsProduction() {
			// Start at warning level so assembly problems reach the log;
			// the error-only floor is engaged once assembly is done.
			a.logFloor = new(slog.LevelVar)
			a.logFloor.Set(slog.LevelWarn)
			lopts = append(lopts,
				logger.WithProduction(cfg.AppName), logger.WithLeveler(a.logFloor))
		} else {
			lopts = append(lopts, logger.WithDevelopment(cfg.AppName))
		}
		if a.logOutput != nil {
			lopts = append(lopts, logger.WithOutput(a.logOutput))
		}
		a.logger = logger.New(lopts...)
	}

	a.registerCrypto()
	a.registerServices()

	if a.pipeline == nil {
		catalog, err := a.defaultCatalog()
		if err != nil {
			return nil, err
		}
		p, warnings := pipeline.Build(catalog, cfg.MiddlewareOrder)
		for _, w := range warnings {
			a.logger.Warn(w, logger.Component("pipeline"))
		}
		a.pipeline = p
	}

	// Assembly warnings are out; in production the floor now rises to
	// error and never comes back down.
	if a.logFloor != nil {
		a.logFloor.Set(slog.LevelError)
	}

	for _, p := range a.providers {
		if err := p.AfterInit(a); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// registerCrypto resolves the configured hash and cipher methods,
// validates their key material, and binds the constructed subsystems.
// Validation problems are warnings, never construction failures: the
// container boots and the operator fixes the material.
func (a *App) registerCrypto() {
	hashMethod, warnings := crypto.SelectHash(a.config.Hash.Method)
	for _, w := range warnings {
		a.logger.Warn(w, logger.Component("crypto"))
	}
	hashKey := []byte(a.config.Hash.Key)
	container.RegisterValue(a.services, crypto.NewHasher(hashMethod, hashKey))

	cipherMethod, warnings := crypto.SelectCipher(a.config.Cipher.Method)
	key, iv := []byte(a.config.Cipher.Key), []byte(a.config.Cipher.IV)
	if len(key) == 0 {
		a.logger.Warn("no cipher key set, using zero key", logger.Component("crypto"))
	}
	warnings = append(warnings, cipherMethod.Validate(key, iv)...)
	for _, w := range warnings {
		a.logger.Warn(w, logger.Component("crypto"))
	}
	container.RegisterValue(a.services, crypto.NewCipher(cipherMethod, key, iv))
}

// registerServices binds the lazily-constructed subsystems: the
// in-process cache, the session store, and the outbound mail sender.
func (a *App) registerServices() {
	cfg := a.config

	container.Register(a.services, func() (*gocache.Cache, error) {
		return gocache.New(cfg.Cache.TTL, cfg.Cache.Cleanup), nil
	})

	container.Register(a.services, func() (session.Store, error) {
		if cfg.Session.RedisURL == "" {
			return session.NewMemoryStore(cfg.Session.TTL), nil
		}
		var rcfg redisdb.Config
		if err := config.Load(&rcfg); err != nil {
			return nil, err
		}
		rcfg.ConnectionURL = cfg.Session.RedisURL
		client, err := redisdb.Connect(context.Background(), rcfg)
		if err != nil {
			return nil, err
		}
		return session.NewRedisStore(client, cfg.Session.TTL), nil
	})

	container.Register(a.services, func() (email.Sender, error) {
		var mcfg postmark.Config
		if err := config.Load(&mcfg); err != nil {
			return nil, err
		}
		if mcfg.ServerToken == "" && !cfg.IsProduction() {
			a.logger.Info("no mail credentials set, writing mail to disk",
				logger.Component("email"))
			return email.NewDevSender(cfg.MailDir), nil
		}
		return postmark.New(mcfg)
	})
}

// defaultCatalog builds the fixed middleware catalog the pipeline is
// assembled from. Resolving the session store here is the store's first
// resolve; a Redis-backed store that cannot connect fails assembly.
func (a *App) defaultCatalog() (map[string]handler.Middleware[*Context], error) {
	store, err := container.Resolve[session.Store](a.services)
	if err != nil {
		return nil, err
	}

	return map[string]handler.Middleware[*Context]{
		"file": middleware.FileWithConfig[*Context](middleware.FileConfig{
			Root: a.config.PublicDir,
		}),
		"validation": middleware.Validation[*Context](),
		"date":       middleware.Date[*Context](),
		"type-safe":  middleware.TypeSafeErrors[*Context](),
		"abort": middleware.AbortWithConfig[*Context](middleware.AbortConfig{
			Logger: a.logger,
		}),
		"sessions": middleware.SessionsWithConfig[*Context](middleware.SessionsConfig{
			Store:      store,
			CookieName: a.config.Session.CookieName,
			TTL:        a.config.Session.TTL,
			Logger:     a.logger,
		}),
	}, nil
}

// Config returns the loaded configuration.
func (a *App) Config() Config {
	return a.config
}

// Logger returns the container's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Services returns the service container.
func (a *App) Services() *container.Container {
	return a.services
}

// Routes returns the default route table. It is only usable when no
// external router was supplied with WithRouter.
func (a *App) Routes() *pipeline.RouteTable[*Context] {
	return a.routes
}

// Use appends middleware to the pipeline. It fails with ErrFrozen once
// the first request has been served.
func (a *App) Use(name string, m handler.Middleware[*Context]) error {
	if a.frozen.Load() {
		return ErrFrozen
	}
	a.pipeline.Append(name, m)
	return nil
}

// Middleware returns the pipeline entry names in chain order.
func (a *App) Middleware() []string {
	return a.pipeline.Names()
}

// Respond is the single entry point per inbound request: the middleware
// chain wrapping the fallback router responder. Safe for concurrent use.
func (a *App) Respond(ctx *Context) handler.Response {
	a.buildOnce.Do(func() {
		a.frozen.Store(true)
		a.respond = a.pipeline.Then(pipeline.Fallback(a.router))
	})
	return a.respond(ctx)
}

// ServeHTTP adapts Respond to the standard library transport contract.
// A failure escaping every middleware is mapped to a bare 500 here; the
// client never sees the raw error.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := handler.NewCtx(w, r)

	resp := a.Respond(ctx)
	if resp == nil {
		a.logger.Error("nil response from pipeline",
			slog.String("method", r.Method), slog.String("path", r.URL.Path))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if err := resp(w, r); err != nil {
		a.logger.Error("unhandled request failure",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Error(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// WithLogger overrides the container's logger.
func WithLogger(log *slog.Logger) Option {
	return func(a *App) error {
		if log == nil {
			return errors.New("logger cannot be nil")
		}
		a.logger = log
		return nil
	}
}

// WithLogOutput redirects the output of the logger the container builds
// for itself. Ignored when WithLogger supplies a ready logger.
func WithLogOutput(w io.Writer) Option {
	return func(a *App) error {
		if w == nil {
			return errors.New("log output cannot be nil")
		}
		a.logOutput = w
		return nil
	}
}

// WithRouter plugs in an external route-lookup collaborator in place of
// the default route table.
func WithRouter(r pipeline.Router[*Context]) Option {
	return func(a *App) error {
		if r == nil {
			return errors.New("router cannot be nil")
		}
		a.router = r
		return nil
	}
}

// WithProvider registers providers; their AfterInit hooks run in
// registration order once assembly completes.
func WithProvider(providers ...Provider) Option {
	return func(a *App) error {
		for _, p := range providers {
			if p == nil {
				return errors.New("provider cannot be nil")
			}
		}
		a.providers = append(a.providers, providers...)
		return nil
	}
}
