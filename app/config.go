package app

import "time"

// Config is the container's configuration surface, loaded from the
// environment once at startup.
type Config struct {
	Hash    HashConfig
	Cipher  CipherConfig
	Session SessionConfig
	Cache   CacheConfig

	AppName string `env:"APP_NAME" envDefault:"appkit"`
	Env     string `env:"APP_ENV" envDefault:"development"`

	// MiddlewareOrder selects and orders the server middleware by
	// catalog name. Unset or blank means all catalog entries in
	// unspecified order.
	MiddlewareOrder []string `env:"MIDDLEWARE_SERVER"`

	// PublicDir is the root of the static-file fallback middleware.
	PublicDir string `env:"PUBLIC_DIR" envDefault:"./public"`

	// MailDir receives outbound mail in development when no provider
	// credentials are configured.
	MailDir string `env:"MAIL_DIR" envDefault:"./var/mail"`
}

// HashConfig selects the hash capability.
type HashConfig struct {
	Method string `env:"HASH_METHOD"`
	Key    string `env:"HASH_KEY"`
}

// CipherConfig selects the cipher capability.
type CipherConfig struct {
	Method string `env:"CIPHER_METHOD"`
	Key    string `env:"CIPHER_KEY"`
	IV     string `env:"CIPHER_IV"`
}

// SessionConfig configures the sessions middleware and its store.
type SessionConfig struct {
	CookieName string        `env:"SESSION_COOKIE" envDefault:"session_id"`
	TTL        time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// RedisURL switches the session store from process memory to Redis.
	RedisURL string `env:"SESSION_REDIS_URL"`
}

// CacheConfig configures the in-process cache registered with the
// service container.
type CacheConfig struct {
	TTL     time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	Cleanup time.Duration `env:"CACHE_CLEANUP" envDefault:"10m"`
}

// EnvProduction is the environment name that engages the production
// logging posture.
const EnvProduction = "production"

// IsProduction reports whether the container runs in production posture.
func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}
