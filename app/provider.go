package app

// Provider extends the container after assembly. AfterInit runs exactly
// once per provider, in registration order, after configuration, crypto
// capabilities, service registrations, and the middleware pipeline are
// all in place. A provider may append middleware or override container
// services; it must not assume any request has been served.
type Provider interface {
	AfterInit(app *App) error
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(app *App) error

func (f ProviderFunc) AfterInit(app *App) error {
	return f(app)
}
