// Package app is the application container: it loads configuration,
// selects the crypto capabilities, registers the lazily-constructed
// subsystems, assembles the middleware pipeline around the fallback
// router responder, runs provider hooks, and exposes the whole thing
// as a single http.Handler.
//
//	a, err := app.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	a.Routes().Handle(http.MethodGet, "/health", func(ctx *app.Context) handler.Response {
//		return response.JSON(map[string]string{"status": "ok"})
//	})
//
//	http.ListenAndServe(":8080", a)
//
// Construction order is fixed: configuration, logger posture, crypto
// registry, service container, middleware catalog and pipeline, then
// provider AfterInit hooks in registration order. The pipeline freezes
// when the first request is served; reconfiguration afterwards fails
// with ErrFrozen.
package app
