package handler

import (
	"context"
	"net/http"
	"time"
)

// Context defines the contract for request contexts flowing through the
// pipeline. Use *Ctx for the default implementation.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	SetValue(key, val any)
}

// Ctx is the default Context implementation that delegates cancellation
// and values to the request's context.
type Ctx struct {
	w http.ResponseWriter
	r *http.Request
}

// NewCtx wraps a response writer and request in a *Ctx.
func NewCtx(w http.ResponseWriter, r *http.Request) *Ctx {
	return &Ctx{w: w, r: r}
}

func (c *Ctx) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

func (c *Ctx) Done() <-chan struct{} {
	return c.r.Context().Done()
}

func (c *Ctx) Err() error {
	return c.r.Context().Err()
}

func (c *Ctx) Value(key any) any {
	return c.r.Context().Value(key)
}

// SetValue stores a value in the request's context. It is retrieved
// through the Value method.
func (c *Ctx) SetValue(key, val any) {
	ctx := context.WithValue(c.r.Context(), key, val)
	c.r = c.r.WithContext(ctx)
}

// Request returns the HTTP request associated with this context.
func (c *Ctx) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the response writer associated with this context.
func (c *Ctx) ResponseWriter() http.ResponseWriter {
	return c.w
}
