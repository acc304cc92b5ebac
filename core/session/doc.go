// Package session provides the session store behind the sessions
// middleware: an in-memory TTL store for development and a Redis store
// for deployments where instances share sessions.
package session
