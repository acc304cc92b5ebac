// Package logger provides structured logging built on the standard slog
// package: a factory with per-environment presets and a small set of
// attribute helpers.
//
//	log := logger.New(logger.WithDevelopment("myapp"))
//	log.Info("server starting", logger.Component("server"))
//
// The production preset is a one-way posture: only error and fatal
// records pass, and nothing re-lowers the floor at runtime.
package logger
