package logger

import (
	"log/slog"
	"time"
)

// Error returns an attribute for a single error, nil-safe.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}

// Component tags a record with the emitting component name.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event tags a record with a machine-readable event name.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Duration reports a duration in milliseconds.
func Duration(d time.Duration) slog.Attr {
	return slog.Float64("duration_ms", float64(d.Nanoseconds())/1e6)
}

// Elapsed reports the time elapsed since start in milliseconds.
func Elapsed(start time.Time) slog.Attr {
	return Duration(time.Since(start))
}
