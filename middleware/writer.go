package middleware

import "net/http"

// writeTracker records whether anything was written to the underlying
// response writer, so error-mapping middleware never double-writes.
type writeTracker struct {
	http.ResponseWriter
	written bool
}

func track(w http.ResponseWriter) *writeTracker {
	if wt, ok := w.(*writeTracker); ok {
		return wt
	}
	return &writeTracker{ResponseWriter: w}
}

func (w *writeTracker) WriteHeader(status int) {
	w.written = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *writeTracker) Write(b []byte) (int, error) {
	w.written = true
	return w.ResponseWriter.Write(b)
}

// Unwrap exposes the underlying writer to http.ResponseController, so
// flushing and deadline control keep working through the wrapper.
func (w *writeTracker) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
