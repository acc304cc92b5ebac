package middleware

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/appkit/core/handler"
	"github.com/dmitrymomot/appkit/core/response"
)

// FileConfig configures the static-file fallback middleware.
type FileConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Root is the directory served from (default: "./public")
	Root string
}

// File creates the static-file fallback middleware with default
// configuration.
func File[C handler.Context]() handler.Middleware[C] {
	return FileWithConfig[C](FileConfig{})
}

// FileWithConfig creates a middleware that catches not-found failures
// from deeper in the chain and, for GET and HEAD requests, tries to
// serve a matching file from the root directory instead. Anything else
// propagates unchanged.
func FileWithConfig[C handler.Context](cfg FileConfig) handler.Middleware[C] {
	if cfg.Root == "" {
		cfg.Root = "./public"
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			resp := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				wt := track(w)
				err := resp(wt, r)
				if err == nil || wt.written {
					return err
				}
				if !isNotFound(err) || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
					return err
				}

				path, ok := safeJoin(cfg.Root, r.URL.Path)
				if !ok {
					return err
				}
				info, statErr := os.Stat(path)
				if statErr != nil || info.IsDir() {
					return err
				}

				http.ServeFile(wt, r, path)
				return nil
			}
		}
	}
}

func isNotFound(err error) bool {
	var httpErr response.HTTPError
	return errors.As(err, &httpErr) && httpErr.Status == http.StatusNotFound
}

// safeJoin resolves a request path inside root, rejecting traversal
// outside it.
func safeJoin(root, reqPath string) (string, bool) {
	clean := filepath.Clean("/" + reqPath)
	full := filepath.Join(root, clean)

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", false
	}
	absFull, err := filepath.Abs(full)
	if err != nil {
		return "", false
	}
	if absFull != absRoot && !strings.HasPrefix(absFull, absRoot+string(filepath.Separator)) {
		return "", false
	}
	return full, true
}
