package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// Logger logs each request's method, path, remote address, and elapsed
// time at info level.
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"remote", r.RemoteAddr,
				"elapsed", time.Since(start),
			)
		})
	}
}
