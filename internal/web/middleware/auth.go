package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
)

// ConsoleKeyHeader carries the console's shared staff secret.
const ConsoleKeyHeader = "X-Console-Key"

// ConsoleAuth validates the shared console secret on every request.
// An empty configured secret disables the check (local development).
// This is a shared-admin-secret model; there is no per-user identity.
func ConsoleAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(ConsoleKeyHeader)
			if provided == "" {
				if cookie, err := r.Cookie("console_key"); err == nil {
					provided = cookie.Value
				}
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				slog.Warn("auth: rejected request",
					"path", r.URL.Path,
					"method", r.Method,
					"remote_addr", r.RemoteAddr,
				)
				http.Error(w, `{"error":"invalid console key","code":"AUTH_INVALID_KEY"}`, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
