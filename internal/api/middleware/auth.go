package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// AdminAuth guards the admin mutations with a shared token carried in the
// X-Admin-Token header. An empty token disables the check entirely, which
// reproduces the upstream behavior of enforcing the admin boundary only in
// the browser. Counter increments stay public either way: they are fired
// by regular visitors.
func AdminAuth(next http.Handler, token string, logger *logrus.Logger) http.Handler {
	if token == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requiresAdmin(r.Method, r.URL.Path) {
			got := r.Header.Get("X-Admin-Token")
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				logger.WithFields(logrus.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				}).Warn("Rejected request with missing or invalid admin token")
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func requiresAdmin(method, path string) bool {
	switch method {
	case http.MethodPost:
		if path == "/api/movies" || path == "/api/banner" || path == "/api/stats" {
			return true
		}
		return strings.HasPrefix(path, "/api/upload")
	case http.MethodDelete:
		return strings.HasPrefix(path, "/api/files/")
	}
	return false
}
