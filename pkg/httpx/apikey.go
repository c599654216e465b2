package httpx

import (
	"crypto/subtle"
	"net/http"

	"github.com/vendorgate/authd/pkg/slogx"
)

// APIKeyHeader is the header carrying the admin API key.
const APIKeyHeader = "X-Api-Key"

// RequireAPIKey gates admin endpoints behind a shared API key compared in
// constant time. When no key is configured the gate stands open and every
// request is logged with a warning, matching development usage.
func RequireAPIKey(key string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			if key == "" {
				log.Warn("no admin API key configured, admin API is unprotected")
				next.ServeHTTP(w, r)
				return
			}

			supplied := r.Header.Get(APIKeyHeader)
			if supplied == "" ||
				subtle.ConstantTimeCompare([]byte(supplied), []byte(key)) != 1 {
				log.Warn("admin request rejected", "reason", "invalid or missing API key")
				WriteJSON(w, http.StatusUnauthorized, map[string]string{
					"error":   "Unauthorized",
					"message": "Invalid or missing API key",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
