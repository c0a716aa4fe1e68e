package admin

import (
	"crypto/subtle"
	"net/http"

	"go.uber.org/zap"

	"radar/pkg/requestcontext"
)

// RequireAdminToken guards administrative read paths (e.g. reading deleted
// participants for audit) with a static operator token.
func RequireAdminToken(expectedToken string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("X-Admin-Token")
			if expectedToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(expectedToken)) != 1 {
				logger.Warn("admin token mismatch",
					zap.String("request_id", requestcontext.RequestID(r.Context())),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"admin token required"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
