package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"radar/pkg/requestcontext"
)

// JWTValidator validates bearer tokens.
type JWTValidator interface {
	ValidateToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims are the claims the middleware needs from a validated token.
type JWTClaims struct {
	Subject string
	Role    requestcontext.Role
}

func writeJSONError(w http.ResponseWriter, status int, errCode, errDesc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(fmt.Appendf(nil, `{"error":"%s","error_description":"%s"}`, errCode, errDesc))
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's subject and role in the request context.
func RequireAuth(validator JWTValidator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				logger.Warn("unauthorized access - missing token",
					zap.String("request_id", requestcontext.RequestID(ctx)),
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid Authorization header")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.Warn("unauthorized access - invalid token",
					zap.Error(err),
					zap.String("request_id", requestcontext.RequestID(ctx)),
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				return
			}

			ctx = requestcontext.WithSubject(ctx, claims.Subject, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireOrganizer must run after RequireAuth.
func RequireOrganizer(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if !requestcontext.IsOrganizer(ctx) {
				logger.Warn("forbidden - organizer capability required",
					zap.String("subject", requestcontext.Subject(ctx)),
					zap.String("request_id", requestcontext.RequestID(ctx)),
				)
				writeJSONError(w, http.StatusForbidden, "forbidden", "Organizer capability required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireParticipantAccess lets a participant reach only their own resources;
// organizers reach any. The participant ID is read from the named URL param.
func RequireParticipantAccess(param string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if requestcontext.IsOrganizer(ctx) || requestcontext.Subject(ctx) == chi.URLParam(r, param) {
				next.ServeHTTP(w, r)
				return
			}
			logger.Warn("forbidden - participant mismatch",
				zap.String("subject", requestcontext.Subject(ctx)),
				zap.String("request_id", requestcontext.RequestID(ctx)),
			)
			writeJSONError(w, http.StatusForbidden, "forbidden", "Access to this participant is not allowed")
		})
	}
}
