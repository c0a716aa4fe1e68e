// Package httptransport assembles the public HTTP surface: shared middleware,
// authentication groups and the per-module handlers.
package httptransport

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	assessmentHandler "radar/internal/assessment/handler"
	consentHandler "radar/internal/consent/handler"
	datarightsHandler "radar/internal/datarights/handler"
	flagsHandler "radar/internal/flags/handler"
	radarHandler "radar/internal/radar/handler"
	rateLimit "radar/internal/ratelimit/middleware"
	rateLimitModels "radar/internal/ratelimit/models"
	"radar/pkg/platform/httputil"
	adminmw "radar/pkg/platform/middleware/admin"
	authmw "radar/pkg/platform/middleware/auth"
	"radar/pkg/platform/middleware/metadata"
	"radar/pkg/platform/middleware/request"
	"radar/pkg/platform/middleware/requesttime"
)

// Handlers groups the module handlers mounted on the router.
type Handlers struct {
	Assessment *assessmentHandler.Handler
	Consent    *consentHandler.Handler
	Flags      *flagsHandler.Handler
	Radar      *radarHandler.Handler
	DataRights *datarightsHandler.Handler
}

// Options configures the cross-cutting parts of the router.
type Options struct {
	Validator authmw.JWTValidator
	// AdminToken enables /admin routes when non-empty.
	AdminToken string
	// Metrics serves /metrics when set.
	Metrics http.Handler
	// Health reports dependency health for /health. Nil means always healthy.
	Health func(ctx context.Context) error
	// RateLimit budgets requests per class when set.
	RateLimit *rateLimit.Middleware
}

const healthTimeout = 2 * time.Second

// NewRouter mounts every route. Participant routes require a bearer token
// whose subject matches {id}, or the organizer role.
func NewRouter(h Handlers, opts Options, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(request.Recovery(logger))
	r.Use(request.Logger(logger))
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)

	r.Get("/health", healthHandler(opts.Health, logger))
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics)
	}

	r.Group(func(r chi.Router) {
		if opts.RateLimit != nil {
			r.Use(opts.RateLimit.RateLimit(rateLimitModels.ClassRead))
		}
		h.Assessment.RegisterPublic(r)
		h.Radar.RegisterPublic(r)
	})

	r.Group(func(r chi.Router) {
		r.Use(authmw.RequireAuth(opts.Validator, logger))

		r.Group(func(r chi.Router) {
			r.Use(authmw.RequireOrganizer(logger))
			useLimit(r, opts.RateLimit, rateLimitModels.ClassWrite)
			h.Assessment.RegisterOrganizer(r)
			h.Flags.Register(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(authmw.RequireParticipantAccess("id", logger))
			useLimit(r, opts.RateLimit, rateLimitModels.ClassWrite)
			h.Assessment.Register(r)
			h.Consent.Register(r)
			h.Radar.Register(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(authmw.RequireParticipantAccess("id", logger))
			useLimit(r, opts.RateLimit, rateLimitModels.ClassSensitive)
			h.DataRights.Register(r)
		})
	})

	if opts.AdminToken != "" {
		r.Group(func(r chi.Router) {
			r.Use(adminmw.RequireAdminToken(opts.AdminToken, logger))
			h.Assessment.RegisterAdmin(r)
		})
	}
	return r
}

func useLimit(r chi.Router, mw *rateLimit.Middleware, class rateLimitModels.EndpointClass) {
	if mw != nil {
		r.Use(mw.RateLimitAuthenticated(class))
	}
}

func healthHandler(check func(ctx context.Context) error, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			defer cancel()
			if err := check(ctx); err != nil {
				logger.Warn("health check failed", zap.Error(err))
				httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
