package middleware

import (
	"context"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"radar/internal/ratelimit/models"
	"radar/pkg/platform/httputil"
	"radar/pkg/requestcontext"
)

type Limiter interface {
	CheckIP(ctx context.Context, ip string, class models.EndpointClass) (*models.Result, error)
	CheckSubject(ctx context.Context, subject string, class models.EndpointClass) (*models.Result, error)
}

//go:generate mockgen -source=middleware.go -destination=mocks/mocks.go -package=mocks

type Middleware struct {
	limiter  Limiter
	logger   *zap.Logger
	disabled bool
}

type Option func(*Middleware)

// WithDisabled turns every check into a pass-through.
func WithDisabled(disabled bool) Option {
	return func(m *Middleware) { m.disabled = disabled }
}

func New(limiter Limiter, logger *zap.Logger, opts ...Option) *Middleware {
	m := &Middleware{limiter: limiter, logger: logger}
	for _, opt := range opts {
		opt(m)
	}
	if m.disabled {
		logger.Info("rate limiting disabled")
	}
	return m
}

// RateLimit budgets requests per client address. Limiter errors fail open.
func (m *Middleware) RateLimit(class models.EndpointClass) func(http.Handler) http.Handler {
	return m.limit(class, func(ctx context.Context) (*models.Result, error) {
		return m.limiter.CheckIP(ctx, requestcontext.ClientIP(ctx), class)
	})
}

// RateLimitAuthenticated budgets requests per token subject, falling back to
// the client address. Mount it after authentication.
func (m *Middleware) RateLimitAuthenticated(class models.EndpointClass) func(http.Handler) http.Handler {
	return m.limit(class, func(ctx context.Context) (*models.Result, error) {
		if subject := requestcontext.Subject(ctx); subject != "" {
			return m.limiter.CheckSubject(ctx, subject, class)
		}
		return m.limiter.CheckIP(ctx, requestcontext.ClientIP(ctx), class)
	})
}

func (m *Middleware) limit(class models.EndpointClass, check func(context.Context) (*models.Result, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m.disabled {
				next.ServeHTTP(w, r)
				return
			}
			ctx := r.Context()
			result, err := check(ctx)
			if err != nil {
				m.logger.Error("failed to check rate limit",
					zap.String("request_id", requestcontext.RequestID(ctx)),
					zap.String("endpoint_class", string(class)),
					zap.Error(err),
				)
				next.ServeHTTP(w, r)
				return
			}

			addRateLimitHeaders(w, result)
			if !result.Allowed {
				writeRateLimitExceeded(w, result)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func addRateLimitHeaders(w http.ResponseWriter, result *models.Result) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}

func writeRateLimitExceeded(w http.ResponseWriter, result *models.Result) {
	w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
	httputil.WriteJSON(w, http.StatusTooManyRequests, httputil.ErrorResponse{
		Error:       "rate_limit_exceeded",
		Description: "too many requests, try again later",
	})
}
