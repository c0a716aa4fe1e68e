// Package service applies per-class request budgets to client addresses and
// authenticated subjects.
package service

import (
	"context"
	"errors"
	"math"
	"net/netip"
	"time"

	"go.uber.org/zap"

	"radar/internal/ratelimit/models"
	dErrors "radar/pkg/domain-errors"
	"radar/pkg/requestcontext"
)

type BucketStore interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration, now time.Time) (*models.Result, error)
}

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// DefaultLimits are per-minute budgets for each class.
func DefaultLimits() map[models.EndpointClass]models.Limit {
	return map[models.EndpointClass]models.Limit{
		models.ClassRead:      {Requests: 120, Window: time.Minute},
		models.ClassWrite:     {Requests: 60, Window: time.Minute},
		models.ClassSensitive: {Requests: 10, Window: time.Minute},
	}
}

// deniedRetryAfter is returned when a class has no configured budget.
const deniedRetryAfter = 60

type Service struct {
	buckets BucketStore
	limits  map[models.EndpointClass]models.Limit
	logger  *zap.Logger
}

type Option func(*Service)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithLimits replaces the budget for the given classes.
func WithLimits(limits map[models.EndpointClass]models.Limit) Option {
	return func(s *Service) {
		for class, l := range limits {
			s.limits[class] = l
		}
	}
}

func New(buckets BucketStore, opts ...Option) (*Service, error) {
	if buckets == nil {
		return nil, errors.New("bucket store is required")
	}
	s := &Service{buckets: buckets, limits: DefaultLimits(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CheckIP consumes one request from the address budget of class.
func (s *Service) CheckIP(ctx context.Context, ip string, class models.EndpointClass) (*models.Result, error) {
	return s.check(ctx, models.KeyPrefixIP, ip, anonymizeIP(ip), class)
}

// CheckSubject consumes one request from a token subject's budget of class.
func (s *Service) CheckSubject(ctx context.Context, subject string, class models.EndpointClass) (*models.Result, error) {
	return s.check(ctx, models.KeyPrefixSubject, subject, subject, class)
}

func (s *Service) check(ctx context.Context, prefix models.KeyPrefix, identifier, logIdentifier string, class models.EndpointClass) (*models.Result, error) {
	now := requestcontext.Now(ctx)
	limit, ok := s.limits[class]
	if !ok || limit.Requests <= 0 || limit.Window <= 0 {
		// No budget configured means deny.
		s.logger.Warn("rate limit class not configured", zap.String("endpoint_class", string(class)))
		return &models.Result{Allowed: false, ResetAt: now, RetryAfter: deniedRetryAfter}, nil
	}

	result, err := s.buckets.Allow(ctx, models.Key(prefix, class, identifier), limit.Requests, limit.Window, now)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check rate limit")
	}
	if !result.Allowed {
		result.RetryAfter = retryAfter(now, result.ResetAt)
		s.logger.Info("rate limit exceeded",
			zap.String("limit_type", string(prefix)),
			zap.String("identifier", logIdentifier),
			zap.String("endpoint_class", string(class)),
			zap.Int("limit", limit.Requests),
		)
	}
	return result, nil
}

func retryAfter(now, resetAt time.Time) int {
	secs := int(math.Ceil(resetAt.Sub(now).Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}

// anonymizeIP keeps the /24 of IPv4 and the /48 of IPv6 for logs.
func anonymizeIP(ip string) string {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return "invalid"
	}
	bits := 48
	if addr.Is4() || addr.Is4In6() {
		addr = addr.Unmap()
		bits = 24
	}
	prefix, err := addr.Prefix(bits)
	if err != nil {
		return "invalid"
	}
	return prefix.String()
}
