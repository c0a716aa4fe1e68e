package middleware

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"radar/internal/ratelimit/middleware/mocks"
	"radar/internal/ratelimit/models"
	"radar/pkg/requestcontext"
	"radar/pkg/testutil"
)

type RateLimitMiddlewareSuite struct {
	suite.Suite
	limiter *mocks.MockLimiter
	next    http.Handler
	resetAt time.Time
}

func TestRateLimitMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(RateLimitMiddlewareSuite))
}

func (s *RateLimitMiddlewareSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.limiter = mocks.NewMockLimiter(ctrl)
	s.next = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	s.resetAt = time.Date(2026, 7, 1, 12, 1, 0, 0, time.UTC)
}

func (s *RateLimitMiddlewareSuite) request() *http.Request {
	req := testutil.NewRequest(s.T(), http.MethodGet, "/questionnaire")
	return req.WithContext(requestcontext.WithClientMetadata(req.Context(), "203.0.113.9", "curl/8"))
}

func (s *RateLimitMiddlewareSuite) TestAllowedRequestPassesWithHeaders() {
	s.limiter.EXPECT().CheckIP(gomock.Any(), "203.0.113.9", models.ClassRead).
		Return(&models.Result{Allowed: true, Limit: 120, Remaining: 119, ResetAt: s.resetAt}, nil)

	rr := testutil.DoRequest(New(s.limiter, zap.NewNop()).RateLimit(models.ClassRead)(s.next), s.request())

	s.Equal(http.StatusNoContent, rr.Code)
	s.Equal("120", rr.Header().Get("X-RateLimit-Limit"))
	s.Equal("119", rr.Header().Get("X-RateLimit-Remaining"))
}

func (s *RateLimitMiddlewareSuite) TestDeniedRequestGets429() {
	s.limiter.EXPECT().CheckIP(gomock.Any(), "203.0.113.9", models.ClassRead).
		Return(&models.Result{Allowed: false, Limit: 120, ResetAt: s.resetAt, RetryAfter: 42}, nil)

	rr := testutil.DoRequest(New(s.limiter, zap.NewNop()).RateLimit(models.ClassRead)(s.next), s.request())

	testutil.AssertStatusAndError(s.T(), rr, http.StatusTooManyRequests, "rate_limit_exceeded")
	s.Equal("42", rr.Header().Get("Retry-After"))
}

func (s *RateLimitMiddlewareSuite) TestLimiterErrorFailsOpen() {
	s.limiter.EXPECT().CheckIP(gomock.Any(), "203.0.113.9", models.ClassRead).Return(nil, errors.New("redis down"))

	rr := testutil.DoRequest(New(s.limiter, zap.NewNop()).RateLimit(models.ClassRead)(s.next), s.request())

	s.Equal(http.StatusNoContent, rr.Code)
}

func (s *RateLimitMiddlewareSuite) TestDisabledSkipsLimiter() {
	rr := testutil.DoRequest(New(s.limiter, zap.NewNop(), WithDisabled(true)).RateLimit(models.ClassRead)(s.next), s.request())
	s.Equal(http.StatusNoContent, rr.Code)
}

func (s *RateLimitMiddlewareSuite) TestAuthenticatedUsesSubject() {
	mw := New(s.limiter, zap.NewNop()).RateLimitAuthenticated(models.ClassSensitive)(s.next)

	s.Run("subject present", func() {
		s.limiter.EXPECT().CheckSubject(gomock.Any(), "org-1", models.ClassSensitive).
			Return(&models.Result{Allowed: true, Limit: 10, Remaining: 9, ResetAt: s.resetAt}, nil)
		req := testutil.AsOrganizer(s.request(), "org-1")
		rr := testutil.DoRequest(mw, req)
		s.Equal(http.StatusNoContent, rr.Code)
	})

	s.Run("anonymous falls back to address", func() {
		s.limiter.EXPECT().CheckIP(gomock.Any(), "203.0.113.9", models.ClassSensitive).
			Return(&models.Result{Allowed: true, Limit: 10, Remaining: 9, ResetAt: s.resetAt}, nil)
		rr := testutil.DoRequest(mw, s.request())
		s.Equal(http.StatusNoContent, rr.Code)
	})
}
