package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/hireup-faq/internal/infra/config"
)

func TestIPRateLimiterRefillsOverTime(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	limiter := newIPRateLimiter(config.RateLimitConfig{RequestsPerMinute: 60, Burst: 2}, func() time.Time { return now })

	require.True(t, limiter.allow("10.0.0.1"))
	require.True(t, limiter.allow("10.0.0.1"))
	require.False(t, limiter.allow("10.0.0.1"))
	require.True(t, limiter.allow("10.0.0.2"))

	now = now.Add(2 * time.Second)
	require.True(t, limiter.allow("10.0.0.1"))
	require.True(t, limiter.allow("10.0.0.1"))
	require.False(t, limiter.allow("10.0.0.1"))
}

func TestIPRateLimiterForgetsIdleClients(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	limiter := newIPRateLimiter(config.RateLimitConfig{RequestsPerMinute: 1, Burst: 1}, func() time.Time { return now })

	require.True(t, limiter.allow("10.0.0.1"))
	now = now.Add(10 * time.Minute)
	require.True(t, limiter.allow("10.0.0.2"))
	require.Len(t, limiter.buckets, 1)
}

func TestIPRateLimiterSweepsOncePerIdleInterval(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	now := start
	limiter := newIPRateLimiter(config.RateLimitConfig{RequestsPerMinute: 1, Burst: 1}, func() time.Time { return now })

	require.True(t, limiter.allow("10.0.0.1"))
	now = start.Add(4 * time.Minute)
	require.True(t, limiter.allow("10.0.0.2"))
	require.Len(t, limiter.buckets, 2)

	now = start.Add(5*time.Minute + time.Second)
	require.True(t, limiter.allow("10.0.0.3"))
	require.Len(t, limiter.buckets, 2)
	require.NotContains(t, limiter.buckets, "10.0.0.1")

	// 10.0.0.2 is idle by now but the last sweep was under five minutes ago.
	now = start.Add(9*time.Minute + 30*time.Second)
	require.True(t, limiter.allow("10.0.0.4"))
	require.Len(t, limiter.buckets, 3)
	require.Contains(t, limiter.buckets, "10.0.0.2")

	now = start.Add(10*time.Minute + 2*time.Second)
	require.True(t, limiter.allow("10.0.0.5"))
	require.Len(t, limiter.buckets, 2)
	require.Contains(t, limiter.buckets, "10.0.0.4")
	require.Contains(t, limiter.buckets, "10.0.0.5")
}

func TestWithRetryReplaysFailedGet(t *testing.T) {
	calls := 0
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Header().Set("X-Attempt", "first")
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("X-Attempt", "second")
		_, _ = w.Write([]byte("ok"))
	})
	handler := withRetry(inner, config.RetryConfig{Enabled: true, MaxAttempts: 3, BaseBackoff: time.Millisecond}, newTestLogger())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/faq", nil))

	require.Equal(t, 2, calls)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "second", rec.Header().Get("X-Attempt"))
	require.Equal(t, "ok", rec.Body.String())
}

func TestWithRetryReplaysAreNotRateLimited(t *testing.T) {
	calls := 0
	engine := gin.New()
	engine.Use(
		errorHandlingMiddleware(newTestLogger(), "/faq"),
		rateLimitMiddleware(config.RateLimitConfig{Enabled: true, RequestsPerMinute: 1, Burst: 1}, newTestLogger()),
	)
	engine.GET("/faq", func(c *gin.Context) {
		calls++
		if calls == 1 {
			c.Status(http.StatusServiceUnavailable)
			return
		}
		c.String(http.StatusOK, "ok")
	})
	handler := withRetry(engine, config.RetryConfig{Enabled: true, MaxAttempts: 3, BaseBackoff: time.Millisecond}, newTestLogger())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/faq", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 2, calls)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/faq", nil))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, 2, calls)
}

func TestWithRetryNeverReplaysPost(t *testing.T) {
	calls := 0
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})
	handler := withRetry(inner, config.RetryConfig{Enabled: true, MaxAttempts: 3, BaseBackoff: time.Millisecond}, newTestLogger())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/faq/toggle-all", nil))

	require.Equal(t, 1, calls)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWithRetryGivesUpAfterMaxAttempts(t *testing.T) {
	calls := 0
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	})
	handler := withRetry(inner, config.RetryConfig{Enabled: true, MaxAttempts: 2, BaseBackoff: time.Millisecond}, newTestLogger())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/faq", nil))

	require.Equal(t, 2, calls)
	require.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestWithRetryStopsOnCancelledRequest(t *testing.T) {
	calls := 0
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	handler := withRetry(inner, config.RetryConfig{Enabled: true, MaxAttempts: 5, BaseBackoff: time.Hour}, newTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/faq", nil).WithContext(ctx))

	require.Equal(t, 1, calls)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestResolveOrigin(t *testing.T) {
	require.Equal(t, "*", resolveOrigin("https://a.example", nil))
	require.Equal(t, "https://B.example", resolveOrigin("https://B.example", []string{"https://a.example", "https://b.example"}))
	require.Equal(t, "https://a.example", resolveOrigin("https://c.example", []string{"https://a.example"}))
}
