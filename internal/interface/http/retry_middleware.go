package http

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/yanqian/hireup-faq/internal/infra/config"
)

// withRetry replays idempotent requests that fail with a 5xx status, for
// instance while the Valkey view-state store reconnects. State-changing POSTs
// are never replayed since a toggle applied twice cancels itself out.
func withRetry(handler http.Handler, cfg config.RetryConfig, logger *slog.Logger) http.Handler {
	if !cfg.Enabled || cfg.MaxAttempts <= 1 {
		return handler
	}
	exclusions := make(map[string]struct{}, len(cfg.Exclude))
	for _, path := range cfg.Exclude {
		exclusions[path] = struct{}{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, skip := exclusions[r.URL.Path]; skip || !isIdempotent(r.Method) {
			handler.ServeHTTP(w, r)
			return
		}

		replayCtx := context.WithValue(r.Context(), replayKey{}, true)
		for attempt := 1; ; attempt++ {
			ctx := r.Context()
			if attempt > 1 {
				ctx = replayCtx
			}
			recorder := newRetryResponseRecorder()
			handler.ServeHTTP(recorder, r.Clone(ctx))
			if !recorder.retryable() || attempt >= cfg.MaxAttempts {
				recorder.commit(w)
				return
			}

			logger.Warn("transient failure, retrying request", "path", r.URL.Path, "status", recorder.statusCode, "attempt", attempt)
			timer := time.NewTimer(cfg.BaseBackoff * time.Duration(1<<(attempt-1)))
			select {
			case <-timer.C:
			case <-r.Context().Done():
				timer.Stop()
				recorder.commit(w)
				return
			}
		}
	})
}

type replayKey struct{}

// isReplay reports whether r is a repeated attempt of a request withRetry
// already served once. The rate limiter charges only the first attempt.
func isReplay(r *http.Request) bool {
	replay, _ := r.Context().Value(replayKey{}).(bool)
	return replay
}

func isIdempotent(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}

type retryResponseRecorder struct {
	header     http.Header
	body       bytes.Buffer
	statusCode int
	wroteHead  bool
}

func newRetryResponseRecorder() *retryResponseRecorder {
	return &retryResponseRecorder{
		header:     make(http.Header),
		statusCode: http.StatusOK,
	}
}

func (r *retryResponseRecorder) Header() http.Header {
	return r.header
}

func (r *retryResponseRecorder) WriteHeader(status int) {
	if r.wroteHead {
		return
	}
	r.statusCode = status
	r.wroteHead = true
}

func (r *retryResponseRecorder) Write(b []byte) (int, error) {
	r.wroteHead = true
	return r.body.Write(b)
}

func (r *retryResponseRecorder) commit(dst http.ResponseWriter) {
	dstHeader := dst.Header()
	for k, values := range r.header {
		dstHeader[k] = append([]string(nil), values...)
	}
	dst.WriteHeader(r.statusCode)
	if r.body.Len() > 0 {
		_, _ = dst.Write(r.body.Bytes())
	}
}

func (r *retryResponseRecorder) retryable() bool {
	return r.statusCode >= http.StatusInternalServerError
}
