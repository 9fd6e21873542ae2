package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/blaisecz/stress-detector/internal/metrics"
	"github.com/blaisecz/stress-detector/pkg/problem"
)

// RateLimit guards the wrapped routes with a single token bucket.
// A non-positive rps disables limiting.
func RateLimit(rps float64, burst int, m *metrics.Metrics) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := limiter.Reserve()
			if delay := res.Delay(); delay > 0 {
				res.Cancel()
				if m != nil {
					m.RateLimited.Inc()
				}
				problem.TooManyRequests("Too many analysis requests, please retry shortly").
					WithRetryAfter(delay).
					Write(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
