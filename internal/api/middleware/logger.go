package middleware

import (
	"net/http"
	"time"

	"github.com/blaisecz/stress-detector/pkg/logger"
)

// Logger writes one access log line per request.
func Logger(next http.Handler) http.Handler {
	log := logger.Named("http")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := wrap(w)
		start := time.Now()

		next.ServeHTTP(sw, r)

		fields := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"duration", time.Since(start),
			"remote_addr", r.RemoteAddr,
		}
		switch {
		case sw.status >= http.StatusInternalServerError:
			log.Errorw("request", fields...)
		case sw.status >= http.StatusBadRequest:
			log.Warnw("request", fields...)
		default:
			log.Infow("request", fields...)
		}
	})
}
