package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/blaisecz/stress-detector/internal/tracking"
	"github.com/blaisecz/stress-detector/pkg/logger"
	"github.com/blaisecz/stress-detector/pkg/problem"
)

// Recovery recovers from panics, reports them and returns a 500 error.
func Recovery(tracker tracking.Tracker) func(http.Handler) http.Handler {
	if tracker == nil {
		tracker = tracking.Noop{}
	}
	log := logger.Named("http")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Errorw("panic recovered",
					"panic", fmt.Sprint(rec),
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				tracker.CapturePanic(r.Context(), rec, map[string]string{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				problem.InternalError("An unexpected error occurred").Write(w)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
