package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Tsolgiun/office-plus-booking/pkg/metrics"
)

// statusRecorder captures the response status for the metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware records request counts and latencies per route
// template (not per concrete URL, to keep label cardinality bounded).
func MetricsMiddleware(m *metrics.Metrics, service string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if template, err := route.GetPathTemplate(); err == nil {
					path = template
				}
			}

			m.ObserveHTTPRequest(service, r.Method, path, rec.status, time.Since(start))
		})
	}
}
