// Package metrics provides Prometheus HTTP metrics middleware and the
// forum's domain counters.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	likesToggled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_likes_toggled_total",
			Help: "Like toggles by resulting action",
		},
		[]string{"action"},
	)

	threadAggregationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "forum_thread_aggregation_duration_seconds",
			Help:    "Time spent assembling a thread detail view",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"outcome"},
	)
)

const (
	LikeAdded   = "added"
	LikeRemoved = "removed"
)

func LikeToggled(action string) {
	likesToggled.WithLabelValues(action).Inc()
}

// ObserveAggregation records one thread detail build started at start.
func ObserveAggregation(start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	threadAggregationDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// RoutePattern returns chi's matched pattern, falling back to the raw path.
func RoutePattern(r *http.Request) string {
	if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
		if pattern := routeCtx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

// Middleware returns HTTP middleware that records Prometheus metrics.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := newResponseWriter(w)
		next.ServeHTTP(wrapped, r)

		// route pattern keeps label cardinality bounded
		path := RoutePattern(r)
		duration := time.Since(start).Seconds()
		status := strconv.Itoa(wrapped.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}
