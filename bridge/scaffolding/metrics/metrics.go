// Package metrics maintains the program counters exposed on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Number of HTTP requests handled, by method and path.",
	}, []string{"method", "path"})

	failures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_request_errors_total",
		Help: "Number of HTTP requests that produced an error response.",
	}, []string{"method", "path"})

	panics = promauto.NewCounter(prometheus.CounterOpts{
		Name: "http_panics_total",
		Help: "Number of panics recovered at the handler boundary.",
	})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Latency of HTTP requests, by method and path.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)

// AddRequest records a handled request.
func AddRequest(method, path string) {
	requests.WithLabelValues(method, path).Inc()
}

// AddError records a request that resolved to an error response.
func AddError(method, path string) {
	failures.WithLabelValues(method, path).Inc()
}

// AddPanic records a recovered panic.
func AddPanic() {
	panics.Inc()
}

// ObserveDuration records how long a request took.
func ObserveDuration(method, path string, seconds float64) {
	requestDuration.WithLabelValues(method, path).Observe(seconds)
}

// Handler returns the scrape endpoint for the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
