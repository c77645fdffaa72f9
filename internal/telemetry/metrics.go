// Package telemetry exposes Prometheus metrics for the course API.
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector gathers HTTP request metrics and registers them with a
// Prometheus registry.
type Collector struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration prometheus.Histogram
	authFailures    prometheus.Counter
}

// NewCollector creates a Collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "courseapi_http_requests_total",
			Help: "HTTP requests by method and status code",
		}, []string{"method", "status"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "courseapi_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		authFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courseapi_auth_failures_total",
			Help: "Requests rejected by the authentication gate",
		}),
	}

	c.registry.MustRegister(c.requestsTotal, c.requestDuration, c.authFailures)
	return c
}

// Middleware records request count, status, and latency for every request.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		c.requestsTotal.WithLabelValues(r.Method, strconv.Itoa(status)).Inc()
		c.requestDuration.Observe(time.Since(start).Seconds())
		if status == http.StatusUnauthorized {
			c.authFailures.Inc()
		}
	})
}

// Handler returns the /metrics exposition handler for this collector's
// registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
