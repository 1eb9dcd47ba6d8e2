// Package metrics provides Prometheus metrics for the Desktop98 server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Search strategies
const (
	StrategyExact     = "exact"
	StrategyIndex     = "index"
	StrategyTraversal = "traversal"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "desktop98_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "desktop98_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Search metrics
	searchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "desktop98_searches_total",
			Help: "Total file-system searches by strategy and case mode",
		},
		[]string{"strategy", "case_sensitive"},
	)

	indexedEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "desktop98_index_entries",
			Help: "Number of entries inserted into the search tree",
		},
	)

	indexBuckets = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "desktop98_index_buckets",
			Help: "Number of substring buckets per case mode",
		},
		[]string{"case_sensitive"},
	)

	// Registry metrics
	registryOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "desktop98_registry_operations_total",
			Help: "Total registry mutations by registry and operation",
		},
		[]string{"registry", "op"},
	)

	registrySubscribers = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "desktop98_registry_subscribers",
			Help: "Active snapshot subscribers by registry",
		},
		[]string{"registry"},
	)

	registryEntities = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "desktop98_registry_entities",
			Help: "Open entities by registry",
		},
		[]string{"registry"},
	)

	// Persistence metrics
	stateSavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "desktop98_state_saves_total",
			Help: "Total persisted window snapshots",
		},
		[]string{"status"},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordHTTPRequest records an HTTP request metric.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordSearch records a search by strategy.
func RecordSearch(strategy string, caseSensitive bool) {
	searchesTotal.WithLabelValues(strategy, strconv.FormatBool(caseSensitive)).Inc()
}

// SetIndexSize sets the index gauges after a build.
func SetIndexSize(entries, sensitiveBuckets, insensitiveBuckets int) {
	indexedEntries.Set(float64(entries))
	indexBuckets.WithLabelValues("true").Set(float64(sensitiveBuckets))
	indexBuckets.WithLabelValues("false").Set(float64(insensitiveBuckets))
}

// RecordRegistryOp records a registry mutation.
func RecordRegistryOp(registry, op string) {
	registryOpsTotal.WithLabelValues(registry, op).Inc()
}

// SetRegistrySubscribers sets the subscriber gauge of a registry.
func SetRegistrySubscribers(registry string, count int) {
	registrySubscribers.WithLabelValues(registry).Set(float64(count))
}

// SetRegistryEntities sets the open-entity gauge of a registry.
func SetRegistryEntities(registry string, count int) {
	registryEntities.WithLabelValues(registry).Set(float64(count))
}

// RecordStateSave records a persisted snapshot.
func RecordStateSave(success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	stateSavesTotal.WithLabelValues(status).Inc()
}

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Middleware returns HTTP middleware that records request metrics.
// Routes are labelled by chi route pattern to bound cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		RecordHTTPRequest(r.Method, route, rw.statusCode, time.Since(start))
	})
}
