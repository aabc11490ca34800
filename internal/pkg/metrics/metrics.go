// Package metrics holds the console's Prometheus collectors.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hris_console"

type collectors struct {
	backendRequests *prometheus.CounterVec
	backendLatency  *prometheus.HistogramVec

	importRows       *prometheus.CounterVec
	importViolations prometheus.Counter

	toastsShown *prometheus.CounterVec
}

var singleton = sync.OnceValue(func() *collectors {
	return &collectors{
		backendRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_requests_total",
			Help:      "Total number of requests sent to the upstream HR backend.",
		}, []string{"method", "resource", "result"}),
		backendLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Latency distribution for upstream HR backend requests.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}, []string{"method", "resource"}),
		importRows: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "import_rows_total",
			Help:      "Employee import rows seen, by stage (previewed, submitted).",
		}, []string{"stage"}),
		importViolations: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "import_violations_total",
			Help:      "Validation violations reported by employee import previews.",
		}),
		toastsShown: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "toasts_shown_total",
			Help:      "Toasts shown to the operator, by kind.",
		}, []string{"kind"}),
	}
})

// BackendRequest records one upstream call. result is "ok", "error" or the HTTP status class.
func BackendRequest(method, resource, result string, elapsed time.Duration) {
	m := singleton()
	m.backendRequests.WithLabelValues(method, resource, result).Inc()
	m.backendLatency.WithLabelValues(method, resource).Observe(elapsed.Seconds())
}

func ImportPreviewed(rows, violations int) {
	m := singleton()
	m.importRows.WithLabelValues("previewed").Add(float64(rows))
	m.importViolations.Add(float64(violations))
}

func ImportSubmitted(rows int) {
	singleton().importRows.WithLabelValues("submitted").Add(float64(rows))
}

func ToastShown(kind string) {
	singleton().toastsShown.WithLabelValues(kind).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
