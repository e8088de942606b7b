// Package metrics implements the core.Metrics port.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
)

// PrometheusRecorder records metrics on a private registry
type PrometheusRecorder struct {
	registry *prometheus.Registry

	httpLatency    *prometheus.HistogramVec
	gatewayLatency *prometheus.HistogramVec
	transitions    *prometheus.CounterVec
	callbacks      *prometheus.CounterVec
	droppedEvents  *prometheus.CounterVec
	swept          prometheus.Counter
}

// NewPrometheusRecorder creates the collectors under namespace
func NewPrometheusRecorder(namespace string) *PrometheusRecorder {
	r := &PrometheusRecorder{
		registry: prometheus.NewRegistry(),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Latency of served HTTP requests",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		gatewayLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "gateway_call_duration_seconds",
				Help:      "Latency of outbound payment gateway calls",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"operation", "outcome"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "state_transitions_total",
				Help:      "Status changes of tips and withdrawals",
			},
			[]string{"kind", "to"},
		),
		callbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "callbacks_total",
				Help:      "Inbound gateway webhooks by outcome",
			},
			[]string{"kind", "outcome"},
		),
		droppedEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "live_events_dropped_total",
				Help:      "Live events not delivered to a slow subscriber",
			},
			[]string{"event"},
		),
		swept: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stale_transactions_swept_total",
				Help:      "Pending tips moved to timeout by the sweeper",
			},
		),
	}

	r.registry.MustRegister(
		r.httpLatency,
		r.gatewayLatency,
		r.transitions,
		r.callbacks,
		r.droppedEvents,
		r.swept,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// RegisterDB exports connection pool statistics
func (r *PrometheusRecorder) RegisterDB(db *sql.DB, name string) error {
	return r.registry.Register(collectors.NewDBStatsCollector(db, name))
}

// Handler serves the registry in the exposition format
func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry exposes the underlying registry
func (r *PrometheusRecorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *PrometheusRecorder) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	r.httpLatency.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func (r *PrometheusRecorder) ObserveGatewayCall(operation, outcome string, elapsed time.Duration) {
	r.gatewayLatency.WithLabelValues(operation, outcome).Observe(elapsed.Seconds())
}

func (r *PrometheusRecorder) IncTransition(kind, to string) {
	r.transitions.WithLabelValues(kind, to).Inc()
}

func (r *PrometheusRecorder) IncCallback(kind, outcome string) {
	r.callbacks.WithLabelValues(kind, outcome).Inc()
}

func (r *PrometheusRecorder) IncDroppedEvent(event string) {
	r.droppedEvents.WithLabelValues(event).Inc()
}

func (r *PrometheusRecorder) AddSwept(n int) {
	if n > 0 {
		r.swept.Add(float64(n))
	}
}

var _ coreport.Metrics = (*PrometheusRecorder)(nil)
