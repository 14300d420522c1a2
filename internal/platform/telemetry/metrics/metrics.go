package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "stoplaliga"

// Recorder owns the service metric registry and its collectors.
type Recorder struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	localeDecisions *prometheus.CounterVec
}

// New builds a Recorder backed by a fresh registry that also carries the Go
// runtime and process collectors.
func New() *Recorder {
	registry := prometheus.NewRegistry()
	r := &Recorder{
		registry: registry,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests served, by method and status code.",
		}, []string{"method", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds, by method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		localeDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "localeroute",
			Name:      "decisions_total",
			Help:      "Locale routing decisions, by decision and locale.",
		}, []string{"decision", "locale"}),
	}
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.requests,
		r.requestDuration,
		r.localeDecisions,
	)
	return r
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// ObserveRequest records one completed HTTP request.
func (r *Recorder) ObserveRequest(method string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	method = normalizeMethod(method)
	if status <= 0 {
		status = http.StatusOK
	}
	r.requests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	r.requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// ObserveLocaleDecision records one locale routing decision. An empty locale
// is recorded as "none".
func (r *Recorder) ObserveLocaleDecision(decision string, locale string) {
	if r == nil {
		return
	}
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = "none"
	}
	r.localeDecisions.WithLabelValues(strings.TrimSpace(decision), locale).Inc()
}

// Handler exposes the registry in Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Keeps label cardinality bounded against arbitrary client methods.
func normalizeMethod(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions:
		return method
	default:
		return "OTHER"
	}
}
