// Package telemetry groups operational signals for the site.
//
// Tracing is configured by internal/platform/otel and applied per request
// by the web observability middleware. Counters and latency histograms live
// in telemetry/metrics and are exposed in Prometheus text format on
// /metrics when enabled.
package telemetry
