// Package metrics provides operational metrics collection.
//
// This package handles service observability for monitoring and alerting:
//
// # Metric Categories
//
//   - Traffic: HTTP request counts by method and status code
//   - Latency: HTTP request duration histograms by method
//   - Locale routing: serve, redirect, rewrite and skip decisions by locale
//   - Runtime: Go runtime and process collectors
//
// # Integration
//
// Metrics are recorded by HTTP middleware and exposed in Prometheus format on
// the /metrics endpoint, which can be scraped by standard monitoring
// infrastructure.
package metrics
