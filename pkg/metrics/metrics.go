// Package metrics provides the centralized Prometheus registry reference for
// the Salesforce client. Collectors are defined next to the code they
// measure (pkg/client) and register themselves via promauto.
//
// This package documents the available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registerer used by the client.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - sforce_requests_total{endpoint, status} (Counter): Total requests by
//     endpoint path and HTTP status ("network_error" for transport failures)
//   - sforce_request_duration_seconds{endpoint} (Histogram): Request
//     round-trip duration by endpoint path
//
// Query Metrics (pkg/client):
//   - sforce_query_pages_total (Counter): Query result pages fetched,
//     including lazily requested continuation pages
//
// Example Prometheus Queries:
//
//   # Request Error Rate
//   sum(rate(sforce_requests_total{status=~"4..|5..|network_error"}[5m]))
//   / sum(rate(sforce_requests_total[5m]))
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(sforce_request_duration_seconds_bucket[5m]))
//
//   # Pagination Volume
//   rate(sforce_query_pages_total[5m])
