// Package metrics defines Prometheus metrics for the biograph server.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "biograph_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "biograph_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "biograph_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	ExplorationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "biograph_explorations_total",
			Help: "Total network explorations by operation",
		},
		[]string{"operation"},
	)

	ExplorationNodes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "biograph_exploration_nodes",
			Help:    "Nodes returned per exploration",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	NetworkLoadDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "biograph_network_load_duration_seconds",
			Help:    "Time to materialize a relationship neighborhood",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		ExplorationsTotal, ExplorationNodes, NetworkLoadDuration,
	)
}
