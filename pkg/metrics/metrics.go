// Package metrics holds the Prometheus collectors shared by the HTTP
// middleware and the database wrapper.
package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles every collector the service exposes.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec

	dbConnectionsOpen  *prometheus.GaugeVec
	dbConnectionsInUse *prometheus.GaugeVec
	dbConnectionsIdle  *prometheus.GaugeVec
}

// New registers and returns the service collectors on the default
// Prometheus registry. serviceName becomes the "service" label.
func New(serviceName string) *Metrics {
	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed.",
		}, []string{"service", "method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		dbQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries executed.",
		}, []string{"service", "operation", "result"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency in seconds.",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"service", "operation"}),

		dbConnectionsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_open",
			Help: "Open connections in the pool.",
		}, []string{"service"}),

		dbConnectionsInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_in_use",
			Help: "Connections currently in use.",
		}, []string{"service"}),

		dbConnectionsIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Idle connections in the pool.",
		}, []string{"service"}),
	}
}

// ObserveHTTPRequest records one finished HTTP request.
func (m *Metrics) ObserveHTTPRequest(service, method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(service, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(service, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery records one finished database query.
func (m *Metrics) ObserveDBQuery(service, operation string, duration time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.dbQueriesTotal.WithLabelValues(service, operation, result).Inc()
	m.dbQueryDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}

// SetDBPoolStats publishes a snapshot of the connection pool.
func (m *Metrics) SetDBPoolStats(service string, stats sql.DBStats) {
	m.dbConnectionsOpen.WithLabelValues(service).Set(float64(stats.OpenConnections))
	m.dbConnectionsInUse.WithLabelValues(service).Set(float64(stats.InUse))
	m.dbConnectionsIdle.WithLabelValues(service).Set(float64(stats.Idle))
}
