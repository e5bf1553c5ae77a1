package metrics

import (
	"database/sql"
	stderrors "errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// HTTPRequestsTotal counts handled requests by route, method and status
var HTTPRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rosterhub_http_requests_total",
		Help: "Total number of HTTP requests handled",
	},
	[]string{"path", "method", "status"},
)

// HTTPRequestDuration records request latency by route and method
var HTTPRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "rosterhub_http_request_duration_seconds",
		Help:    "Latency in seconds of HTTP requests",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"path", "method"},
)

// PlayerMutations counts committed player writes by operation (create, update, delete)
var PlayerMutations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rosterhub_player_mutations_total",
		Help: "Total number of committed player mutations",
	},
	[]string{"op"},
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal, HTTPRequestDuration, PlayerMutations)
}

// RegisterDBStats exposes database/sql pool statistics for db. Registering the
// same pool twice is not an error.
func RegisterDBStats(db *sql.DB, name string) error {
	err := prometheus.Register(collectors.NewDBStatsCollector(db, name))
	var already prometheus.AlreadyRegisteredError
	if stderrors.As(err, &already) {
		return nil
	}
	return err
}
