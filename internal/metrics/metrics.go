// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "teamtracker",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Histogram of HTTP request handling time in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	teamOperationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "teamtracker",
		Subsystem: "team",
		Name:      "operations_total",
		Help:      "Counter of team operations by outcome",
	}, []string{"operation", "outcome"})

	inviteCodeCollisionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "teamtracker",
		Subsystem: "team",
		Name:      "invite_code_collisions_total",
		Help:      "Counter of generated invite codes that were already in use",
	})
)

// RegisterMetrics registers all collectors with registry.
func RegisterMetrics(registry *prometheus.Registry) {
	registry.MustRegister(httpRequestDurationSeconds)
	registry.MustRegister(teamOperationsTotal)
	registry.MustRegister(inviteCodeCollisionsTotal)
}

// ReportHTTPRequest records one handled request. Unmatched routes should be
// passed as an empty route to keep label cardinality bounded.
func ReportHTTPRequest(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestDurationSeconds.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// ReportTeamOperation counts one team operation.
func ReportTeamOperation(operation, outcome string) {
	teamOperationsTotal.WithLabelValues(operation, outcome).Inc()
}

// ReportInviteCodeCollision counts one invite code collision.
func ReportInviteCodeCollision() {
	inviteCodeCollisionsTotal.Inc()
}
