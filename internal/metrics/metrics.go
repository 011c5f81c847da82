// Package metrics exposes the Prometheus instruments for the login flow.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Login outcomes.
const (
	OutcomeNative             = "native"
	OutcomeMigrated           = "migrated"
	OutcomeRejected           = "rejected"
	OutcomeProvisioningFailed = "provisioning_failed"
)

var (
	// LoginAttempts counts login attempts by terminal outcome.
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "login_attempts_total",
		Help: "Login attempts by terminal outcome.",
	}, []string{"outcome"})

	// BookkeepingFailures counts non-fatal failures of the secondary
	// migration steps (profile insert, migration flag, rehash, mail).
	BookkeepingFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "login_bookkeeping_failures_total",
		Help: "Non-fatal bookkeeping failures during account migration.",
	}, []string{"step"})

	// LoginDuration observes end-to-end login latency.
	LoginDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "login_duration_seconds",
		Help:    "End-to-end login handling duration.",
		Buckets: prometheus.DefBuckets,
	})
)
