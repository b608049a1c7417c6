// Package metrics provides Prometheus metrics for the verification flow.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all verification metrics.
type Metrics struct {
	VerificationsTotal *prometheus.CounterVec // Completed runs by fragment status
	ResolutionsTotal   *prometheus.CounterVec // Per-issuer identity resolutions by outcome
	RunDurationSeconds prometheus.Histogram   // End-to-end verification run latency
}

// New creates a new Metrics instance with all metrics registered.
func New() *Metrics {
	return &Metrics{
		VerificationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "attestor_verifications_total",
			Help: "Total number of verification runs by fragment status",
		}, []string{"status"}),

		ResolutionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "attestor_identity_resolutions_total",
			Help: "Total number of per-issuer identity resolutions by outcome",
		}, []string{"outcome"}),

		RunDurationSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "attestor_verification_run_duration_seconds",
			Help:    "Duration of verification runs including all issuer resolutions",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// RecordVerification records one completed verification run.
func (m *Metrics) RecordVerification(status string, elapsed time.Duration) {
	m.VerificationsTotal.WithLabelValues(status).Inc()
	m.RunDurationSeconds.Observe(elapsed.Seconds())
}

// RecordResolution records one per-issuer resolution outcome.
func (m *Metrics) RecordResolution(outcome string) {
	m.ResolutionsTotal.WithLabelValues(outcome).Inc()
}
