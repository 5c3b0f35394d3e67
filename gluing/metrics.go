// SPDX-License-Identifier: MIT

package gluing

import "github.com/prometheus/client_golang/prometheus"

// Outcome labels recorded by Metrics.
const (
	OutcomeGlued        = "glued"
	OutcomeEmpty        = "empty"
	OutcomeIncompatible = "incompatible"
	OutcomeNotOpen      = "not_open"
	OutcomeMismatch     = "mismatch"
)

// Metrics counts Glue calls by outcome and observes cover sizes.
type Metrics struct {
	attempts  *prometheus.CounterVec
	coverSize prometheus.Histogram
}

// NewMetrics creates the gluing collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		attempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sheaf_gluing_attempts_total",
				Help: "Total number of gluing attempts by outcome",
			},
			[]string{"outcome"},
		),
		coverSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sheaf_gluing_cover_size",
				Help:    "Number of patches per gluing attempt",
				Buckets: prometheus.ExponentialBuckets(1, 2, 8),
			},
		),
	}
	for _, c := range []prometheus.Collector{m.attempts, m.coverSize} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Attempts returns the counter for outcome, for inspection in tests and dashboards.
func (m *Metrics) Attempts(outcome string) prometheus.Counter {
	return m.attempts.WithLabelValues(outcome)
}

func (m *Metrics) observe(size int, outcome string) {
	if m == nil {
		return
	}
	m.coverSize.Observe(float64(size))
	m.attempts.WithLabelValues(outcome).Inc()
}
