// SPDX-License-Identifier: MIT

package gluing

import "go.uber.org/zap"

// Option configures an Engine.
// Option constructors panic on nil arguments; Glue itself never panics.
type Option func(*config)

type config struct {
	log              *zap.Logger
	metrics          *Metrics
	restrictionCheck bool
}

func defaultConfig() config {
	return config{log: zap.NewNop()}
}

// WithLogger routes engine diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("gluing: WithLogger(nil)")
	}
	return func(c *config) { c.log = l }
}

// WithMetrics records every Glue outcome in m.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("gluing: WithMetrics(nil)")
	}
	return func(c *config) { c.metrics = m }
}

// WithRestrictionCheck makes Glue verify that the global section restricts
// back to every patch, reporting ErrRestrictionMismatch otherwise.
func WithRestrictionCheck() Option {
	return func(c *config) { c.restrictionCheck = true }
}
