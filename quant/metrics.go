// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package quant

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts engine activity.
type Metrics struct {
	Rounds           prometheus.Counter
	ExhaustiveLemmas prometheus.Counter
	BuilderLemmas    prometheus.Counter
}

// NewMetrics creates the counters and registers them with reg, unless reg
// is nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Rounds: f.NewCounter(prometheus.CounterOpts{
			Namespace: "smtcore",
			Subsystem: "quant",
			Name:      "rounds_total",
			Help:      "Model checking passes."}),
		ExhaustiveLemmas: f.NewCounter(prometheus.CounterOpts{
			Namespace: "smtcore",
			Subsystem: "quant",
			Name:      "exhaustive_lemmas_total",
			Help:      "Instances added by exhaustive enumeration."}),
		BuilderLemmas: f.NewCounter(prometheus.CounterOpts{
			Namespace: "smtcore",
			Subsystem: "quant",
			Name:      "builder_lemmas_total",
			Help:      "Instances added by the model builder."})}
}
