// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package strs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts the results of the strings solver.
type Metrics struct {
	EagerConflicts    prometheus.Counter
	CardinalityLemmas prometheus.Counter
}

// NewMetrics creates the counters and registers them with reg, unless reg
// is nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		EagerConflicts: f.NewCounter(prometheus.CounterOpts{
			Namespace: "smtcore",
			Subsystem: "strings",
			Name:      "eager_conflicts_total",
			Help:      "Conflicts found on constant prefixes and suffixes."}),
		CardinalityLemmas: f.NewCounter(prometheus.CounterOpts{
			Namespace: "smtcore",
			Subsystem: "strings",
			Name:      "cardinality_lemmas_total",
			Help:      "Lemmas bounding the length of distinct strings."})}
}
