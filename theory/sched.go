// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package theory

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-air/smtcore/inter"
)

var tracer = otel.Tracer("github.com/go-air/smtcore/theory")

// Efforts lists the efforts in the order Run tries them.
var Efforts = [...]inter.Effort{inter.EffortStandard, inter.EffortFull, inter.EffortLastCall}

// Scheduler checks theory solvers in registration order.  It knows
// nothing about the solvers beyond inter.TheorySolver.
type Scheduler struct {
	solvers []inter.TheorySolver
	log     logrus.FieldLogger
	checks  int
}

// NewScheduler creates a scheduler for ts.
func NewScheduler(log logrus.FieldLogger, ts ...inter.TheorySolver) *Scheduler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Scheduler{solvers: ts, log: log}
}

// Add appends t to the solvers of s.
func (s *Scheduler) Add(t inter.TheorySolver) {
	s.solvers = append(s.solvers, t)
}

// Checks returns the number of individual solver checks performed.
func (s *Scheduler) Checks() int {
	return s.checks
}

// Check checks every solver which needs effort e.  It stops at the first
// conflict and otherwise returns Lemmas if some solver reported lemmas.
func (s *Scheduler) Check(ctx context.Context, e inter.Effort) inter.Outcome {
	ctx, span := tracer.Start(ctx, "theory.Check",
		trace.WithAttributes(attribute.String("effort", e.String())))
	defer span.End()
	res := inter.None
	for _, t := range s.solvers {
		if nc, ok := t.(inter.NeedsChecker); ok && !nc.NeedsCheck(e) {
			continue
		}
		if ctx.Err() != nil {
			break
		}
		s.checks++
		o := t.Check(ctx, e)
		s.log.WithFields(logrus.Fields{
			"theory":  t.Name(),
			"effort":  e.String(),
			"outcome": o.String()}).Debug("check")
		if o == inter.Conflict {
			res = o
			break
		}
		if o == inter.Lemmas {
			res = o
		}
	}
	span.SetAttributes(attribute.String("outcome", res.String()))
	return res
}

// Run checks at each effort of Efforts in turn and returns the first
// effort whose outcome is not None, together with that outcome.  If
// all efforts yield None, Run returns (EffortLastCall, None).
func (s *Scheduler) Run(ctx context.Context) (inter.Effort, inter.Outcome) {
	for _, e := range Efforts {
		if o := s.Check(ctx, e); o != inter.None {
			return e, o
		}
		if ctx.Err() != nil {
			return e, inter.None
		}
	}
	return inter.EffortLastCall, inter.None
}
