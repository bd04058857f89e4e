// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package strs

import (
	"context"

	set "github.com/hashicorp/go-set/v3"
	"github.com/sirupsen/logrus"

	"github.com/go-air/smtcore/inter"
	"github.com/go-air/smtcore/scope"
	"github.com/go-air/smtcore/term"
	"github.com/go-air/smtcore/z"
)

// Equalities is the equality engine the solver asserts facts to.  Each
// assertion returns an explanation of a conflict or z.TermNull.
type Equalities interface {
	inter.Oracle
	Register(t z.Term)
	AssertEqual(a, b z.Term) z.Term
	AssertDisequal(a, b z.Term) z.Term
}

// Solver is the strings theory solver.
type Solver struct {
	state    *State
	ee       Equalities
	sink     inter.Sink
	opts     Options
	metrics  *Metrics
	strTerms *scope.List[z.Term]
	log      logrus.FieldLogger
}

// NewSolver creates a strings solver.  The caller must make ee notify
// the solver of new classes and merges.  If m is nil, unregistered
// metrics are used.
func NewSolver(s *State, ee Equalities, sink inter.Sink, opts Options, m *Metrics) *Solver {
	if m == nil {
		m = NewMetrics(nil)
	}
	if opts.AlphabetCard < 1 {
		opts.AlphabetCard = DefaultOptions().AlphabetCard
	}
	return &Solver{
		state:    s,
		ee:       ee,
		sink:     sink,
		opts:     opts,
		metrics:  m,
		strTerms: scope.NewList[z.Term](s.Context()),
		log:      s.Log().WithField("theory", "strings")}
}

// Name returns "strings".
func (s *Solver) Name() string {
	return "strings"
}

// State returns the state of s.
func (s *Solver) State() *State {
	return s.state
}

// NewClass implements inter.Notify.
func (s *Solver) NewClass(t z.Term) {
	st := s.state.Store()
	if st.Sort(t) == z.SortString {
		s.strTerms.Append(t)
	}
	switch st.Kind(t) {
	case term.Length:
		s.state.EqcInfo(st.Kid(t, 0), true).SetLengthTerm(st.Kid(t, 0))
	case term.Code:
		s.state.EqcInfo(st.Kid(t, 0), true).SetCodeTerm(st.Kid(t, 0))
	case term.Concat:
		if s.opts.EagerConflicts {
			s.state.AddEndpointsToEqcInfo(t, t, t)
		}
	case term.StrConst:
		if s.opts.EagerConflicts {
			ei := s.state.EqcInfo(t, true)
			ei.AddEndpointConst(t, t, false)
			ei.AddEndpointConst(t, t, true)
		}
	}
}

// PreMerge implements inter.Notify.  The derived facts of loser are
// transferred to winner.
func (s *Solver) PreMerge(winner, loser z.Term) {
	e2 := s.state.EqcInfo(loser, false)
	if e2 == nil {
		return
	}
	e1 := s.state.EqcInfo(winner, true)
	if s.opts.EagerConflicts {
		if p := e2.Prefix(); !p.IsNull() {
			s.state.SetPendingConflictWhen(e1.AddEndpointConst(p.Term, p.Const, false))
		}
		if p := e2.Suffix(); !p.IsNull() {
			s.state.SetPendingConflictWhen(e1.AddEndpointConst(p.Term, p.Const, true))
		}
	}
	if c := e2.CodeTerm(); c != z.TermNull && e1.CodeTerm() == z.TermNull {
		e1.SetCodeTerm(c)
	}
	if l := e2.LengthTerm(); l != z.TermNull && e1.LengthTerm() == z.TermNull {
		e1.SetLengthTerm(l)
	}
	if k := e2.CardinalityMark(); k > e1.CardinalityMark() {
		e1.SetCardinalityMark(k)
	}
	if n := e2.NormalizedLength(); n != z.TermNull && e1.NormalizedLength() == z.TermNull {
		e1.SetNormalizedLength(n)
	}
}

// AssertFact asserts atom with polarity pol.  Facts are ignored once the
// current frame holds a conflict.
func (s *Solver) AssertFact(atom z.Term, pol bool) {
	if s.state.Blocked() {
		s.log.WithField("atom", s.state.Store().String(atom)).Trace("blocked")
		return
	}
	st := s.state.Store()
	switch st.Kind(atom) {
	case term.Eq:
		a, b := st.Kid(atom, 0), st.Kid(atom, 1)
		if pol {
			s.state.SetPendingConflictWhen(s.ee.AssertEqual(a, b))
		} else {
			s.state.SetPendingConflictWhen(s.ee.AssertDisequal(a, b))
		}
	case term.InRe:
		s.ee.Register(atom)
		x, re := st.Kid(atom, 0), st.Kid(atom, 1)
		if pol && s.opts.EagerConflicts && st.Kind(re) == term.ReConcat {
			s.state.AddEndpointsToEqcInfo(atom, re, s.state.Rep(x))
		}
	default:
		s.ee.Register(atom)
	}
}

// AssertEqual asserts a = b.
func (s *Solver) AssertEqual(a, b z.Term) {
	s.AssertFact(s.state.Store().Eq(a, b), true)
}

// AssertDisequal asserts a != b.
func (s *Solver) AssertDisequal(a, b z.Term) {
	s.AssertFact(s.state.Store().Eq(a, b), false)
}

// AssertInRe asserts the membership x in re, or its negation.
func (s *Solver) AssertInRe(x, re z.Term, pol bool) {
	s.AssertFact(s.state.Store().InRe(x, re), pol)
}

// Check drains the pending conflict and, at full effort, sends
// cardinality lemmas.
func (s *Solver) Check(ctx context.Context, e inter.Effort) inter.Outcome {
	if s.state.InConflict() {
		return inter.Conflict
	}
	if p := s.state.PendingConflict(); p != z.TermNull {
		s.log.WithField("conflict", s.state.Store().String(p)).Debug("eager conflict")
		s.sink.Conflict(p)
		s.state.SetConflict()
		s.metrics.EagerConflicts.Inc()
		return inter.Conflict
	}
	if e == inter.EffortFull && s.opts.Cardinality {
		if s.checkCardinality() > 0 {
			return inter.Lemmas
		}
	}
	return inter.None
}

func (s *Solver) checkCardinality() int {
	st := s.state.Store()
	items := s.strTerms.Items()
	seen := set.New[z.Term](len(items))
	var reps []z.Term
	for _, t := range items {
		r := s.state.Rep(t)
		if seen.Insert(r) {
			reps = append(reps, r)
		}
	}
	cols, lts := s.state.SeparateByLength(reps)
	n := 0
	for i, col := range cols {
		lr := lts[i]
		if lr == z.TermNull || len(col) < 2 {
			continue
		}
		need := cardNeed(len(col), s.opts.AlphabetCard)
		if st.Kind(lr) == term.IntConst && st.IntVal(lr) >= int64(need) {
			continue
		}
		if !s.allDisequal(col) {
			continue
		}
		ei := s.state.EqcInfo(lr, true)
		if need <= ei.CardinalityMark() {
			continue
		}
		ei.SetCardinalityMark(need)
		var ante []z.Term
		for j := range col {
			for k := j + 1; k < len(col); k++ {
				ante = append(ante, st.Not(st.Eq(col[j], col[k])))
			}
		}
		for _, c := range col {
			l, _ := s.state.Length(c, nil)
			if l != lr {
				ante = append(ante, st.Eq(l, lr))
			}
		}
		lem := st.Implies(st.And(ante...), st.Leq(st.Int(int64(need)), lr))
		s.log.WithFields(logrus.Fields{
			"size": len(col),
			"need": need}).Debug("cardinality lemma")
		s.sink.Lemma(lem)
		s.metrics.CardinalityLemmas.Inc()
		n++
	}
	return n
}

func (s *Solver) allDisequal(col []z.Term) bool {
	for j := range col {
		for k := j + 1; k < len(col); k++ {
			if !s.state.AreDisequal(col[j], col[k]) {
				return false
			}
		}
	}
	return true
}

// cardNeed returns the least n such that card^n >= k.
func cardNeed(k, card int) int {
	need := 1
	curr := float64(k)
	for curr > float64(card) {
		curr /= float64(card)
		need++
	}
	return need
}
