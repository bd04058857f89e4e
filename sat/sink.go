// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	gz "github.com/go-air/gini/z"
	"github.com/sirupsen/logrus"

	"github.com/go-air/smtcore/term"
	"github.com/go-air/smtcore/z"
)

// Result codes of Solve, as returned by gini.
const (
	Sat     = 1
	Unknown = 0
	Unsat   = -1
)

// Sink implements inter.Sink on top of a gini solver.
type Sink struct {
	st    *term.Store
	g     *gini.Gini
	c     *logic.C
	lits  map[z.Term]gz.Lit
	atoms []z.Term
	marks []int8

	conflicts  []z.Term
	lemmas     []z.Term
	incomplete bool
	log        logrus.FieldLogger
}

// New creates a sink for terms of st.  log may be nil.
func New(st *term.Store, log logrus.FieldLogger) *Sink {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Sink{
		st:   st,
		g:    gini.New(),
		c:    logic.NewC(),
		lits: make(map[z.Term]gz.Lit),
		log:  log.WithField("component", "sat")}
}

// Conflict implements inter.Sink.  The explanation is a conjunction of
// facts which cannot hold together, so its negation is added.
func (s *Sink) Conflict(expl z.Term) {
	s.conflicts = append(s.conflicts, expl)
	s.log.WithField("explanation", s.st.String(expl)).Debug("conflict")
	s.add(s.Lit(expl).Not())
}

// Lemma implements inter.Sink.
func (s *Sink) Lemma(l z.Term) {
	s.lemmas = append(s.lemmas, l)
	s.log.WithField("lemma", s.st.String(l)).Trace("lemma")
	s.add(s.Lit(l))
}

// SetIncomplete implements inter.Sink.
func (s *Sink) SetIncomplete() {
	s.incomplete = true
}

// ResetIncomplete clears the incompleteness flag before a new check.
func (s *Sink) ResetIncomplete() {
	s.incomplete = false
}

// Conflicts returns the explanations received so far.
func (s *Sink) Conflicts() []z.Term { return s.conflicts }

// Lemmas returns the lemmas received so far.
func (s *Sink) Lemmas() []z.Term { return s.lemmas }

// Incomplete returns whether some solver reported incompleteness.
func (s *Sink) Incomplete() bool { return s.incomplete }

// Lit returns the literal of the Boolean term t, encoding its
// connectives in the circuit.
func (s *Sink) Lit(t z.Term) gz.Lit {
	if m, ok := s.lits[t]; ok {
		return m
	}
	var m gz.Lit
	switch s.st.Kind(t) {
	case term.BoolConst:
		if s.st.BoolVal(t) {
			m = s.c.T
		} else {
			m = s.c.F
		}
	case term.Not:
		m = s.Lit(s.st.Kid(t, 0)).Not()
	case term.And:
		m = s.c.Ands(s.kidLits(t)...)
	case term.Or:
		m = s.c.Ors(s.kidLits(t)...)
	case term.Implies:
		m = s.c.Implies(s.Lit(s.st.Kid(t, 0)), s.Lit(s.st.Kid(t, 1)))
	default:
		m = s.c.Lit()
		s.atoms = append(s.atoms, t)
	}
	s.lits[t] = m
	return m
}

func (s *Sink) kidLits(t z.Term) []gz.Lit {
	kids := s.st.Kids(t)
	ms := make([]gz.Lit, len(kids))
	for i, k := range kids {
		ms[i] = s.Lit(k)
	}
	return ms
}

// define adds the clauses defining m which are not yet in the solver.
func (s *Sink) define(m gz.Lit) {
	s.marks, _ = s.c.CnfSince(s.g, s.marks, m)
}

// add adds m as a unit.
func (s *Sink) add(m gz.Lit) {
	s.define(m)
	s.g.Add(m)
	s.g.Add(0)
}

// Atoms returns the atoms which have a literal, in order of creation.
func (s *Sink) Atoms() []z.Term {
	return s.atoms
}

// Solve solves the Boolean abstraction of everything added so far under
// the assumption that the Boolean terms facts hold, and returns Sat, Unsat
// or Unknown.  Assumptions only last for one call.
func (s *Sink) Solve(facts ...z.Term) int {
	for _, f := range facts {
		m := s.Lit(f)
		s.define(m)
		s.g.Assume(m)
	}
	return s.g.Solve()
}

// Value returns the value of the Boolean term t in the last model found
// by Solve.  ok is false if t has no literal in the solver.
func (s *Sink) Value(t z.Term) (v, ok bool) {
	m, ok := s.lits[t]
	if !ok {
		return false, false
	}
	if v := int(m.Var()); v >= len(s.marks) || s.marks[v] != 1 {
		return false, false
	}
	return s.g.Value(m), true
}
