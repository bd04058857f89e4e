// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package strs

import (
	"github.com/go-air/smtcore/theory"
	"github.com/go-air/smtcore/z"
)

// State is the theory state of the strings solver.  It owns the EqcInfo
// records, which live as long as the State.
type State struct {
	*theory.State
	infos map[z.Term]*EqcInfo
}

// NewState creates a strings state on top of ts.
func NewState(ts *theory.State) *State {
	return &State{State: ts, infos: make(map[z.Term]*EqcInfo)}
}

// EqcInfo returns the record of the class of t, creating it if doMake is
// set.  Without doMake a missing record yields nil.
func (s *State) EqcInfo(t z.Term, doMake bool) *EqcInfo {
	r := s.Rep(t)
	if ei, ok := s.infos[r]; ok {
		return ei
	}
	if !doMake {
		return nil
	}
	ei := newEqcInfo(s.Context(), s.Store())
	s.infos[r] = ei
	return ei
}

// AddEndpointsToEqcInfo adds the constant endpoints of concat, a string
// or regular expression concatenation, to the record of eqc.  t is the
// witness of the endpoints.  A conflict becomes the pending conflict.
func (s *State) AddEndpointsToEqcInfo(t, concat, eqc z.Term) {
	st := s.Store()
	for _, isSuf := range [2]bool{false, true} {
		c := ConstantEndpoint(st, concat, isSuf)
		if c == z.TermNull {
			continue
		}
		ei := s.EqcInfo(eqc, true)
		s.SetPendingConflictWhen(ei.AddEndpointConst(t, c, isSuf))
	}
}

// LengthExp returns a term for the length of t, which is known equal to te.
// If str.len(te) is known it is used.  Otherwise the length witness of the
// class of t is used and, if it differs from te, te = witness is added to
// exp.
func (s *State) LengthExp(t, te z.Term, exp []z.Term) (z.Term, []z.Term) {
	st := s.Store()
	lt := st.Len(te)
	if s.HasTerm(lt) {
		return lt, exp
	}
	w := z.TermNull
	if ei := s.EqcInfo(t, false); ei != nil {
		w = ei.LengthTerm()
	}
	if w == z.TermNull {
		w = t
	}
	if te != w {
		exp = append(exp, st.Eq(te, w))
	}
	return st.Len(w), exp
}

// Length is LengthExp(t, t, exp).
func (s *State) Length(t z.Term, exp []z.Term) (z.Term, []z.Term) {
	return s.LengthExp(t, t, exp)
}

// SeparateByLength partitions reps by the class of their length.  Reps
// without a length witness form singleton groups with a null length.
// Groups appear in the order of their first member in reps.
func (s *State) SeparateByLength(reps []z.Term) (cols [][]z.Term, lts []z.Term) {
	st := s.Store()
	idx := make(map[z.Term]int)
	for _, r := range reps {
		ei := s.EqcInfo(r, false)
		if ei == nil || ei.LengthTerm() == z.TermNull {
			cols = append(cols, []z.Term{r})
			lts = append(lts, z.TermNull)
			continue
		}
		lr := s.Rep(st.Len(ei.LengthTerm()))
		if i, ok := idx[lr]; ok {
			cols[i] = append(cols[i], r)
			continue
		}
		idx[lr] = len(cols)
		cols = append(cols, []z.Term{r})
		lts = append(lts, lr)
	}
	return cols, lts
}
