// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package theory

import (
	"github.com/sirupsen/logrus"

	"github.com/go-air/smtcore/inter"
	"github.com/go-air/smtcore/scope"
	"github.com/go-air/smtcore/term"
	"github.com/go-air/smtcore/z"
)

// State is the per theory view of the equality oracle together with
// the theory's conflict status.
//
// Queries on terms unknown to the oracle degrade to syntactic answers.
type State struct {
	ctx      *scope.Context
	st       *term.Store
	oracle   inter.Oracle
	conflict *scope.Value[bool]
	pending  *scope.Value[z.Term]
	log      logrus.FieldLogger
}

// NewState creates a state over oracle whose conflict status is scoped by c.
func NewState(c *scope.Context, st *term.Store, oracle inter.Oracle, log logrus.FieldLogger) *State {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &State{
		ctx:      c,
		st:       st,
		oracle:   oracle,
		conflict: scope.NewValue(c, false),
		pending:  scope.NewValue(c, z.TermNull),
		log:      log}
}

// Context returns the scoping context of s.
func (s *State) Context() *scope.Context { return s.ctx }

// Store returns the term store of s.
func (s *State) Store() *term.Store { return s.st }

// Oracle returns the equality oracle of s.
func (s *State) Oracle() inter.Oracle { return s.oracle }

// Log returns the logger of s.
func (s *State) Log() logrus.FieldLogger { return s.log }

// HasTerm returns whether t is registered with the oracle.
func (s *State) HasTerm(t z.Term) bool {
	return s.oracle.HasTerm(t)
}

// Rep returns the representative of t, or t itself if it is unknown.
func (s *State) Rep(t z.Term) z.Term {
	if s.oracle.HasTerm(t) {
		return s.oracle.Rep(t)
	}
	return t
}

// AreEqual returns true if a and b are identical or known equal.
func (s *State) AreEqual(a, b z.Term) bool {
	if a == b {
		return true
	}
	if s.oracle.HasTerm(a) && s.oracle.HasTerm(b) {
		return s.oracle.AreEqual(a, b)
	}
	return false
}

// AreDisequal returns true if a and b are known distinct.
func (s *State) AreDisequal(a, b z.Term) bool {
	if a == b {
		return false
	}
	if s.oracle.HasTerm(a) && s.oracle.HasTerm(b) {
		ar, br := s.oracle.Rep(a), s.oracle.Rep(b)
		if ar != br && s.st.IsConst(ar) && s.st.IsConst(br) {
			return true
		}
		return s.oracle.AreDisequal(a, b)
	}
	ar, br := s.Rep(a), s.Rep(b)
	return ar != br && s.st.IsConst(ar) && s.st.IsConst(br)
}

// SetConflict marks the current frame as being in conflict.
func (s *State) SetConflict() {
	s.conflict.Set(true)
}

// InConflict returns whether the current frame is in conflict.
func (s *State) InConflict() bool {
	return s.conflict.Get()
}

// SetPendingConflictWhen installs conf as the pending conflict if conf
// is not null and no conflict is pending.  The first conflict wins.
func (s *State) SetPendingConflictWhen(conf z.Term) {
	if conf == z.TermNull || s.pending.Get() != z.TermNull {
		return
	}
	s.log.WithField("conflict", s.st.String(conf)).Debug("pending conflict")
	s.pending.Set(conf)
}

// PendingConflict returns the pending conflict or z.TermNull.
func (s *State) PendingConflict() z.Term {
	return s.pending.Get()
}

// Blocked returns whether new facts in the current frame can be
// ignored because a conflict has been found.
func (s *State) Blocked() bool {
	return s.conflict.Get() || s.pending.Get() != z.TermNull
}
