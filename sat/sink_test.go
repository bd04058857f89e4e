// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/smtcore/term"
	"github.com/go-air/smtcore/z"
)

func TestSinkLemmas(t *testing.T) {
	st := term.NewStore()
	s := New(st, nil)
	u := st.DeclareSort("U")
	a := st.Apply("a", u)
	p := st.Apply("p", z.SortBool, a)
	q := st.Apply("q", z.SortBool, a)
	s.Lemma(st.Implies(p, q))
	require.Equal(t, Sat, s.Solve(p))
	v, ok := s.Value(q)
	require.True(t, ok)
	assert.True(t, v)
	assert.Equal(t, []z.Term{st.Implies(p, q)}, s.Lemmas())
	assert.Equal(t, []z.Term{p, q}, s.Atoms())

	_, ok = s.Value(st.Apply("r", z.SortBool))
	assert.False(t, ok)
}

func TestSinkConflict(t *testing.T) {
	st := term.NewStore()
	s := New(st, nil)
	x := st.Var("x", z.SortString)
	e1 := st.Eq(x, st.Str("ab"))
	e2 := st.Eq(x, st.Str("b"))
	s.Conflict(st.And(e1, e2))
	require.Equal(t, Sat, s.Solve(e1))
	v, ok := s.Value(e2)
	require.True(t, ok)
	assert.False(t, v)

	assert.Equal(t, Unsat, s.Solve(e1, e2))
	// assumptions do not persist
	assert.Equal(t, Sat, s.Solve(e2))
	assert.Len(t, s.Conflicts(), 1)
}

func TestSinkTrivialConflict(t *testing.T) {
	st := term.NewStore()
	s := New(st, nil)
	s.Conflict(st.True())
	assert.Equal(t, Unsat, s.Solve())
}

func TestSinkIncomplete(t *testing.T) {
	s := New(term.NewStore(), nil)
	assert.False(t, s.Incomplete())
	s.SetIncomplete()
	assert.True(t, s.Incomplete())
	s.ResetIncomplete()
	assert.False(t, s.Incomplete())
}
