// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package strs

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/smtcore/inter"
	"github.com/go-air/smtcore/z"
)

type sink struct {
	conflicts  []z.Term
	lemmas     []z.Term
	incomplete bool
}

func (k *sink) Conflict(expl z.Term) { k.conflicts = append(k.conflicts, expl) }
func (k *sink) Lemma(l z.Term)       { k.lemmas = append(k.lemmas, l) }
func (k *sink) SetIncomplete()       { k.incomplete = true }

func newSolver(f *fixture, opts Options) (*Solver, *sink) {
	k := &sink{}
	s := NewSolver(f.s, f.ee, k, opts, nil)
	f.ee.Listen(s)
	return s, k
}

func TestSolverFirstConflictWins(t *testing.T) {
	f := newFixture()
	s, k := newSolver(f, DefaultOptions())
	st := f.st
	x, y, v := f.str("x"), f.str("y"), f.str("v")
	c1 := st.Concat(st.Str("ab"), y)
	c2 := st.Concat(st.Str("ac"), v)

	f.c.Push()
	s.AssertEqual(x, c1)
	require.Equal(t, z.TermNull, f.s.PendingConflict())
	s.AssertEqual(x, c2)
	first := f.s.PendingConflict()
	require.Equal(t, st.Eq(c1, c2), first)

	// an independent conflict in the same frame is not processed
	u := f.str("u")
	s.AssertEqual(u, st.Concat(st.Str("p"), f.str("r")))
	s.AssertEqual(u, st.Concat(st.Str("q"), f.str("s")))
	assert.False(t, f.ee.HasTerm(u))
	assert.Equal(t, first, f.s.PendingConflict())

	assert.Equal(t, inter.Conflict, s.Check(context.Background(), inter.EffortStandard))
	assert.Equal(t, inter.Conflict, s.Check(context.Background(), inter.EffortFull))
	assert.Equal(t, []z.Term{first}, k.conflicts)
	assert.True(t, f.s.InConflict())

	f.c.Pop()
	assert.False(t, f.s.InConflict())
	assert.Equal(t, z.TermNull, f.s.PendingConflict())
	assert.Equal(t, inter.None, s.Check(context.Background(), inter.EffortStandard))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.EagerConflicts))
}

func TestSolverConstantMember(t *testing.T) {
	f := newFixture()
	s, k := newSolver(f, DefaultOptions())
	st := f.st
	x := f.str("x")
	s.AssertEqual(x, st.Concat(st.Str("abc"), f.str("y")))
	s.AssertEqual(x, st.Str("ab"))
	require.NotEqual(t, z.TermNull, f.s.PendingConflict())
	assert.Equal(t, inter.Conflict, s.Check(context.Background(), inter.EffortStandard))
	assert.Len(t, k.conflicts, 1)
}

func TestSolverInRe(t *testing.T) {
	f := newFixture()
	s, _ := newSolver(f, DefaultOptions())
	st := f.st
	x := f.str("x")
	sigma := st.ReStar(st.StrToRe(f.str("any")))
	re := st.ReConcat(st.StrToRe(st.Str("ab")), sigma)
	s.AssertInRe(x, re, true)
	ei := f.s.EqcInfo(x, false)
	require.NotNil(t, ei)
	assert.Equal(t, st.Str("ab"), ei.Prefix().Const)

	s.AssertEqual(x, st.Concat(st.Str("b"), f.str("y")))
	assert.Equal(t, st.And(st.InRe(x, re), st.Eq(st.Concat(st.Str("b"), f.str("y")), x)), f.s.PendingConflict())
}

func TestSolverNegativeInReIgnored(t *testing.T) {
	f := newFixture()
	s, _ := newSolver(f, DefaultOptions())
	st := f.st
	x := f.str("x")
	re := st.ReConcat(st.StrToRe(st.Str("ab")), st.ReStar(st.StrToRe(f.str("any"))))
	s.AssertInRe(x, re, false)
	assert.Nil(t, f.s.EqcInfo(x, false))
}

func TestSolverMergeLength(t *testing.T) {
	f := newFixture()
	s, _ := newSolver(f, DefaultOptions())
	st := f.st
	x, y := f.str("x"), f.str("y")
	f.ee.Register(st.Len(y))
	f.ee.Register(x)
	s.AssertEqual(x, y)
	ei := f.s.EqcInfo(x, false)
	require.NotNil(t, ei)
	assert.Equal(t, y, ei.LengthTerm())

	l, exp := f.s.Length(x, nil)
	assert.Equal(t, st.Len(y), l)
	rx := f.s.Rep(x)
	if rx != y {
		assert.Equal(t, []z.Term{st.Eq(rx, y)}, exp)
	}
	// str.len(te) known: no explanation needed
	l, exp = f.s.LengthExp(x, y, nil)
	assert.Equal(t, st.Len(y), l)
	assert.Empty(t, exp)
}

func TestSeparateByLength(t *testing.T) {
	f := newFixture()
	s, _ := newSolver(f, DefaultOptions())
	st := f.st
	x, y, w, u := f.str("x"), f.str("y"), f.str("w"), f.str("u")
	s.AssertEqual(st.Len(x), st.Len(y))
	f.ee.Register(st.Len(w))
	f.ee.Register(u)
	cols, lts := f.s.SeparateByLength([]z.Term{x, u, w, y})
	require.Len(t, cols, 3)
	assert.Equal(t, []z.Term{x, y}, cols[0])
	assert.Equal(t, []z.Term{u}, cols[1])
	assert.Equal(t, z.TermNull, lts[1])
	assert.Equal(t, []z.Term{w}, cols[2])
	assert.Equal(t, f.s.Rep(st.Len(x)), lts[0])
}

func TestSolverCardinality(t *testing.T) {
	f := newFixture()
	opts := DefaultOptions()
	opts.AlphabetCard = 2
	reg := prometheus.NewRegistry()
	k := &sink{}
	s := NewSolver(f.s, f.ee, k, opts, NewMetrics(reg))
	f.ee.Listen(s)
	st := f.st
	x, y, w := f.str("x"), f.str("y"), f.str("w")
	s.AssertEqual(st.Len(x), st.Len(y))
	s.AssertEqual(st.Len(y), st.Len(w))
	s.AssertDisequal(x, y)
	s.AssertDisequal(y, w)
	assert.Equal(t, inter.None, s.Check(context.Background(), inter.EffortFull))

	s.AssertDisequal(x, w)
	assert.Equal(t, inter.Lemmas, s.Check(context.Background(), inter.EffortFull))
	require.Len(t, k.lemmas, 1)
	lr := f.s.Rep(st.Len(x))
	assert.Equal(t, st.Leq(st.Int(2), lr), st.Kid(k.lemmas[0], 1))
	assert.Equal(t, 2, f.s.EqcInfo(lr, false).CardinalityMark())

	// no second lemma for the same bound
	assert.Equal(t, inter.None, s.Check(context.Background(), inter.EffortFull))
	assert.Equal(t, inter.None, s.Check(context.Background(), inter.EffortStandard))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.CardinalityLemmas))
	n, err := testutil.GatherAndCount(reg, "smtcore_strings_cardinality_lemmas_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCardNeed(t *testing.T) {
	assert.Equal(t, 1, cardNeed(2, 256))
	assert.Equal(t, 1, cardNeed(256, 256))
	assert.Equal(t, 2, cardNeed(257, 256))
	assert.Equal(t, 2, cardNeed(3, 2))
	assert.Equal(t, 2, cardNeed(4, 2))
	assert.Equal(t, 3, cardNeed(5, 2))
}
