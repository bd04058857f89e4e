// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package strs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/smtcore/eq"
	"github.com/go-air/smtcore/gen"
	"github.com/go-air/smtcore/scope"
	"github.com/go-air/smtcore/term"
	"github.com/go-air/smtcore/theory"
	"github.com/go-air/smtcore/z"
)

type fixture struct {
	c  *scope.Context
	st *term.Store
	ee *eq.E
	s  *State
}

func newFixture() *fixture {
	c := scope.New()
	st := term.NewStore()
	ee := eq.New(c, st, nil)
	return &fixture{c: c, st: st, ee: ee, s: NewState(theory.NewState(c, st, ee, nil))}
}

func (f *fixture) str(name string) z.Term {
	return f.st.Var(name, z.SortString)
}

func TestEndpointIdempotent(t *testing.T) {
	f := newFixture()
	x := f.str("x")
	w := f.st.Concat(f.st.Str("ab"), f.str("y"))
	ei := f.s.EqcInfo(x, true)
	require.Equal(t, z.TermNull, ei.AddEndpointConst(w, f.st.Str("ab"), false))
	before := ei.Prefix()
	assert.Equal(t, z.TermNull, ei.AddEndpointConst(w, f.st.Str("ab"), false))
	assert.Equal(t, before, ei.Prefix())

	// a full constant re-asserted is also a no-op
	ab := f.st.Str("ab")
	e2 := f.s.EqcInfo(f.str("v"), true)
	require.Equal(t, z.TermNull, e2.AddEndpointConst(ab, ab, true))
	assert.Equal(t, z.TermNull, e2.AddEndpointConst(ab, ab, true))
	assert.Equal(t, Endpoint{Term: ab, Const: ab}, e2.Suffix())
}

func TestEndpointSubsumption(t *testing.T) {
	f := newFixture()
	ab := f.st.Str("ab")
	ei := f.s.EqcInfo(f.str("x"), true)
	require.Equal(t, z.TermNull, ei.AddEndpointConst(ab, ab, false))
	w := f.st.Concat(f.st.Str("a"), f.str("y"))
	assert.Equal(t, z.TermNull, ei.AddEndpointConst(w, z.TermNull, false))
	assert.Equal(t, Endpoint{Term: ab, Const: ab}, ei.Prefix())
}

func TestEndpointConflict(t *testing.T) {
	f := newFixture()
	x := f.str("x")
	ei := f.s.EqcInfo(x, true)
	w1 := f.st.Concat(f.st.Str("ab"), f.str("y"))
	w2 := f.st.Concat(f.st.Str("ac"), f.str("v"))
	require.Equal(t, z.TermNull, ei.AddEndpointConst(w1, z.TermNull, false))
	c := ei.AddEndpointConst(w2, z.TermNull, false)
	assert.Equal(t, f.st.Eq(w2, w1), c)
	// the recorded endpoint is unchanged
	assert.Equal(t, w1, ei.Prefix().Term)
}

func TestEndpointConflictFullConstant(t *testing.T) {
	f := newFixture()
	ei := f.s.EqcInfo(f.str("x"), true)
	w := f.st.Concat(f.st.Str("abc"), f.str("y"))
	require.Equal(t, z.TermNull, ei.AddEndpointConst(w, z.TermNull, false))
	// "ab" is a prefix of "abc" but a full constant "ab" cannot start with "abc"
	ab := f.st.Str("ab")
	assert.NotEqual(t, z.TermNull, ei.AddEndpointConst(ab, ab, false))
}

func TestEndpointContainment(t *testing.T) {
	f := newFixture()
	w1 := f.st.Concat(f.st.Str("ab"), f.str("y"))
	w2 := f.st.Concat(f.st.Str("abc"), f.str("v"))

	ei := f.s.EqcInfo(f.str("x"), true)
	require.Equal(t, z.TermNull, ei.AddEndpointConst(w1, z.TermNull, false))
	require.Equal(t, z.TermNull, ei.AddEndpointConst(w2, z.TermNull, false))
	assert.Equal(t, f.st.Str("abc"), ei.Prefix().Const)

	e2 := f.s.EqcInfo(f.str("u"), true)
	require.Equal(t, z.TermNull, e2.AddEndpointConst(w2, z.TermNull, false))
	require.Equal(t, z.TermNull, e2.AddEndpointConst(w1, z.TermNull, false))
	assert.Equal(t, f.st.Str("abc"), e2.Prefix().Const)
}

func TestEndpointSuffix(t *testing.T) {
	f := newFixture()
	ei := f.s.EqcInfo(f.str("x"), true)
	w1 := f.st.Concat(f.str("y"), f.st.Str("bc"))
	w2 := f.st.Concat(f.str("v"), f.st.Str("abc"))
	w3 := f.st.Concat(f.str("u"), f.st.Str("xc"))
	require.Equal(t, z.TermNull, ei.AddEndpointConst(w1, z.TermNull, true))
	require.Equal(t, z.TermNull, ei.AddEndpointConst(w2, z.TermNull, true))
	assert.Equal(t, f.st.Str("abc"), ei.Suffix().Const)
	assert.NotEqual(t, z.TermNull, ei.AddEndpointConst(w3, z.TermNull, true))
	assert.True(t, ei.Prefix().IsNull())
}

func TestEndpointRegexExplanation(t *testing.T) {
	f := newFixture()
	x := f.str("x")
	y := f.str("y")
	re := f.st.ReConcat(f.st.StrToRe(f.st.Str("ab")), f.st.ReStar(f.st.StrToRe(f.st.Str("c"))))
	m := f.st.InRe(y, re)
	w := f.st.Concat(f.st.Str("b"), f.str("v"))
	ei := f.s.EqcInfo(x, true)
	require.Equal(t, z.TermNull, ei.AddEndpointConst(m, z.TermNull, false))
	assert.Equal(t, f.st.Str("ab"), ei.Prefix().Const)
	c := ei.AddEndpointConst(w, z.TermNull, false)
	assert.Equal(t, f.st.And(m, f.st.Eq(w, y)), c)
}

func TestEndpointBacktrack(t *testing.T) {
	f := newFixture()
	x := f.str("x")
	w1 := f.st.Concat(f.st.Str("ab"), f.str("y"))
	w2 := f.st.Concat(f.st.Str("abc"), f.str("v"))

	f.c.Push()
	ei := f.s.EqcInfo(x, true)
	require.Equal(t, z.TermNull, ei.AddEndpointConst(w1, z.TermNull, false))
	f.c.Pop()
	assert.True(t, ei.Prefix().IsNull())

	require.Equal(t, z.TermNull, ei.AddEndpointConst(w1, z.TermNull, false))
	f.c.Push()
	require.Equal(t, z.TermNull, ei.AddEndpointConst(w2, z.TermNull, false))
	assert.Equal(t, w2, ei.Prefix().Term)
	f.c.Pop()
	assert.Equal(t, w1, ei.Prefix().Term)
}

func TestConstantEndpoint(t *testing.T) {
	f := newFixture()
	st := f.st
	y := f.str("y")
	assert.Equal(t, st.Str("a"), ConstantEndpoint(st, st.Concat(st.Str("a"), y), false))
	assert.Equal(t, z.TermNull, ConstantEndpoint(st, st.Concat(st.Str("a"), y), true))
	assert.Equal(t, st.Str("q"), ConstantEndpoint(st, st.Str("q"), true))
	assert.Equal(t, z.TermNull, ConstantEndpoint(st, y, false))
	re := st.ReConcat(st.ReStar(st.StrToRe(y)), st.StrToRe(st.Str("z")))
	assert.Equal(t, st.Str("z"), ConstantEndpoint(st, st.InRe(y, re), true))
	assert.Equal(t, z.TermNull, ConstantEndpoint(st, st.InRe(y, re), false))
}

// compatible returns whether some string satisfies both prefix records.
func compatible(st *term.Store, p, q Endpoint) bool {
	ps, qs := st.StrVal(p.Const), st.StrVal(q.Const)
	pf, qf := st.Kind(p.Term) == term.StrConst, st.Kind(q.Term) == term.StrConst
	switch {
	case pf && qf:
		return ps == qs
	case pf:
		return strings.HasPrefix(ps, qs)
	case qf:
		return strings.HasPrefix(qs, ps)
	}
	return strings.HasPrefix(ps, qs) || strings.HasPrefix(qs, ps)
}

func TestEndpointRandom(t *testing.T) {
	gen.Seed(7)
	conflicts := 0
	for i := 0; i < 300; i++ {
		f := newFixture()
		xs := gen.StrVars(f.st, "x", 1)
		ys := gen.StrVars(f.st, "y", 3)
		ei := f.s.EqcInfo(xs[0], true)
		for _, fact := range gen.EndpointFacts(f.st, xs, ys, 6, "ab", 3) {
			c := ConstantEndpoint(f.st, fact.Rhs, false)
			if c == z.TermNull {
				continue
			}
			prev := ei.Prefix()
			q := Endpoint{Term: fact.Rhs, Const: c}
			expl := ei.AddEndpointConst(fact.Rhs, c, false)
			if prev.IsNull() {
				require.Equal(t, z.TermNull, expl)
				require.Equal(t, q, ei.Prefix())
				continue
			}
			if !compatible(f.st, prev, q) {
				require.NotEqual(t, z.TermNull, expl, "%s vs %s",
					f.st.String(prev.Term), f.st.String(q.Term))
				require.Equal(t, prev, ei.Prefix())
				conflicts++
				continue
			}
			require.Equal(t, z.TermNull, expl, "%s vs %s",
				f.st.String(prev.Term), f.st.String(q.Term))
			cur := f.st.StrVal(ei.Prefix().Const)
			assert.True(t, strings.HasPrefix(cur, f.st.StrVal(prev.Const)))
			assert.True(t, strings.HasPrefix(cur, f.st.StrVal(c)))
		}
	}
	assert.Greater(t, conflicts, 0)
}
