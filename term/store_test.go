// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/smtcore/z"
)

func TestStrash(t *testing.T) {
	s := NewStore()
	x := s.Var("x", z.SortString)
	y := s.Var("y", z.SortString)
	a := s.Concat(s.Str("ab"), x)
	b := s.Concat(s.Str("ab"), x)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, s.Concat(s.Str("ab"), y))
	assert.Equal(t, s.Eq(x, y), s.Eq(y, x))
	assert.Equal(t, s.True(), s.Eq(x, x))
	assert.Equal(t, x, s.Var("x", z.SortString))
	// same name, different sort
	assert.NotEqual(t, x, s.Var("x", z.SortInt))
}

func TestFolding(t *testing.T) {
	s := NewStore()
	x := s.Var("x", z.SortString)
	p := s.Var("p", z.SortBool)
	assert.Equal(t, s.Int(3), s.Len(s.Str("abc")))
	assert.Equal(t, KindNull, s.Kind(z.TermNull))
	assert.Equal(t, Length, s.Kind(s.Len(x)))
	assert.Equal(t, p, s.Not(s.Not(p)))
	assert.Equal(t, s.True(), s.And())
	assert.Equal(t, p, s.And(p))
	assert.Equal(t, p, s.Or(s.False(), p))
	assert.Equal(t, s.Str(""), s.Concat())

	c := s.Concat(s.Concat(s.Str("a"), x), s.Str("b"))
	require.Equal(t, Concat, s.Kind(c))
	assert.Equal(t, 3, s.NumKids(c))
}

func TestSortPanics(t *testing.T) {
	s := NewStore()
	i := s.Var("i", z.SortInt)
	assert.Panics(t, func() { s.Len(i) })
	assert.Panics(t, func() { s.Eq(i, s.Str("a")) })
	assert.Panics(t, func() { s.Kids(z.TermNull) })
}

func TestDeclareSort(t *testing.T) {
	s := NewStore()
	u := s.DeclareSort("U")
	assert.True(t, u.IsUninterpreted())
	assert.Equal(t, u, s.DeclareSort("U"))
	v := s.DeclareSort("V")
	assert.NotEqual(t, u, v)
	assert.Equal(t, "V", s.SortName(v))
	so, ok := s.LookupSort("U")
	assert.True(t, ok)
	assert.Equal(t, u, so)
	so, ok = s.LookupSort("String")
	assert.True(t, ok)
	assert.Equal(t, z.SortString, so)
	_, ok = s.LookupSort("W")
	assert.False(t, ok)
}

func TestSubstitute(t *testing.T) {
	s := NewStore()
	u := s.DeclareSort("U")
	x := s.Bound("x", u)
	y := s.Bound("y", u)
	body := s.Apply("P", z.SortBool, x, y)
	f := s.Forall([]z.Term{x, y}, body)
	assert.Equal(t, []z.Term{x, y}, s.Vars(f))
	assert.Equal(t, body, s.Body(f))

	a := s.Var("a", u)
	b := s.Var("b", u)
	inst := s.Substitute(body, []z.Term{x, y}, []z.Term{a, b})
	assert.Equal(t, s.Apply("P", z.SortBool, a, b), inst)
	// binder shadows
	assert.Equal(t, f, s.Substitute(f, []z.Term{x}, []z.Term{a}))

	w := s.Var("w", z.SortString)
	l := s.Len(s.Concat(w, s.Var("v", z.SortString)))
	assert.True(t, s.Contains(l, w))
	k := s.Len(w)
	assert.Equal(t, s.Int(2), s.Substitute(k, []z.Term{w}, []z.Term{s.Str("hi")}))
}

func TestString(t *testing.T) {
	s := NewStore()
	x := s.Var("x", z.SortString)
	e := s.Eq(x, s.Concat(s.Str("ab"), s.Var("y", z.SortString)))
	assert.Equal(t, `(= x (str.++ "ab" y))`, s.String(e))
	assert.Equal(t, "(- 3)", s.String(s.Int(-3)))
	u := s.DeclareSort("U")
	v := s.Bound("v", u)
	f := s.Forall([]z.Term{v}, s.Apply("P", z.SortBool, v))
	assert.Equal(t, "(forall ((v U)) (P v))", s.String(f))
	assert.Equal(t, "c", s.String(s.Apply("c", u)))
}
