// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package term

import (
	"fmt"

	"github.com/go-air/smtcore/z"
)

// True returns the Boolean constant true.
func (s *Store) True() z.Term { return s.tt }

// False returns the Boolean constant false.
func (s *Store) False() z.Term { return s.ff }

// Bool returns the Boolean constant b.
func (s *Store) Bool(b bool) z.Term {
	if b {
		return s.tt
	}
	return s.ff
}

// Str returns the string constant v.
func (s *Store) Str(v string) z.Term {
	return s.mk(StrConst, z.SortString, v, 0)
}

// Int returns the integer constant i.
func (s *Store) Int(i int64) z.Term {
	return s.mk(IntConst, z.SortInt, "", i)
}

// Var returns the free constant named name of sort so.
func (s *Store) Var(name string, so z.Sort) z.Term {
	return s.mk(Var, so, name, 0)
}

// Bound returns the bound variable named name of sort so.
func (s *Store) Bound(name string, so z.Sort) z.Term {
	return s.mk(BoundVar, so, name, 0)
}

// Concat returns the string concatenation of ts.  Nested
// concatenations are flattened.
func (s *Store) Concat(ts ...z.Term) z.Term {
	flat := make([]z.Term, 0, len(ts))
	for _, t := range ts {
		s.checkSort(t, z.SortString)
		if s.Kind(t) == Concat {
			flat = append(flat, s.Kids(t)...)
			continue
		}
		flat = append(flat, t)
	}
	switch len(flat) {
	case 0:
		return s.Str("")
	case 1:
		return flat[0]
	}
	return s.mk(Concat, z.SortString, "", 0, flat...)
}

// Len returns the length of string term t.  The length of a
// constant is folded.
func (s *Store) Len(t z.Term) z.Term {
	s.checkSort(t, z.SortString)
	if s.Kind(t) == StrConst {
		return s.Int(int64(len(s.StrVal(t))))
	}
	return s.mk(Length, z.SortInt, "", 0, t)
}

// Code returns str.to_code(t).
func (s *Store) Code(t z.Term) z.Term {
	s.checkSort(t, z.SortString)
	return s.mk(Code, z.SortInt, "", 0, t)
}

// Eq returns the equality a = b.  Arguments are ordered so that
// Eq(a, b) == Eq(b, a), and Eq(a, a) is true.
func (s *Store) Eq(a, b z.Term) z.Term {
	if s.Sort(a) != s.Sort(b) {
		panic(fmt.Sprintf("term: ill sorted equality %s = %s", s.String(a), s.String(b)))
	}
	if a == b {
		return s.tt
	}
	if a > b {
		a, b = b, a
	}
	return s.mk(Eq, z.SortBool, "", 0, a, b)
}

// Not returns the negation of t.
func (s *Store) Not(t z.Term) z.Term {
	s.checkSort(t, z.SortBool)
	switch t {
	case s.tt:
		return s.ff
	case s.ff:
		return s.tt
	}
	if s.Kind(t) == Not {
		return s.Kid(t, 0)
	}
	return s.mk(Not, z.SortBool, "", 0, t)
}

// And returns the conjunction of ts.  The empty conjunction is true,
// a singleton is returned unwrapped.
func (s *Store) And(ts ...z.Term) z.Term {
	return s.junction(And, s.tt, ts)
}

// Or returns the disjunction of ts.
func (s *Store) Or(ts ...z.Term) z.Term {
	return s.junction(Or, s.ff, ts)
}

func (s *Store) junction(k Kind, unit z.Term, ts []z.Term) z.Term {
	ks := make([]z.Term, 0, len(ts))
	for _, t := range ts {
		s.checkSort(t, z.SortBool)
		if t == unit {
			continue
		}
		ks = append(ks, t)
	}
	switch len(ks) {
	case 0:
		return unit
	case 1:
		return ks[0]
	}
	return s.mk(k, z.SortBool, "", 0, ks...)
}

// Implies returns a => b.
func (s *Store) Implies(a, b z.Term) z.Term {
	s.checkSort(a, z.SortBool)
	s.checkSort(b, z.SortBool)
	return s.mk(Implies, z.SortBool, "", 0, a, b)
}

// Leq returns a <= b over integers.
func (s *Store) Leq(a, b z.Term) z.Term {
	s.checkSort(a, z.SortInt)
	s.checkSort(b, z.SortInt)
	return s.mk(Leq, z.SortBool, "", 0, a, b)
}

// InRe returns the membership x in r.
func (s *Store) InRe(x, r z.Term) z.Term {
	s.checkSort(x, z.SortString)
	s.checkSort(r, z.SortRegLan)
	return s.mk(InRe, z.SortBool, "", 0, x, r)
}

// ReConcat returns the concatenation of regular expressions rs.
func (s *Store) ReConcat(rs ...z.Term) z.Term {
	flat := make([]z.Term, 0, len(rs))
	for _, r := range rs {
		s.checkSort(r, z.SortRegLan)
		if s.Kind(r) == ReConcat {
			flat = append(flat, s.Kids(r)...)
			continue
		}
		flat = append(flat, r)
	}
	if len(flat) == 1 {
		return flat[0]
	}
	if len(flat) == 0 {
		return s.StrToRe(s.Str(""))
	}
	return s.mk(ReConcat, z.SortRegLan, "", 0, flat...)
}

// StrToRe returns the regular expression matching exactly t.
func (s *Store) StrToRe(t z.Term) z.Term {
	s.checkSort(t, z.SortString)
	return s.mk(StrToRe, z.SortRegLan, "", 0, t)
}

// ReStar returns r*.
func (s *Store) ReStar(r z.Term) z.Term {
	s.checkSort(r, z.SortRegLan)
	return s.mk(ReStar, z.SortRegLan, "", 0, r)
}

// Apply returns the application of the uninterpreted symbol fn with
// result sort so to args.
func (s *Store) Apply(fn string, so z.Sort, args ...z.Term) z.Term {
	return s.mk(Apply, so, fn, 0, args...)
}

// Forall returns the universal closure of body over vars, which must
// be bound variables.
func (s *Store) Forall(vars []z.Term, body z.Term) z.Term {
	if len(vars) == 0 {
		return body
	}
	s.checkSort(body, z.SortBool)
	kids := make([]z.Term, 0, len(vars)+1)
	for _, v := range vars {
		if s.Kind(v) != BoundVar {
			panic(fmt.Sprintf("term: %s is not a bound variable", s.String(v)))
		}
		kids = append(kids, v)
	}
	kids = append(kids, body)
	return s.mk(Forall, z.SortBool, "", 0, kids...)
}

// Vars returns the bound variables of a Forall.
func (s *Store) Vars(f z.Term) []z.Term {
	ks := s.Kids(f)
	return ks[:len(ks)-1]
}

// Body returns the body of a Forall.
func (s *Store) Body(f z.Term) z.Term {
	ks := s.Kids(f)
	return ks[len(ks)-1]
}

func (s *Store) checkSort(t z.Term, so z.Sort) {
	if s.Sort(t) != so {
		panic(fmt.Sprintf("term: %s has sort %s, expected %s", s.String(t), s.SortName(s.Sort(t)), so))
	}
}
