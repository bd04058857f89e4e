// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package term

import (
	"fmt"

	"github.com/go-air/smtcore/z"
)

// Make rebuilds a term of kind k from kids, applying the same
// folding as the kind's constructor.  name and so are only used
// for Apply.
func (s *Store) Make(k Kind, so z.Sort, name string, kids ...z.Term) z.Term {
	switch k {
	case Concat:
		return s.Concat(kids...)
	case Length:
		return s.Len(kids[0])
	case Code:
		return s.Code(kids[0])
	case Eq:
		return s.Eq(kids[0], kids[1])
	case Not:
		return s.Not(kids[0])
	case And:
		return s.And(kids...)
	case Or:
		return s.Or(kids...)
	case Implies:
		return s.Implies(kids[0], kids[1])
	case Leq:
		return s.Leq(kids[0], kids[1])
	case InRe:
		return s.InRe(kids[0], kids[1])
	case ReConcat:
		return s.ReConcat(kids...)
	case StrToRe:
		return s.StrToRe(kids[0])
	case ReStar:
		return s.ReStar(kids[0])
	case Apply:
		return s.Apply(name, so, kids...)
	case Forall:
		return s.Forall(kids[:len(kids)-1], kids[len(kids)-1])
	}
	panic(fmt.Sprintf("term: cannot make %s from children", k))
}

// Substitute replaces every occurrence of from[i] in t by to[i].
// Substitution does not descend into a Forall binding one of the
// replaced variables.
func (s *Store) Substitute(t z.Term, from, to []z.Term) z.Term {
	if len(from) != len(to) {
		panic("term: substitution length mismatch")
	}
	if len(from) == 0 {
		return t
	}
	sub := make(map[z.Term]z.Term, len(from))
	for i, f := range from {
		sub[f] = to[i]
	}
	memo := make(map[z.Term]z.Term)
	return s.subst(t, sub, memo)
}

func (s *Store) subst(t z.Term, sub, memo map[z.Term]z.Term) z.Term {
	if r, ok := sub[t]; ok {
		return r
	}
	if r, ok := memo[t]; ok {
		return r
	}
	n := s.node(t)
	if len(n.kids) == 0 {
		return t
	}
	if n.kind == Forall {
		for _, v := range n.kids[:len(n.kids)-1] {
			if _, ok := sub[v]; ok {
				memo[t] = t
				return t
			}
		}
	}
	changed := false
	kids := make([]z.Term, len(n.kids))
	for i, k := range n.kids {
		kids[i] = s.subst(k, sub, memo)
		if kids[i] != k {
			changed = true
		}
	}
	r := t
	if changed {
		r = s.Make(n.kind, n.sort, n.str, kids...)
	}
	memo[t] = r
	return r
}

// Contains returns whether u occurs in t.
func (s *Store) Contains(t, u z.Term) bool {
	if t == u {
		return true
	}
	for _, k := range s.Kids(t) {
		if s.Contains(k, u) {
			return true
		}
	}
	return false
}
