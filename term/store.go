// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package term

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-air/smtcore/z"
)

type node struct {
	kind Kind
	sort z.Sort
	str  string // name or string value
	ival int64  // integer or boolean value
	kids []z.Term
}

// Store is a hash-consed term store.
type Store struct {
	nodes  []node
	strash map[string]z.Term
	sorts  []string
	sortsK map[string]z.Sort
	tt, ff z.Term
}

// NewStore creates a new store.
func NewStore() *Store {
	return NewStoreCap(128)
}

// NewStoreCap creates a new store with capacity hint capHint.
func NewStoreCap(capHint int) *Store {
	s := &Store{
		nodes:  make([]node, 1, capHint),
		strash: make(map[string]z.Term, capHint),
		sortsK: make(map[string]z.Sort)}
	s.tt = s.mk(BoolConst, z.SortBool, "", 1)
	s.ff = s.mk(BoolConst, z.SortBool, "", 0)
	return s
}

// Len returns the number of terms in s, including the null term.
func (s *Store) Len() int {
	return len(s.nodes)
}

// DeclareSort returns the uninterpreted sort named name, creating
// it if necessary.
func (s *Store) DeclareSort(name string) z.Sort {
	if so, ok := s.sortsK[name]; ok {
		return so
	}
	so := z.SortFirstUser + z.Sort(len(s.sorts))
	s.sorts = append(s.sorts, name)
	s.sortsK[name] = so
	return so
}

// LookupSort returns the sort with the given name, builtin or
// declared.
func (s *Store) LookupSort(name string) (z.Sort, bool) {
	switch name {
	case "Bool":
		return z.SortBool, true
	case "Int":
		return z.SortInt, true
	case "String":
		return z.SortString, true
	case "RegLan":
		return z.SortRegLan, true
	}
	so, ok := s.sortsK[name]
	return so, ok
}

// SortName returns the name of so.
func (s *Store) SortName(so z.Sort) string {
	if so.IsUninterpreted() {
		i := int(so - z.SortFirstUser)
		if i < len(s.sorts) {
			return s.sorts[i]
		}
	}
	return so.String()
}

func (s *Store) mk(k Kind, so z.Sort, str string, ival int64, kids ...z.Term) z.Term {
	key := strashKey(k, so, str, ival, kids)
	if t, ok := s.strash[key]; ok {
		return t
	}
	t := z.Term(len(s.nodes))
	var ks []z.Term
	if len(kids) > 0 {
		ks = make([]z.Term, len(kids))
		copy(ks, kids)
	}
	s.nodes = append(s.nodes, node{kind: k, sort: so, str: str, ival: ival, kids: ks})
	s.strash[key] = t
	return t
}

func strashKey(k Kind, so z.Sort, str string, ival int64, kids []z.Term) string {
	var b strings.Builder
	b.WriteByte(byte(k))
	b.WriteString(strconv.Itoa(int(so)))
	b.WriteByte(':')
	b.WriteString(strconv.FormatInt(ival, 10))
	b.WriteByte(':')
	b.WriteString(strconv.Quote(str))
	for _, kid := range kids {
		b.WriteByte(',')
		b.WriteString(strconv.FormatUint(uint64(kid), 10))
	}
	return b.String()
}

func (s *Store) node(t z.Term) *node {
	if t == z.TermNull || int(t) >= len(s.nodes) {
		panic(fmt.Sprintf("term: invalid term %s", t))
	}
	return &s.nodes[t]
}

// Kind returns the kind of t.
func (s *Store) Kind(t z.Term) Kind {
	if t == z.TermNull {
		return KindNull
	}
	return s.node(t).kind
}

// Sort returns the sort of t.
func (s *Store) Sort(t z.Term) z.Sort {
	if t == z.TermNull {
		return z.SortNull
	}
	return s.node(t).sort
}

// Kids returns the children of t.  The result must not be modified.
func (s *Store) Kids(t z.Term) []z.Term {
	return s.node(t).kids
}

// Kid returns the i'th child of t.
func (s *Store) Kid(t z.Term, i int) z.Term {
	return s.node(t).kids[i]
}

// NumKids returns the number of children of t.
func (s *Store) NumKids(t z.Term) int {
	return len(s.node(t).kids)
}

// Name returns the name of a variable or the function symbol of an
// application.
func (s *Store) Name(t z.Term) string {
	return s.node(t).str
}

// IsConst returns whether t is a string, integer or Boolean value.
func (s *Store) IsConst(t z.Term) bool {
	return t != z.TermNull && s.node(t).kind.IsConst()
}

// StrVal returns the value of a string constant.
func (s *Store) StrVal(t z.Term) string {
	n := s.node(t)
	if n.kind != StrConst {
		panic(fmt.Sprintf("term: %s is not a string constant", s.String(t)))
	}
	return n.str
}

// IntVal returns the value of an integer constant.
func (s *Store) IntVal(t z.Term) int64 {
	n := s.node(t)
	if n.kind != IntConst {
		panic(fmt.Sprintf("term: %s is not an integer constant", s.String(t)))
	}
	return n.ival
}

// BoolVal returns the value of a Boolean constant.
func (s *Store) BoolVal(t z.Term) bool {
	n := s.node(t)
	if n.kind != BoolConst {
		panic(fmt.Sprintf("term: %s is not a Boolean constant", s.String(t)))
	}
	return n.ival != 0
}
