// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package term

import (
	"strconv"
	"strings"

	"github.com/go-air/smtcore/z"
)

// String returns t in SMT-LIB like syntax.
func (s *Store) String(t z.Term) string {
	var b strings.Builder
	s.write(&b, t)
	return b.String()
}

// Strings formats each term in ts.
func (s *Store) Strings(ts []z.Term) []string {
	res := make([]string, len(ts))
	for i, t := range ts {
		res[i] = s.String(t)
	}
	return res
}

func (s *Store) write(b *strings.Builder, t z.Term) {
	if t == z.TermNull || int(t) >= len(s.nodes) {
		b.WriteString(t.String())
		return
	}
	n := &s.nodes[t]
	switch n.kind {
	case Var, BoundVar:
		b.WriteString(n.str)
		return
	case StrConst:
		b.WriteString(strconv.Quote(n.str))
		return
	case IntConst:
		if n.ival < 0 {
			b.WriteString("(- ")
			b.WriteString(strconv.FormatInt(-n.ival, 10))
			b.WriteByte(')')
			return
		}
		b.WriteString(strconv.FormatInt(n.ival, 10))
		return
	case BoolConst:
		if n.ival != 0 {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
		return
	case Forall:
		b.WriteString("(forall (")
		for i, v := range n.kids[:len(n.kids)-1] {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte('(')
			b.WriteString(s.nodes[v].str)
			b.WriteByte(' ')
			b.WriteString(s.SortName(s.nodes[v].sort))
			b.WriteByte(')')
		}
		b.WriteString(") ")
		s.write(b, n.kids[len(n.kids)-1])
		b.WriteByte(')')
		return
	}
	op := n.kind.String()
	if n.kind == Apply {
		op = n.str
		if len(n.kids) == 0 {
			b.WriteString(op)
			return
		}
	}
	b.WriteByte('(')
	b.WriteString(op)
	for _, k := range n.kids {
		b.WriteByte(' ')
		s.write(b, k)
	}
	b.WriteByte(')')
}
