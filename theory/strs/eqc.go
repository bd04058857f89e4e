// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package strs

import (
	"strings"

	"github.com/go-air/smtcore/scope"
	"github.com/go-air/smtcore/term"
	"github.com/go-air/smtcore/z"
)

// Endpoint is a constant prefix or suffix together with the term
// witnessing it.  The zero Endpoint is absent.
type Endpoint struct {
	Term  z.Term
	Const z.Term
}

// IsNull returns whether p is absent.
func (p Endpoint) IsNull() bool {
	return p.Term == z.TermNull
}

// EqcInfo holds the derived facts of an equivalence class.
type EqcInfo struct {
	st         *term.Store
	lengthTerm *scope.Value[z.Term]
	codeTerm   *scope.Value[z.Term]
	cardMark   *scope.Value[int]
	normLen    *scope.Value[z.Term]
	prefix     *scope.Value[Endpoint]
	suffix     *scope.Value[Endpoint]
}

func newEqcInfo(c *scope.Context, st *term.Store) *EqcInfo {
	return &EqcInfo{
		st:         st,
		lengthTerm: scope.NewValue(c, z.TermNull),
		codeTerm:   scope.NewValue(c, z.TermNull),
		cardMark:   scope.NewValue(c, 0),
		normLen:    scope.NewValue(c, z.TermNull),
		prefix:     scope.NewValue(c, Endpoint{}),
		suffix:     scope.NewValue(c, Endpoint{})}
}

// LengthTerm returns the term whose length stands for the length of
// the class.
func (e *EqcInfo) LengthTerm() z.Term { return e.lengthTerm.Get() }

// SetLengthTerm sets the length witness.
func (e *EqcInfo) SetLengthTerm(t z.Term) { e.lengthTerm.Set(t) }

// CodeTerm returns the cached str.to_code term of the class.
func (e *EqcInfo) CodeTerm() z.Term { return e.codeTerm.Get() }

// SetCodeTerm sets the code term.
func (e *EqcInfo) SetCodeTerm(t z.Term) { e.codeTerm.Set(t) }

// CardinalityMark returns the largest bound for which a cardinality
// lemma was sent for this length class.
func (e *EqcInfo) CardinalityMark() int { return e.cardMark.Get() }

// SetCardinalityMark sets the cardinality mark.
func (e *EqcInfo) SetCardinalityMark(k int) { e.cardMark.Set(k) }

// NormalizedLength returns the cached normalized length.
func (e *EqcInfo) NormalizedLength() z.Term { return e.normLen.Get() }

// SetNormalizedLength sets the normalized length.
func (e *EqcInfo) SetNormalizedLength(t z.Term) { e.normLen.Set(t) }

// Prefix returns the strongest known constant prefix.
func (e *EqcInfo) Prefix() Endpoint { return e.prefix.Get() }

// Suffix returns the strongest known constant suffix.
func (e *EqcInfo) Suffix() Endpoint { return e.suffix.Get() }

// AddEndpointConst records that t, a member of the class, has constant
// prefix (or suffix if isSuf) c.  If c is z.TermNull it is computed from t.
//
// AddEndpointConst returns z.TermNull, or a conjunction of facts which
// together with the recorded endpoint are inconsistent.  A weaker endpoint
// than the recorded one is ignored.
func (e *EqcInfo) AddEndpointConst(t, c z.Term, isSuf bool) z.Term {
	if c == z.TermNull {
		c = ConstantEndpoint(e.st, t, isSuf)
		if c == z.TermNull {
			return z.TermNull
		}
	}
	side := e.prefix
	if isSuf {
		side = e.suffix
	}
	prev := side.Get()
	if !prev.IsNull() {
		tConst := e.st.Kind(t) == term.StrConst
		pConst := e.st.Kind(prev.Term) == term.StrConst
		conflict := false
		if c != prev.Const {
			ps, cs := e.st.StrVal(prev.Const), e.st.StrVal(c)
			pvs, cvs := len(ps), len(cs)
			if pvs == cvs || (pvs > cvs && tConst) || (cvs > pvs && pConst) {
				conflict = true
			} else {
				larges, smalls := ps, cs
				if cvs > pvs {
					larges, smalls = cs, ps
				}
				if isSuf {
					conflict = !strings.HasSuffix(larges, smalls)
				} else {
					conflict = !strings.HasPrefix(larges, smalls)
				}
				if !conflict && (pvs > cvs || pConst) {
					return z.TermNull
				}
			}
		} else if !tConst {
			return z.TermNull
		}
		if conflict {
			return e.explain(t, prev.Term)
		}
	}
	side.Set(Endpoint{Term: t, Const: c})
	return z.TermNull
}

func (e *EqcInfo) explain(t, prev z.Term) z.Term {
	var ccs []z.Term
	var r [2]z.Term
	for i, tp := range [2]z.Term{t, prev} {
		if e.st.Kind(tp) == term.InRe {
			ccs = append(ccs, tp)
			r[i] = e.st.Kid(tp, 0)
			continue
		}
		r[i] = tp
	}
	if r[0] != r[1] {
		ccs = append(ccs, e.st.Eq(r[0], r[1]))
	}
	return e.st.And(ccs...)
}

// ConstantComponent returns the string constant t denotes, either as a
// constant or as str.to_re of a constant, or z.TermNull.
func ConstantComponent(st *term.Store, t z.Term) z.Term {
	if st.Kind(t) == term.StrToRe {
		t = st.Kid(t, 0)
	}
	if st.Kind(t) == term.StrConst {
		return t
	}
	return z.TermNull
}

// ConstantEndpoint returns the constant first (or last if isSuf) component
// of t.  Memberships are looked at through their regular expression.
func ConstantEndpoint(st *term.Store, t z.Term, isSuf bool) z.Term {
	if st.Kind(t) == term.InRe {
		t = st.Kid(t, 1)
	}
	switch st.Kind(t) {
	case term.Concat, term.ReConcat:
		i := 0
		if isSuf {
			i = st.NumKids(t) - 1
		}
		t = st.Kid(t, i)
	}
	return ConstantComponent(st, t)
}
