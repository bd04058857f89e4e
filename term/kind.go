// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package term

// Kind is the operator of a term.
type Kind uint8

const (
	KindNull Kind = iota
	Var           // free constant
	BoundVar      // variable bound by a Forall
	StrConst
	IntConst
	BoolConst
	Concat   // str.++
	Length   // str.len
	Code     // str.to_code
	Eq       // =
	Not      // not
	And      // and
	Or       // or
	Implies  // =>
	Leq      // <=
	InRe     // str.in_re
	ReConcat // re.++
	StrToRe  // str.to_re
	ReStar   // re.*
	Apply    // uninterpreted function application
	Forall   // kids are the bound variables followed by the body
)

var kindNames = [...]string{
	KindNull:  "null",
	Var:       "var",
	BoundVar:  "bvar",
	StrConst:  "sconst",
	IntConst:  "iconst",
	BoolConst: "bconst",
	Concat:    "str.++",
	Length:    "str.len",
	Code:      "str.to_code",
	Eq:        "=",
	Not:       "not",
	And:       "and",
	Or:        "or",
	Implies:   "=>",
	Leq:       "<=",
	InRe:      "str.in_re",
	ReConcat:  "re.++",
	StrToRe:   "str.to_re",
	ReStar:    "re.*",
	Apply:     "apply",
	Forall:    "forall"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

// IsConst returns whether k is a value kind.
func (k Kind) IsConst() bool {
	return k == StrConst || k == IntConst || k == BoolConst
}

// IsAtom returns whether terms of kind k are theory atoms when
// seen from a Boolean abstraction.
func (k Kind) IsAtom() bool {
	switch k {
	case Eq, Leq, InRe, Apply, Var, Forall:
		return true
	}
	return false
}
