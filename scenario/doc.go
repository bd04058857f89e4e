// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package scenario reads problems for a Core from YAML.
//
// A scenario declares uninterpreted sorts with their representatives,
// string variables, facts and quantified formulas.  Facts and formulas are
// written as Go expressions:
//
//	requires: "1.2"
//	sorts:
//	  U: [a, b]
//	vars: [x, y]
//	facts:
//	  - x == "ab" + y
//	  - in(x, "a" + star("b"))
//	  - '!in(y, "c")'
//	  - len(x) == len(y)
//	quantifiers:
//	  - forall: func(u U) bool { return P(u) || u == a }
//	    axiom: true
//
// String terms are built from variables, quoted constants, + and len.
// Regular expressions are built from quoted constants, + and star.
// Formula bodies may use ==, !=, !, &&, ||, implies, in and calls of
// uninterpreted predicates.
//
// A scenario which sets requires is rejected by versions of smtcore with
// another major version or an older minor or patch version.
package scenario
