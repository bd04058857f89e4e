// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package smtcore provides Core, the decision-procedure core of an SMT
// solver: an equality engine annotated by a strings solver which detects
// prefix and suffix conflicts eagerly, and a model engine which
// exhaustively instantiates quantified formulas over a finite candidate
// model.
//
// Conflicts and lemmas are collected by a Boolean abstraction on top of
// the gini SAT solver.  All state is scoped by Push and Pop.
package smtcore
