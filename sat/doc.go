// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package sat provides an inter.Sink which abstracts the Boolean structure
// of conflicts and lemmas onto a gini SAT solver.
//
// Atoms (equalities, memberships, applications, quantified formulas) each
// get one literal of a logic.C circuit.  Connectives are encoded in the
// circuit and reach the solver through Tseitin clauses, added
// incrementally as new roots appear.
package sat
