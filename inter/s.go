// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package inter

import (
	"context"

	"github.com/go-air/smtcore/z"
)

// Oracle encapsulates a congruence closure engine.
//
// Rep returns t when t is not registered.  AreEqual returns false on
// unregistered terms.  AreDisequal returns true for distinct constant
// representatives, registered or not, and otherwise needs both terms
// registered.
type Oracle interface {
	Rep(t z.Term) z.Term
	AreEqual(a, b z.Term) bool
	AreDisequal(a, b z.Term) bool
	HasTerm(t z.Term) bool
}

// Sink encapsulates the outward channel of a theory: conflicts,
// lemmas and incompleteness.
type Sink interface {
	// Conflict reports expl, a conjunction of currently asserted
	// facts which is unsatisfiable in the theory.
	Conflict(expl z.Term)

	// Lemma reports a new valid fact to be added to the global
	// fact set.
	Lemma(l z.Term)

	// SetIncomplete signals that a "satisfiable" answer in the
	// current search must be reported as unknown.
	SetIncomplete()
}

// DomainSource provides finite candidate domains per sort.
//
// Domain returns the ordered representatives of so.  exact is false
// when the result only approximates the true domain of so, and ok is
// false when no domain is known for so.  Repeated calls return the same
// sequence.
type DomainSource interface {
	Domain(so z.Sort) (terms []z.Term, exact bool, ok bool)
}

// Admitter encapsulates instantiation admission.
//
// Add returns true iff the instance of quantified formula f under binding
// was not already implied and has been queued as a new fact.
type Admitter interface {
	Add(f z.Term, binding []z.Term) bool
}

// Notify receives equivalence class events from an Oracle.
type Notify interface {
	// NewClass is called when t is registered, after its children.
	NewClass(t z.Term)

	// PreMerge is called before the class of loser is merged into
	// the class of winner.  Both arguments are representatives.
	PreMerge(winner, loser z.Term)
}

// Effort is a checkpoint of the search at which increasingly
// expensive reasoning is attempted.
type Effort int

const (
	EffortStandard Effort = iota
	EffortFull
	EffortLastCall
)

func (e Effort) String() string {
	switch e {
	case EffortStandard:
		return "standard"
	case EffortFull:
		return "full"
	case EffortLastCall:
		return "last-call"
	}
	return "?"
}

// Outcome is the result of a theory check.  Like the results of
// Solve in gini, it is a small int:
//
//	-1 a conflict was reported
//	 0 nothing was reported
//	 1 lemmas were reported
type Outcome int

const (
	Conflict Outcome = -1
	None     Outcome = 0
	Lemmas   Outcome = 1
)

func (o Outcome) String() string {
	switch o {
	case Conflict:
		return "conflict"
	case None:
		return "none"
	case Lemmas:
		return "lemmas"
	}
	return "?"
}

// TheorySolver encapsulates a theory which can be checked at a given
// effort.  Check reports results to the theory's Sink and summarizes
// them in its Outcome.
type TheorySolver interface {
	Name() string
	Check(ctx context.Context, e Effort) Outcome
}

// NeedsChecker is an optional facet of a TheorySolver which restricts
// the efforts at which it is checked.  A TheorySolver which does not
// implement NeedsChecker is checked at every effort.
type NeedsChecker interface {
	NeedsCheck(e Effort) bool
}
