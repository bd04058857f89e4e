// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package quant

import (
	"math"

	"github.com/go-air/smtcore/scope"
	"github.com/go-air/smtcore/term"
	"github.com/go-air/smtcore/z"
)

// Attr holds the attributes of an asserted quantified formula.
type Attr struct {
	// Axiom marks formulas given as background axioms.
	Axiom bool
	// Conjecture marks negated conjectures.
	Conjecture bool
}

// Quantifier is an asserted quantified formula.
type Quantifier struct {
	F    z.Term
	Attr Attr
}

// FirstOrderModel is the candidate model quantified formulas are checked
// against: the asserted formulas, which of them are active, and the
// representatives of each sort.
type FirstOrderModel struct {
	st       *term.Store
	quants   *scope.List[Quantifier]
	inactive *scope.Map[z.Term, bool]
	reps     *RepSet
}

// NewFirstOrderModel creates an empty model whose assertions are scoped
// by c.
func NewFirstOrderModel(c *scope.Context, st *term.Store, reps *RepSet) *FirstOrderModel {
	if reps == nil {
		reps = NewRepSet(st)
	}
	return &FirstOrderModel{
		st:       st,
		quants:   scope.NewList[Quantifier](c),
		inactive: scope.NewMap[z.Term, bool](c),
		reps:     reps}
}

// Store returns the term store of m.
func (m *FirstOrderModel) Store() *term.Store { return m.st }

// RepSet returns the representatives of m.
func (m *FirstOrderModel) RepSet() *RepSet { return m.reps }

// AssertQuantifier adds f, which must be a Forall, to the asserted
// formulas.
func (m *FirstOrderModel) AssertQuantifier(f z.Term, a Attr) {
	if m.st.Kind(f) != term.Forall {
		panic("quant: asserted formula is not quantified")
	}
	m.quants.Append(Quantifier{F: f, Attr: a})
}

// Quantifiers returns the asserted formulas in assertion order.
func (m *FirstOrderModel) Quantifiers() []Quantifier {
	return m.quants.Items()
}

// NumAssertedQuantifiers returns the number of asserted formulas.
func (m *FirstOrderModel) NumAssertedQuantifiers() int {
	return m.quants.Len()
}

// HasAxioms returns whether some asserted formula is an axiom.
func (m *FirstOrderModel) HasAxioms() bool {
	for _, q := range m.quants.Items() {
		if q.Attr.Axiom {
			return true
		}
	}
	return false
}

// IsActive returns whether f should be checked.  Formulas are active
// unless deactivated.
func (m *FirstOrderModel) IsActive(f z.Term) bool {
	v, ok := m.inactive.Get(f)
	return !ok || !v
}

// SetActive sets whether f should be checked.
func (m *FirstOrderModel) SetActive(f z.Term, active bool) {
	m.inactive.Set(f, !active)
}

// RepSet holds the representatives of each sort in a candidate model.
// It implements inter.DomainSource.
type RepSet struct {
	st    *term.Store
	reps  map[z.Sort][]z.Term
	bound *intRange
}

type intRange struct {
	min, max, step int64
}

// NewRepSet creates an empty representative set.
func NewRepSet(st *term.Store) *RepSet {
	return &RepSet{st: st, reps: make(map[z.Sort][]z.Term)}
}

// Add appends t to the representatives of its sort, unless present.
func (r *RepSet) Add(t z.Term) {
	so := r.st.Sort(t)
	if z.Terms(r.reps[so]).Index(t) >= 0 {
		return
	}
	r.reps[so] = append(r.reps[so], t)
}

// Set sets the representatives of so.
func (r *RepSet) Set(so z.Sort, ts []z.Term) {
	cp := make([]z.Term, len(ts))
	copy(cp, ts)
	r.reps[so] = cp
}

// Clear removes all representatives.
func (r *RepSet) Clear() {
	r.reps = make(map[z.Sort][]z.Term)
}

// SetIntRange makes the integer domain the range min..max by step.
func (r *RepSet) SetIntRange(min, max, step int64) {
	r.bound = &intRange{min: min, max: max, step: step}
}

// Domain implements inter.DomainSource.  Only domains of uninterpreted
// sorts and Bool are exact.
func (r *RepSet) Domain(so z.Sort) ([]z.Term, bool, bool) {
	if so == z.SortInt && r.bound != nil && r.bound.step > 0 {
		var ts []z.Term
		for i := r.bound.min; i <= r.bound.max; i += r.bound.step {
			ts = append(ts, r.st.Int(i))
			if i > math.MaxInt64-r.bound.step {
				break
			}
		}
		return ts, false, true
	}
	if so == z.SortBool {
		if ts, ok := r.reps[so]; ok && len(ts) > 0 {
			return ts, len(ts) == 2, true
		}
		return []z.Term{r.st.False(), r.st.True()}, true, true
	}
	ts, ok := r.reps[so]
	if !ok || len(ts) == 0 {
		return nil, false, false
	}
	return ts, so.IsUninterpreted(), true
}
