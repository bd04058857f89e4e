// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package eq

import (
	"github.com/sirupsen/logrus"

	"github.com/go-air/smtcore/inter"
	"github.com/go-air/smtcore/scope"
	"github.com/go-air/smtcore/term"
	"github.com/go-air/smtcore/z"
)

// E is an equality engine.
type E struct {
	st      *term.Store
	parent  *scope.Map[z.Term, z.Term]
	size    *scope.Map[z.Term, int]
	next    *scope.Map[z.Term, z.Term]
	terms   *scope.List[z.Term]
	diseqs  *scope.List[[2]z.Term]
	asserts *scope.List[z.Term]
	lsns    []inter.Notify
	log     logrus.FieldLogger
}

// New creates an equality engine over st whose state is scoped by c.
func New(c *scope.Context, st *term.Store, log logrus.FieldLogger) *E {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &E{
		st:      st,
		parent:  scope.NewMap[z.Term, z.Term](c),
		size:    scope.NewMap[z.Term, int](c),
		next:    scope.NewMap[z.Term, z.Term](c),
		terms:   scope.NewList[z.Term](c),
		diseqs:  scope.NewList[[2]z.Term](c),
		asserts: scope.NewList[z.Term](c),
		log:     log.WithField("component", "eq")}
}

// Listen adds n to the listeners notified of new classes and
// merges.
func (e *E) Listen(n inter.Notify) {
	e.lsns = append(e.lsns, n)
}

// HasTerm returns whether t is registered.
func (e *E) HasTerm(t z.Term) bool {
	return e.parent.Has(t)
}

// Register registers t and its children.  The children of a
// quantified formula are not registered.
func (e *E) Register(t z.Term) {
	if t == z.TermNull || e.HasTerm(t) {
		return
	}
	if e.st.Kind(t) != term.Forall {
		for _, k := range e.st.Kids(t) {
			e.Register(k)
		}
	}
	e.parent.Set(t, t)
	e.size.Set(t, 1)
	e.next.Set(t, t)
	e.terms.Append(t)
	for _, l := range e.lsns {
		l.NewClass(t)
	}
}

// Rep returns the representative of t, or t if t is not registered.
func (e *E) Rep(t z.Term) z.Term {
	for {
		p, ok := e.parent.Get(t)
		if !ok || p == t {
			return t
		}
		t = p
	}
}

// AreEqual returns whether a and b are registered and in the same
// class.
func (e *E) AreEqual(a, b z.Term) bool {
	if a == b {
		return true
	}
	if !e.HasTerm(a) || !e.HasTerm(b) {
		return false
	}
	return e.Rep(a) == e.Rep(b)
}

// AreDisequal returns whether a and b are known to be distinct, either
// because their representatives are distinct constants or because a
// disequality between their classes was asserted.  An unregistered term
// is its own representative.
func (e *E) AreDisequal(a, b z.Term) bool {
	ra, rb := e.Rep(a), e.Rep(b)
	if ra == rb {
		return false
	}
	if e.st.IsConst(ra) && e.st.IsConst(rb) {
		return true
	}
	if !e.HasTerm(a) || !e.HasTerm(b) {
		return false
	}
	return e.diseqWitness(ra, rb) != nil
}

func (e *E) diseqWitness(ra, rb z.Term) *[2]z.Term {
	ds := e.diseqs.Items()
	for i := range ds {
		x, y := e.Rep(ds[i][0]), e.Rep(ds[i][1])
		if (x == ra && y == rb) || (x == rb && y == ra) {
			return &ds[i]
		}
	}
	return nil
}

// Members returns the members of the class of rep, starting with rep.
func (e *E) Members(rep z.Term) []z.Term {
	if !e.HasTerm(rep) {
		return []z.Term{rep}
	}
	res := []z.Term{rep}
	for t, _ := e.next.Get(rep); t != rep; t, _ = e.next.Get(t) {
		res = append(res, t)
	}
	return res
}

// Reps returns the current representatives in registration order.
func (e *E) Reps() []z.Term {
	var res []z.Term
	for _, t := range e.terms.Items() {
		if e.Rep(t) == t {
			res = append(res, t)
		}
	}
	return res
}

// Terms returns all registered terms in registration order.
func (e *E) Terms() []z.Term {
	return e.terms.Items()
}

// AssertEqual merges the classes of a and b, registering them if
// needed.  It returns an explanation of a conflict, or z.TermNull.
func (e *E) AssertEqual(a, b z.Term) z.Term {
	e.Register(a)
	e.Register(b)
	fact := e.st.Eq(a, b)
	if fact == e.st.True() {
		return z.TermNull
	}
	e.asserts.Append(fact)
	ra, rb := e.Rep(a), e.Rep(b)
	if ra == rb {
		return z.TermNull
	}
	if e.st.IsConst(ra) && e.st.IsConst(rb) {
		return e.explain(fact, a, ra, b, rb)
	}
	if d := e.diseqWitness(ra, rb); d != nil {
		deq := e.st.Not(e.st.Eq(d[0], d[1]))
		return e.st.And(e.explainAll(), deq)
	}
	w, l := ra, rb
	switch {
	case e.st.IsConst(rb):
		w, l = rb, ra
	case e.st.IsConst(ra):
	default:
		sa, _ := e.size.Get(ra)
		sb, _ := e.size.Get(rb)
		if sb > sa {
			w, l = rb, ra
		}
	}
	e.log.WithFields(logrus.Fields{
		"winner": e.st.String(w),
		"loser":  e.st.String(l)}).Trace("merge")
	for _, n := range e.lsns {
		n.PreMerge(w, l)
	}
	e.parent.Set(l, w)
	sw, _ := e.size.Get(w)
	sl, _ := e.size.Get(l)
	e.size.Set(w, sw+sl)
	nw, _ := e.next.Get(w)
	nl, _ := e.next.Get(l)
	e.next.Set(w, nl)
	e.next.Set(l, nw)
	return z.TermNull
}

// AssertDisequal records a != b.  It returns an explanation of a conflict
// when a and b are already equal, or z.TermNull.
func (e *E) AssertDisequal(a, b z.Term) z.Term {
	e.Register(a)
	e.Register(b)
	if a == b {
		return e.st.True()
	}
	deq := e.st.Not(e.st.Eq(a, b))
	if e.Rep(a) == e.Rep(b) {
		return e.st.And(e.explainAll(), deq)
	}
	e.diseqs.Append([2]z.Term{a, b})
	return z.TermNull
}

// explain builds the explanation of a clash between the distinct constants
// ra and rb caused by asserting fact = (a = b).
func (e *E) explain(fact, a, ra, b, rb z.Term) z.Term {
	if a == ra && b == rb {
		return fact
	}
	return e.explainAll()
}

// explainAll returns the conjunction of all equalities asserted in the
// current scope.  It is sound but not minimal.
func (e *E) explainAll() z.Term {
	as := e.asserts.Items()
	cp := make([]z.Term, len(as))
	copy(cp, as)
	return e.st.And(cp...)
}
