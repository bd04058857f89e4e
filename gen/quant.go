// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"fmt"

	"github.com/go-air/smtcore/term"
	"github.com/go-air/smtcore/z"
)

// Reps returns n distinct constants of sort so, named after the sort.
func Reps(st *term.Store, so z.Sort, n int) []z.Term {
	res := make([]z.Term, n)
	name := st.SortName(so)
	for i := range res {
		res[i] = st.Apply(fmt.Sprintf("%s!%d", name, i), so)
	}
	return res
}

// Forall returns (forall ((x0 s0) ...) (pred x0 ...)) where pred is an
// uninterpreted predicate.
func Forall(st *term.Store, pred string, sorts ...z.Sort) z.Term {
	vs := make([]z.Term, len(sorts))
	for i, so := range sorts {
		vs[i] = st.Bound(fmt.Sprintf("x%d", i), so)
	}
	return st.Forall(vs, st.Apply(pred, z.SortBool, vs...))
}

// RandSorts returns n sorts drawn from sorts.
func RandSorts(sorts []z.Sort, n int) []z.Sort {
	mu.Lock()
	defer mu.Unlock()
	res := make([]z.Sort, n)
	for i := range res {
		res[i] = sorts[rng.Intn(len(sorts))]
	}
	return res
}
