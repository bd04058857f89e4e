// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"github.com/go-air/smtcore/term"
	"github.com/go-air/smtcore/z"
)

// EndpointFact is the equality Lhs = Rhs where Rhs is a concatenation
// with a constant prefix or suffix, or a string constant.
type EndpointFact struct {
	Lhs, Rhs z.Term
}

// EndpointFacts returns n random facts equating a variable of xs to a
// concatenation of a random constant over alphabet with a variable of ys
// (on either side), or, rarely, to a constant.
func EndpointFacts(st *term.Store, xs, ys []z.Term, n int, alphabet string, maxLen int) []EndpointFact {
	mu.Lock()
	defer mu.Unlock()
	res := make([]EndpointFact, 0, n)
	for i := 0; i < n; i++ {
		x := xs[rng.Intn(len(xs))]
		c := st.Str(randString(alphabet, maxLen))
		var rhs z.Term
		switch rng.Intn(5) {
		case 0:
			rhs = c
		case 1, 2:
			rhs = st.Concat(c, ys[rng.Intn(len(ys))])
		default:
			rhs = st.Concat(ys[rng.Intn(len(ys))], c)
		}
		res = append(res, EndpointFact{Lhs: x, Rhs: rhs})
	}
	return res
}
