// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "fmt"

// Term is a handle on a hash-consed term.  Two terms built
// in the same store are structurally equal iff their handles
// are equal.
type Term uint32

// TermNull is the null term, it is never returned by a store
// constructor.
const TermNull Term = 0

// IsNull returns whether t is TermNull.
func (t Term) IsNull() bool {
	return t == TermNull
}

func (t Term) String() string {
	if t == TermNull {
		return "tnull"
	}
	return fmt.Sprintf("t%d", uint32(t))
}

// Terms is a sequence of terms.
type Terms []Term

// Index returns the position of t in ts, or -1.
func (ts Terms) Index(t Term) int {
	for i, u := range ts {
		if u == t {
			return i
		}
	}
	return -1
}

// Uniq removes duplicates from ts in place, keeping the first
// occurrence, and returns the result.
func (ts Terms) Uniq() Terms {
	seen := make(map[Term]struct{}, len(ts))
	j := 0
	for _, t := range ts {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		ts[j] = t
		j++
	}
	return ts[:j]
}
