// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package quant

import "github.com/go-air/smtcore/z"

// Iterator enumerates the cartesian product of a sequence of domains in
// lexicographic order: the first domain varies slowest.  It depends on
// nothing but its domains and can be restarted with Reset.
type Iterator struct {
	doms [][]z.Term
	idx  []int
	done bool
}

// NewIterator creates an iterator over doms.  The domains are not copied
// and must not change while iterating.
func NewIterator(doms [][]z.Term) *Iterator {
	it := &Iterator{doms: doms, idx: make([]int, len(doms))}
	it.Reset()
	return it
}

// Reset restarts the enumeration.
func (it *Iterator) Reset() {
	for i := range it.idx {
		it.idx[i] = 0
	}
	it.done = false
	for _, d := range it.doms {
		if len(d) == 0 {
			it.done = true
		}
	}
}

// Done returns whether all tuples have been enumerated.
func (it *Iterator) Done() bool {
	return it.done
}

// Tuple appends the current tuple to dst and returns the result.
func (it *Iterator) Tuple(dst []z.Term) []z.Term {
	for i, j := range it.idx {
		dst = append(dst, it.doms[i][j])
	}
	return dst
}

// Next advances to the next tuple.
func (it *Iterator) Next() {
	if it.done {
		return
	}
	for i := len(it.idx) - 1; i >= 0; i-- {
		it.idx[i]++
		if it.idx[i] < len(it.doms[i]) {
			return
		}
		it.idx[i] = 0
	}
	it.done = true
}

// Size returns the number of tuples.
func (it *Iterator) Size() int {
	n := 1
	for _, d := range it.doms {
		n *= len(d)
	}
	return n
}
