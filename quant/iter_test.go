// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package quant

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-air/smtcore/z"
)

func collect(it *Iterator) [][]z.Term {
	var res [][]z.Term
	for ; !it.Done(); it.Next() {
		res = append(res, it.Tuple(nil))
	}
	return res
}

func TestIteratorLex(t *testing.T) {
	it := NewIterator([][]z.Term{{1, 2}, {3, 4, 5}})
	exp := [][]z.Term{{1, 3}, {1, 4}, {1, 5}, {2, 3}, {2, 4}, {2, 5}}
	got := collect(it)
	if d := cmp.Diff(exp, got); d != "" {
		t.Errorf("order (-want +got):\n%s", d)
	}
	if it.Size() != 6 {
		t.Errorf("size %d", it.Size())
	}
	it.Reset()
	if d := cmp.Diff(exp, collect(it)); d != "" {
		t.Errorf("after reset (-want +got):\n%s", d)
	}
}

func TestIteratorEmpty(t *testing.T) {
	it := NewIterator([][]z.Term{{1, 2}, {}})
	if !it.Done() {
		t.Errorf("empty domain not done")
	}
	if it.Size() != 0 {
		t.Errorf("size %d", it.Size())
	}
	it = NewIterator(nil)
	if got := collect(it); len(got) != 1 || len(got[0]) != 0 {
		t.Errorf("no domains: %v", got)
	}
}
