// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "testing"

func TestSort(t *testing.T) {
	for s := SortBool; s < SortFirstUser; s++ {
		if !s.IsBuiltin() || s.IsUninterpreted() {
			t.Errorf("builtin %s", s)
		}
	}
	u := SortFirstUser + 2
	if u.IsBuiltin() || !u.IsUninterpreted() {
		t.Errorf("user sort %s", u)
	}
	if u.String() != "S2" {
		t.Errorf("format: %s", u)
	}
	if SortNull.IsBuiltin() {
		t.Errorf("null sort builtin")
	}
}
