// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "testing"

func TestTermString(t *testing.T) {
	if TermNull.String() != "tnull" {
		t.Errorf("null term format")
	}
	if Term(33).String() != "t33" {
		t.Errorf("term format: %s", Term(33))
	}
	if !TermNull.IsNull() || Term(1).IsNull() {
		t.Errorf("IsNull")
	}
}

func TestTermsUniq(t *testing.T) {
	ts := Terms{3, 1, 3, 2, 1, 4}
	u := ts.Uniq()
	exp := Terms{3, 1, 2, 4}
	if len(u) != len(exp) {
		t.Fatalf("uniq len %d != %d", len(u), len(exp))
	}
	for i := range exp {
		if u[i] != exp[i] {
			t.Errorf("uniq[%d] = %s, expected %s", i, u[i], exp[i])
		}
	}
	if u.Index(2) != 2 || u.Index(7) != -1 {
		t.Errorf("index")
	}
}
