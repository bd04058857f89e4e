// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package smtcore_test

import (
	"context"
	"fmt"

	"github.com/go-air/smtcore"
	"github.com/go-air/smtcore/config"
	"github.com/go-air/smtcore/quant"
	"github.com/go-air/smtcore/z"
)

func Example() {
	c := smtcore.New(config.Default())
	st := c.Store()
	u := st.DeclareSort("U")
	c.SetReps(u, []z.Term{st.Apply("a", u), st.Apply("b", u)})
	x := st.Bound("x", u)
	c.AssertQuantifier(st.Forall([]z.Term{x}, st.Apply("P", z.SortBool, x)), quant.Attr{})
	for i := 0; i < 2; i++ {
		res, _ := c.Check(context.Background())
		fmt.Println(res.Status, res.Lemmas)
	}
	for _, l := range c.Lemmas() {
		fmt.Println(st.String(l))
	}
	// Output:
	// unknown 2
	// sat 2
	// (=> (forall ((x U)) (P x)) (P a))
	// (=> (forall ((x U)) (P x)) (P b))
}
