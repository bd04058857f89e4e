// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/go-air/smtcore/term"
	"github.com/go-air/smtcore/z"
)

// make the rng seedable
var rng = rand.New(rand.NewSource(33))
var mu sync.Mutex

// Seed reseeds the package random source.
func Seed(s int64) {
	mu.Lock()
	defer mu.Unlock()
	rng = rand.New(rand.NewSource(s))
}

// Intn returns a random int in [0..n) from the package source.
func Intn(n int) int {
	mu.Lock()
	defer mu.Unlock()
	return rng.Intn(n)
}

// StrVars returns n string variables named <prefix>0 .. <prefix>n-1.
func StrVars(st *term.Store, prefix string, n int) []z.Term {
	res := make([]z.Term, n)
	for i := range res {
		res[i] = st.Var(fmt.Sprintf("%s%d", prefix, i), z.SortString)
	}
	return res
}

// RandString returns a random string over alphabet of length in
// [1..maxLen].
func RandString(alphabet string, maxLen int) string {
	mu.Lock()
	defer mu.Unlock()
	return randString(alphabet, maxLen)
}

func randString(alphabet string, maxLen int) string {
	n := 1 + rng.Intn(maxLen)
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}
