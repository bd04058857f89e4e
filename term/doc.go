// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package term provides a hash-consed store of first order terms over
// strings, integers, regular expressions and uninterpreted sorts.
//
// Like a logic.C circuit, a Store keeps all nodes in a slice and uses a
// structural hash to guarantee that structurally equal terms have the same
// z.Term handle.  The store performs no rewriting beyond trivial folding
// (length of a constant, flattening of unary and/or/concat).
package term
