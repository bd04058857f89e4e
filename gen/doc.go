// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen contains generators of random problems for the string
// annotations and the instantiation engine: equalities with constant
// endpoints, representative sets and quantified formulas.
//
// All generators draw from a package random source which can be
// seeded with Seed.
package gen
