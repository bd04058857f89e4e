// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package eq provides a small backtrackable equality engine implementing
// inter.Oracle.
//
// Package eq does not do congruence closure over function applications.
// It maintains equivalence classes of asserted equalities with union by
// size, prefers constants as representatives, tracks asserted
// disequalities and reports merges to registered inter.Notify listeners.
// All state lives in scope containers and is restored by Pop.
package eq
