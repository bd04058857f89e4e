// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package scope provides backtrackable containers.
//
// A Context has a level which is incremented by Push and decremented by Pop.
// Containers created on a Context record the value they overwrite on an undo
// trail, and Pop restores every value recorded since the matching Push.  This
// is the same discipline as the Test/Untest scoping of a gini solver, applied
// to arbitrary data.
//
// Nothing in the package is safe for concurrent use.
package scope
