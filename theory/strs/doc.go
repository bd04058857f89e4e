// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package strs contains the equivalence class annotations of the theory of
// strings and a solver which uses them to find conflicts eagerly.
//
// Each equivalence class representative may carry an EqcInfo record.  Its
// fields are backtrackable.  The most useful of them are the constant
// prefix and suffix known for all members of the class: whenever a term
// with a constant endpoint joins the class, AddEndpointConst either keeps
// the stronger of the two endpoints or returns an explanation of why they
// cannot both hold.
package strs
