// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package inter contains the interfaces between theory solvers and the
// components they collaborate with: the equality oracle, the conflict and
// lemma sink, candidate domains, and instantiation admission.
package inter
