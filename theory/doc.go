// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package theory contains the state shared by theory solvers and a
// scheduler which checks a set of inter.TheorySolvers at increasing effort.
package theory
