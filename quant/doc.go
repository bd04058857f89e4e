// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package quant checks universally quantified formulas against a finite
// candidate model by exhaustive instantiation.
//
// An Engine is checked at last call effort.  Each check is a pass over the
// asserted quantifiers in up to two stages, priority then full, each with a
// number of sub-efforts depending on the model checking mode.  For every
// formula a Builder may decide the formula directly; otherwise the engine
// enumerates the cartesian product of the domains of the bound variables
// and submits each instance to an inter.Admitter.  Instances which are
// admitted are the lemmas of the pass.
//
// When no lemma is added and some domain was only an approximation, the
// engine marks its sink incomplete.
package quant
