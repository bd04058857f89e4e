// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package strs

// Options configures the strings solver.
type Options struct {
	// AlphabetCard is the number of characters in the alphabet.
	AlphabetCard int `yaml:"alphabetCard"`

	// EagerConflicts enables constant endpoint tracking.
	EagerConflicts bool `yaml:"eagerConflicts"`

	// Cardinality enables cardinality lemmas at full effort.
	Cardinality bool `yaml:"cardinality"`
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		AlphabetCard:   256,
		EagerConflicts: true,
		Cardinality:    true}
}
