// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package quant

import "github.com/pkg/errors"

// MbqiMode selects the model checking strategy.
type MbqiMode string

const (
	MbqiDefault     MbqiMode = "default"
	MbqiFmc         MbqiMode = "fmc"
	MbqiFmcInterval MbqiMode = "fmc-interval"
	MbqiTrust       MbqiMode = "trust"
)

// AxiomMode selects how axioms are scheduled with respect to other
// quantified formulas.
type AxiomMode string

const (
	// AxiomDefault treats axioms like all other formulas.
	AxiomDefault AxiomMode = "default"
	// AxiomPriority checks non-axioms first.
	AxiomPriority AxiomMode = "priority"
	// AxiomTrust checks non-axioms only and trusts axioms, leaving the
	// check incomplete.
	AxiomTrust AxiomMode = "trust"
)

// Options configures an Engine.
type Options struct {
	Mbqi             MbqiMode  `yaml:"mbqi"`
	AxiomInst        AxiomMode `yaml:"axiomInst"`
	OneInstPerRound  bool      `yaml:"oneInstPerRound"`
	OneQuantPerRound bool      `yaml:"oneQuantPerRound"`

	// BoundInt enumerates integer variables over IntMin..IntMax by
	// IntStep instead of the integer representatives of the model.
	BoundInt bool  `yaml:"boundInt"`
	IntMin   int64 `yaml:"intMin"`
	IntMax   int64 `yaml:"intMax"`
	IntStep  int64 `yaml:"intStep"`

	// MaxLemmas stops a pass once reached, 0 means no limit.
	MaxLemmas int `yaml:"maxLemmas"`
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		Mbqi:      MbqiDefault,
		AxiomInst: AxiomDefault,
		IntMin:    0,
		IntMax:    7,
		IntStep:   1,
		MaxLemmas: 10000}
}

// SubEfforts returns the number of sub-effort levels of each stage.
func (o *Options) SubEfforts() int {
	switch o.Mbqi {
	case MbqiFmc, MbqiFmcInterval:
		return 2
	case MbqiTrust:
		return 0
	}
	return 1
}

// Validate checks o for consistency.
func (o *Options) Validate() error {
	switch o.Mbqi {
	case MbqiDefault, MbqiFmc, MbqiFmcInterval, MbqiTrust:
	default:
		return errors.Errorf("unknown mbqi mode %q", o.Mbqi)
	}
	switch o.AxiomInst {
	case AxiomDefault, AxiomPriority, AxiomTrust:
	default:
		return errors.Errorf("unknown axiom instantiation mode %q", o.AxiomInst)
	}
	if o.BoundInt {
		if o.IntStep <= 0 {
			return errors.Errorf("intStep must be positive, got %d", o.IntStep)
		}
		if o.IntMax < o.IntMin {
			return errors.Errorf("empty integer range [%d, %d]", o.IntMin, o.IntMax)
		}
	}
	if o.MaxLemmas < 0 {
		return errors.Errorf("maxLemmas must not be negative, got %d", o.MaxLemmas)
	}
	return nil
}
