// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package scenario

import (
	"io"
	"maps"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/go-air/smtcore"
	"github.com/go-air/smtcore/quant"
	"github.com/go-air/smtcore/z"
)

// DefaultRounds is the number of checks of a scenario which does not set
// Rounds.
const DefaultRounds = 3

// Quantifier is a quantified formula of a scenario.
type Quantifier struct {
	// Forall is a Go function literal returning bool, whose parameters
	// are the bound variables.
	Forall     string `yaml:"forall"`
	Axiom      bool   `yaml:"axiom"`
	Conjecture bool   `yaml:"conjecture"`
}

// Scenario is a problem for a Core.
type Scenario struct {
	// Requires is the least smtcore version able to run the scenario.
	Requires    string              `yaml:"requires"`
	Sorts       map[string][]string `yaml:"sorts"`
	Vars        []string            `yaml:"vars"`
	Facts       []string            `yaml:"facts"`
	Quantifiers []Quantifier        `yaml:"quantifiers"`
	Rounds      int                 `yaml:"rounds"`
}

// Decode reads a scenario from r.  Unknown fields are errors.
func Decode(r io.Reader) (*Scenario, error) {
	s := &Scenario{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		return nil, errors.Wrap(err, "decode scenario")
	}
	return s, nil
}

// NumRounds returns the maximal number of checks to run on s.
func (s *Scenario) NumRounds() int {
	if s.Rounds <= 0 {
		return DefaultRounds
	}
	return s.Rounds
}

// Apply declares the sorts and variables of s in c and asserts its facts
// and quantified formulas.
func (s *Scenario) Apply(c *smtcore.Core) error {
	if s.Requires != "" {
		req, err := smtcore.ParseVersion(s.Requires)
		if err != nil {
			return errors.Wrap(err, "requires")
		}
		if !smtcore.V.Supports(req) {
			return errors.Errorf("scenario requires smtcore %s, have %s", req, smtcore.V)
		}
	}
	b := newBuilder(c)
	for _, name := range slices.Sorted(maps.Keys(s.Sorts)) {
		if err := b.declareSort(name, s.Sorts[name]); err != nil {
			return err
		}
	}
	for _, v := range s.Vars {
		if err := b.declare(v, c.Store().Var(v, z.SortString)); err != nil {
			return err
		}
	}
	for i, f := range s.Facts {
		if err := b.fact(f); err != nil {
			return errors.Wrapf(err, "fact %d", i)
		}
	}
	for i, q := range s.Quantifiers {
		f, err := b.forall(q.Forall)
		if err != nil {
			return errors.Wrapf(err, "quantifier %d", i)
		}
		c.AssertQuantifier(f, quant.Attr{Axiom: q.Axiom, Conjecture: q.Conjecture})
	}
	return nil
}
