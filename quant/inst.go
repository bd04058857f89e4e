// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package quant

import (
	set "github.com/hashicorp/go-set/v3"
	"github.com/mitchellh/hashstructure"
	"github.com/sirupsen/logrus"

	"github.com/go-air/smtcore/inter"
	"github.com/go-air/smtcore/term"
	"github.com/go-air/smtcore/z"
)

// Entailer decides whether a ground instance already holds.
type Entailer interface {
	Entailed(inst z.Term) bool
}

// OracleEntailer considers an instance entailed when it is true or known
// equal to true.
type OracleEntailer struct {
	Store  *term.Store
	Oracle inter.Oracle
}

// Entailed implements Entailer.
func (o OracleEntailer) Entailed(inst z.Term) bool {
	tt := o.Store.True()
	if inst == tt {
		return true
	}
	return o.Oracle.HasTerm(inst) && o.Oracle.HasTerm(tt) && o.Oracle.AreEqual(inst, tt)
}

// Instantiator is the default inter.Admitter.  It sends each new instance
// of a formula as the lemma (=> f body[vars := binding]) to its sink.
type Instantiator struct {
	st   *term.Store
	sink inter.Sink
	ent  Entailer
	seen *set.Set[uint64]
	log  logrus.FieldLogger
}

type instKey struct {
	F       z.Term
	Binding []z.Term
}

// NewInstantiator creates an instantiator.  ent may be nil.
func NewInstantiator(st *term.Store, sink inter.Sink, ent Entailer, log logrus.FieldLogger) *Instantiator {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Instantiator{
		st:   st,
		sink: sink,
		ent:  ent,
		seen: set.New[uint64](64),
		log:  log.WithField("component", "instantiate")}
}

// Add implements inter.Admitter.
func (in *Instantiator) Add(f z.Term, binding []z.Term) bool {
	key, err := hashstructure.Hash(instKey{F: f, Binding: binding}, nil)
	if err != nil {
		in.log.WithError(err).Warn("cannot hash instance")
		return false
	}
	if in.seen.Contains(key) {
		return false
	}
	vars := in.st.Vars(f)
	if len(vars) != len(binding) {
		in.log.WithFields(logrus.Fields{
			"formula": in.st.String(f),
			"arity":   len(binding)}).Warn("binding arity mismatch")
		return false
	}
	body := in.st.Substitute(in.st.Body(f), vars, binding)
	in.seen.Insert(key)
	if in.ent != nil && in.ent.Entailed(body) {
		return false
	}
	lem := in.st.Implies(f, body)
	in.log.WithField("lemma", in.st.String(lem)).Trace("instance")
	in.sink.Lemma(lem)
	return true
}

// Len returns the number of distinct instances seen.
func (in *Instantiator) Len() int {
	return in.seen.Size()
}
