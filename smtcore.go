// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package smtcore

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/go-air/smtcore/config"
	"github.com/go-air/smtcore/eq"
	"github.com/go-air/smtcore/inter"
	"github.com/go-air/smtcore/quant"
	"github.com/go-air/smtcore/sat"
	"github.com/go-air/smtcore/scope"
	"github.com/go-air/smtcore/term"
	"github.com/go-air/smtcore/theory"
	"github.com/go-air/smtcore/theory/strs"
	"github.com/go-air/smtcore/z"
)

// Status is the verdict of a Check.
type Status int

const (
	Unsat   Status = -1
	Unknown Status = 0
	Sat     Status = 1
)

func (s Status) String() string {
	switch s {
	case Unsat:
		return "unsat"
	case Sat:
		return "sat"
	}
	return "unknown"
}

// Result is the result of a Check.
type Result struct {
	Status Status
	// Effort is the last effort the theories were checked at.
	Effort  inter.Effort
	Outcome inter.Outcome
	// Conflicts and Lemmas count what the sink received in total.
	Conflicts  int
	Lemmas     int
	Budget     quant.Budget
	Incomplete bool
}

// Option configures a Core.
type Option func(*options)

type options struct {
	reg     prometheus.Registerer
	log     logrus.FieldLogger
	builder quant.Builder
}

// WithRegisterer registers the metrics of the Core with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.reg = reg }
}

// WithLogger makes the Core log to l instead of the logger of its
// configuration.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.log = l }
}

// WithBuilder makes the model engine delegate to b.
func WithBuilder(b quant.Builder) Option {
	return func(o *options) { o.builder = b }
}

// Core wires a term store, an equality engine, the strings solver, the
// model engine and a SAT backed sink under one context.
type Core struct {
	log    logrus.FieldLogger
	ctx    *scope.Context
	st     *term.Store
	ee     *eq.E
	strs   *strs.Solver
	model  *quant.FirstOrderModel
	inst   *quant.Instantiator
	engine *quant.Engine
	sink   *sat.Sink
	sched  *theory.Scheduler
	facts  *scope.List[z.Term]
}

// New creates a Core configured by cfg.
func New(cfg config.Config, opts ...Option) *Core {
	o := &options{}
	for _, f := range opts {
		f(o)
	}
	if o.log == nil {
		o.log = cfg.Logger()
	}
	c := &Core{
		log: o.log,
		ctx: scope.New(),
		st:  term.NewStore()}
	c.ee = eq.New(c.ctx, c.st, c.log)
	c.sink = sat.New(c.st, c.log)
	ts := theory.NewState(c.ctx, c.st, c.ee, c.log)
	c.strs = strs.NewSolver(strs.NewState(ts), c.ee, c.sink, cfg.Strings, strs.NewMetrics(o.reg))
	c.ee.Listen(c.strs)
	c.model = quant.NewFirstOrderModel(c.ctx, c.st, nil)
	c.inst = quant.NewInstantiator(c.st, c.sink, quant.OracleEntailer{Store: c.st, Oracle: c.ee}, c.log)
	eopts := []quant.Option{
		quant.WithLogger(c.log),
		quant.WithMetrics(quant.NewMetrics(o.reg))}
	if o.builder != nil {
		eopts = append(eopts, quant.WithBuilder(o.builder))
	}
	c.engine = quant.NewEngine(c.model, c.inst, c.sink, cfg.Quant, eopts...)
	c.sched = theory.NewScheduler(c.log, c.strs, c.engine)
	c.facts = scope.NewList[z.Term](c.ctx)
	return c
}

// Store returns the term store of c.
func (c *Core) Store() *term.Store { return c.st }

// Level returns the number of open frames.
func (c *Core) Level() int { return c.ctx.Level() }

// Push opens a frame.
func (c *Core) Push() { c.ctx.Push() }

// Pop closes the innermost frame, undoing everything asserted in it.  Pop
// panics if there is no open frame.
func (c *Core) Pop() { c.ctx.Pop() }

// AssertEqual asserts a = b.
func (c *Core) AssertEqual(a, b z.Term) {
	c.facts.Append(c.st.Eq(a, b))
	c.strs.AssertEqual(a, b)
}

// AssertDisequal asserts a != b.
func (c *Core) AssertDisequal(a, b z.Term) {
	c.facts.Append(c.st.Not(c.st.Eq(a, b)))
	c.strs.AssertDisequal(a, b)
}

// AssertInRe asserts that x is in the language of re, or not if pol is
// false.
func (c *Core) AssertInRe(x, re z.Term, pol bool) {
	m := c.st.InRe(x, re)
	if !pol {
		m = c.st.Not(m)
	}
	c.facts.Append(m)
	c.strs.AssertInRe(x, re, pol)
}

// AssertQuantifier asserts the quantified formula f.  It returns false if
// the model engine cannot check f completely.
func (c *Core) AssertQuantifier(f z.Term, a quant.Attr) bool {
	c.facts.Append(f)
	c.model.AssertQuantifier(f, a)
	return c.engine.RegisterQuantifier(f)
}

// SetReps sets the representatives of the uninterpreted sort so in the
// candidate model.
func (c *Core) SetReps(so z.Sort, ts []z.Term) {
	for _, t := range ts {
		c.ee.Register(t)
	}
	c.model.RepSet().Set(so, ts)
}

// AddRep adds t to the representatives of its sort.
func (c *Core) AddRep(t z.Term) {
	c.ee.Register(t)
	c.model.RepSet().Add(t)
}

// Rep returns the representative of the class of t.
func (c *Core) Rep(t z.Term) z.Term { return c.ee.Rep(t) }

// AreEqual returns whether a and b are known equal.
func (c *Core) AreEqual(a, b z.Term) bool { return c.ee.AreEqual(a, b) }

// Facts returns the facts asserted in the open frames.
func (c *Core) Facts() []z.Term { return c.facts.Items() }

// Conflicts returns the conflict explanations received so far.
func (c *Core) Conflicts() []z.Term { return c.sink.Conflicts() }

// Lemmas returns the lemmas received so far.
func (c *Core) Lemmas() []z.Term { return c.sink.Lemmas() }

// Atoms returns the atoms of the Boolean abstraction.
func (c *Core) Atoms() []z.Term { return c.sink.Atoms() }

// Value returns the value of the atom t in the Boolean model found by the
// last Check.  ok is false if t is not in the abstraction.
func (c *Core) Value(t z.Term) (v, ok bool) { return c.sink.Value(t) }

// Checks returns the number of individual theory checks performed.
func (c *Core) Checks() int { return c.sched.Checks() }

// Check runs the theories by increasing effort until one of them reports
// a conflict or lemmas, and then solves the Boolean abstraction of the
// facts, conflicts and lemmas.
//
// The status is Unsat if a theory or the abstraction is inconsistent and
// Sat if no theory had anything to add and no check was incomplete.
// Otherwise, it is Unknown.
func (c *Core) Check(ctx context.Context) (Result, error) {
	c.sink.ResetIncomplete()
	eff, out := c.sched.Run(ctx)
	if err := ctx.Err(); err != nil {
		return Result{}, errors.Wrap(err, "check")
	}
	res := Result{
		Effort:     eff,
		Outcome:    out,
		Budget:     c.engine.Budget(),
		Incomplete: c.sink.Incomplete()}
	switch {
	case out == inter.Conflict:
		res.Status = Unsat
	case c.sink.Solve(c.facts.Items()...) == sat.Unsat:
		res.Status = Unsat
	case out == inter.None && !res.Incomplete:
		res.Status = Sat
	}
	res.Conflicts = len(c.sink.Conflicts())
	res.Lemmas = len(c.sink.Lemmas())
	c.log.WithFields(logrus.Fields{
		"status":    res.Status,
		"effort":    res.Effort,
		"conflicts": res.Conflicts,
		"lemmas":    res.Lemmas}).Debug("check")
	return res, nil
}
