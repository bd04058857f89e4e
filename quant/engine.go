// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package quant

import (
	"context"
	"math"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-air/smtcore/inter"
	"github.com/go-air/smtcore/term"
	"github.com/go-air/smtcore/z"
)

var tracer = otel.Tracer("github.com/go-air/smtcore/quant")

// Stage is the state of an Engine pass.
type Stage int

const (
	// StagePriority checks formulas which are not axioms.
	StagePriority Stage = iota
	// StageFull checks the remaining formulas.
	StageFull
	// StageDone is the state between passes.
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StagePriority:
		return "priority"
	case StageFull:
		return "full"
	case StageDone:
		return "done"
	}
	return "?"
}

// Budget holds the instance counters of a pass.
type Budget struct {
	Tried int
	Added int
	Total int
}

// Valid returns whether 0 <= Added <= Tried <= Total.
func (b Budget) Valid() bool {
	return 0 <= b.Added && b.Added <= b.Tried && b.Tried <= b.Total
}

// BuildResult is what a Builder did for a formula.
type BuildResult struct {
	Tried      int
	Added      int
	Incomplete bool
}

// Builder is a delegate which may decide a formula without exhaustive
// enumeration.
//
// DoExhaustiveInstantiation returns false if it does not handle f at
// sub-effort effort, in which case the Engine falls back to enumeration.
type Builder interface {
	DoExhaustiveInstantiation(ctx context.Context, m *FirstOrderModel, f z.Term, effort int) (BuildResult, bool)
}

// Option configures an Engine.
type Option func(*Engine)

// WithBuilder makes e ask b first for every formula.
func WithBuilder(b Builder) Option {
	return func(e *Engine) { e.builder = b }
}

// WithLogger sets the logger of e.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) { e.log = l }
}

// WithMetrics sets the counters of e.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// Engine is the exhaustive instantiation engine.  It implements
// inter.TheorySolver and only needs checking at last call effort.
type Engine struct {
	opts    Options
	model   *FirstOrderModel
	st      *term.Store
	admit   inter.Admitter
	sink    inter.Sink
	builder Builder
	metrics *Metrics
	log     logrus.FieldLogger

	stage      Stage
	budget     Budget
	incomplete bool
	triedBy    map[z.Term]int
}

// NewEngine creates an engine checking the formulas of m, submitting
// instances to a and reporting incompleteness to k.
func NewEngine(m *FirstOrderModel, a inter.Admitter, k inter.Sink, opts Options, eopts ...Option) *Engine {
	e := &Engine{
		opts:  opts,
		model: m,
		st:    m.Store(),
		admit: a,
		sink:  k,
		stage: StageDone}
	for _, o := range eopts {
		o(e)
	}
	if e.log == nil {
		e.log = logrus.StandardLogger()
	}
	e.log = e.log.WithField("component", "model-engine")
	if e.metrics == nil {
		e.metrics = NewMetrics(nil)
	}
	if opts.BoundInt {
		m.RepSet().SetIntRange(opts.IntMin, opts.IntMax, opts.IntStep)
	}
	return e
}

// Name returns "quantifiers".
func (e *Engine) Name() string {
	return "quantifiers"
}

// NeedsCheck implements inter.NeedsChecker.
func (e *Engine) NeedsCheck(eff inter.Effort) bool {
	return eff == inter.EffortLastCall
}

// Stage returns the current stage.
func (e *Engine) Stage() Stage {
	return e.stage
}

// Budget returns the counters of the last pass.
func (e *Engine) Budget() Budget {
	return e.budget
}

// Metrics returns the counters of e.
func (e *Engine) Metrics() *Metrics {
	return e.metrics
}

// Incomplete returns whether the last pass was incomplete.
func (e *Engine) Incomplete() bool {
	return e.incomplete
}

// RegisterQuantifier returns whether the domains of the variables of f
// can be enumerated exactly, and logs a warning when they cannot.
func (e *Engine) RegisterQuantifier(f z.Term) bool {
	canHandle := true
	for _, v := range e.st.Vars(f) {
		so := e.st.Sort(v)
		if so.IsUninterpreted() || so == z.SortBool {
			continue
		}
		if so == z.SortInt && e.opts.BoundInt {
			continue
		}
		canHandle = false
		break
	}
	if !canHandle {
		e.log.WithField("formula", e.st.String(f)).Warn("cannot handle quantifier, model checking is incomplete")
	}
	return canHandle
}

// Check runs a pass at last call effort and returns Lemmas if some
// instance was added.
func (e *Engine) Check(ctx context.Context, eff inter.Effort) inter.Outcome {
	if eff != inter.EffortLastCall {
		return inter.None
	}
	ctx, span := tracer.Start(ctx, "quant.Check",
		trace.WithAttributes(attribute.String("quant.mbqi", string(e.opts.Mbqi))))
	defer span.End()
	e.metrics.Rounds.Inc()
	added := e.checkModel(ctx)
	span.SetAttributes(
		attribute.Int("quant.tried", e.budget.Tried),
		attribute.Int("quant.added", e.budget.Added),
		attribute.Int("quant.total", e.budget.Total),
		attribute.Bool("quant.incomplete", e.incomplete))
	if added > 0 {
		return inter.Lemmas
	}
	if e.incomplete {
		e.log.Debug("no lemmas added, incomplete")
		e.sink.SetIncomplete()
	}
	return inter.None
}

func (e *Engine) checkModel(ctx context.Context) int {
	e.budget = Budget{}
	e.incomplete = false
	e.triedBy = make(map[z.Term]int)
	qs := e.model.Quantifiers()
	for _, q := range qs {
		e.budget.Total = satAdd(e.budget.Total, e.domainSize(q.F))
	}
	start := 1
	if e.opts.AxiomInst != AxiomDefault && e.model.HasAxioms() {
		start = 0
	}
	subs := e.opts.SubEfforts()
pass:
	for eff := start; eff < 2; eff++ {
		e.stage = Stage(eff)
		for sub := 0; sub < subs && e.budget.Added == 0; sub++ {
			for _, q := range qs {
				if ctx.Err() != nil {
					e.incomplete = true
					break pass
				}
				if !e.model.IsActive(q.F) {
					e.log.WithField("formula", e.st.String(q.F)).Trace("inactive")
					continue
				}
				if !e.inStage(q, eff, start) {
					continue
				}
				e.exhaustiveInstantiate(ctx, q.F, sub)
				if e.capped() {
					e.log.WithField("added", e.budget.Added).Warn("lemma limit reached")
					break pass
				}
				if e.budget.Added > 0 && e.opts.OneQuantPerRound {
					break
				}
			}
		}
		if e.budget.Added == 0 && e.opts.AxiomInst == AxiomTrust {
			if eff == 0 {
				e.sink.SetIncomplete()
			}
			break
		}
	}
	e.stage = StageDone
	e.log.WithFields(logrus.Fields{
		"added": e.budget.Added,
		"tried": e.budget.Tried,
		"total": e.budget.Total}).Debug("model engine pass")
	return e.budget.Added
}

// inStage reports whether q is scanned at effort eff.  Without a priority
// scan the full scan takes every formula.
func (e *Engine) inStage(q Quantifier, eff, start int) bool {
	if eff == 0 {
		return !q.Attr.Axiom
	}
	return e.opts.AxiomInst == AxiomDefault || q.Attr.Axiom || start > 0
}

func (e *Engine) capped() bool {
	return e.opts.MaxLemmas > 0 && e.budget.Added >= e.opts.MaxLemmas
}

func (e *Engine) exhaustiveInstantiate(ctx context.Context, f z.Term, sub int) {
	if e.builder != nil {
		if res, ok := e.builder.DoExhaustiveInstantiation(ctx, e.model, f, sub); ok {
			e.mergeBuilt(f, res)
			return
		}
	}
	if sub > 0 {
		return
	}
	doms, exact, ok := e.domains(f)
	if !ok {
		e.log.WithField("formula", e.st.String(f)).Debug("no domain")
		e.incomplete = true
		return
	}
	if !exact {
		e.incomplete = true
	}
	it := NewIterator(doms)
	added := 0
	var tuple []z.Term
	for !it.Done() && (added == 0 || !e.opts.OneInstPerRound) {
		if ctx.Err() != nil {
			e.incomplete = true
			break
		}
		if e.capped() {
			break
		}
		tuple = it.Tuple(tuple[:0])
		e.budget.Tried++
		e.triedBy[f]++
		if e.admit.Add(f, tuple) {
			added++
			e.budget.Added++
		}
		it.Next()
	}
	e.metrics.ExhaustiveLemmas.Add(float64(added))
	e.log.WithFields(logrus.Fields{
		"formula": e.st.String(f),
		"added":   added}).Trace("exhaustive instantiation")
}

// mergeBuilt adds the counters of a builder, keeping the counters of f
// within its domain size.
func (e *Engine) mergeBuilt(f z.Term, res BuildResult) {
	room := e.domainSize(f) - e.triedBy[f]
	tried := min(max(res.Tried, 0), room)
	added := min(max(res.Added, 0), tried)
	e.triedBy[f] += tried
	e.budget.Tried = satAdd(e.budget.Tried, tried)
	e.budget.Added = satAdd(e.budget.Added, added)
	if res.Incomplete {
		e.incomplete = true
	}
	e.metrics.BuilderLemmas.Add(float64(added))
}

func (e *Engine) domains(f z.Term) ([][]z.Term, bool, bool) {
	vars := e.st.Vars(f)
	doms := make([][]z.Term, len(vars))
	exact := true
	for i, v := range vars {
		ts, ex, ok := e.model.RepSet().Domain(e.st.Sort(v))
		if !ok {
			return nil, false, false
		}
		doms[i] = ts
		exact = exact && ex
	}
	return doms, exact, true
}

// domainSize returns the product of the sizes of the known domains of the
// variables of f, saturating at math.MaxInt.
func (e *Engine) domainSize(f z.Term) int {
	n := 1
	for _, v := range e.st.Vars(f) {
		if ts, _, ok := e.model.RepSet().Domain(e.st.Sort(v)); ok {
			n = satMul(n, len(ts))
		}
	}
	return n
}

func satMul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}

func satAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
