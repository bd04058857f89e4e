// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package scenario

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"

	"github.com/pkg/errors"

	"github.com/go-air/smtcore"
	"github.com/go-air/smtcore/term"
	"github.com/go-air/smtcore/z"
)

// builder translates Go expressions to terms of a Core.
type builder struct {
	c     *smtcore.Core
	st    *term.Store
	names map[string]z.Term
	sorts map[string]z.Sort
}

// bound maps the names of bound variables to their terms.
type bound map[string]z.Term

func newBuilder(c *smtcore.Core) *builder {
	return &builder{
		c:     c,
		st:    c.Store(),
		names: make(map[string]z.Term),
		sorts: make(map[string]z.Sort)}
}

func (b *builder) declare(name string, t z.Term) error {
	if _, ok := b.names[name]; ok {
		return errors.Errorf("%s is already declared", name)
	}
	b.names[name] = t
	return nil
}

func (b *builder) declareSort(name string, reps []string) error {
	if _, ok := b.st.LookupSort(name); ok {
		return errors.Errorf("sort %s is already declared", name)
	}
	so := b.st.DeclareSort(name)
	b.sorts[name] = so
	ts := make([]z.Term, len(reps))
	for i, r := range reps {
		ts[i] = b.st.Apply(r, so)
		if err := b.declare(r, ts[i]); err != nil {
			return err
		}
	}
	b.c.SetReps(so, ts)
	return nil
}

// fact asserts the fact src to the Core.
func (b *builder) fact(src string) error {
	e, err := parser.ParseExpr(src)
	if err != nil {
		return errors.Wrapf(err, "parse %q", src)
	}
	e = unparen(e)
	pol := true
	if u, ok := e.(*ast.UnaryExpr); ok && u.Op == token.NOT {
		pol = false
		e = unparen(u.X)
	}
	switch e := e.(type) {
	case *ast.CallExpr:
		if name, ok := callName(e); ok && name == "in" {
			x, re, err := b.membership(e, nil)
			if err != nil {
				return err
			}
			b.c.AssertInRe(x, re, pol)
			return nil
		}
	case *ast.BinaryExpr:
		if !pol || (e.Op != token.EQL && e.Op != token.NEQ) {
			break
		}
		l, r, err := b.pair(e, nil)
		if err != nil {
			return err
		}
		if e.Op == token.EQL {
			b.c.AssertEqual(l, r)
		} else {
			b.c.AssertDisequal(l, r)
		}
		return nil
	}
	return errors.Errorf("unsupported fact %q", src)
}

// forall translates the function literal src to a quantified formula.
func (b *builder) forall(src string) (z.Term, error) {
	e, err := parser.ParseExpr(src)
	if err != nil {
		return z.TermNull, errors.Wrapf(err, "parse %q", src)
	}
	fn, ok := e.(*ast.FuncLit)
	if !ok {
		return z.TermNull, errors.Errorf("%q is not a function literal", src)
	}
	bv := make(bound)
	var vars []z.Term
	for _, field := range fn.Type.Params.List {
		sid, ok := field.Type.(*ast.Ident)
		if !ok {
			return z.TermNull, errors.Errorf("unsupported parameter type in %q", src)
		}
		so, err := b.sort(sid.Name)
		if err != nil {
			return z.TermNull, err
		}
		for _, n := range field.Names {
			if _, ok := bv[n.Name]; ok {
				return z.TermNull, errors.Errorf("duplicate parameter %s", n.Name)
			}
			v := b.st.Bound(n.Name, so)
			bv[n.Name] = v
			vars = append(vars, v)
		}
	}
	if len(vars) == 0 {
		return z.TermNull, errors.Errorf("%q has no parameters", src)
	}
	body := fn.Body.List
	if len(body) != 1 {
		return z.TermNull, errors.Errorf("%q must consist of one return statement", src)
	}
	ret, ok := body[0].(*ast.ReturnStmt)
	if !ok || len(ret.Results) != 1 {
		return z.TermNull, errors.Errorf("%q must consist of one return statement", src)
	}
	f, err := b.formula(ret.Results[0], bv)
	if err != nil {
		return z.TermNull, err
	}
	return b.st.Forall(vars, f), nil
}

func (b *builder) sort(name string) (z.Sort, error) {
	switch name {
	case "string":
		return z.SortString, nil
	case "int":
		return z.SortInt, nil
	case "bool":
		return z.SortBool, nil
	}
	if so, ok := b.sorts[name]; ok {
		return so, nil
	}
	return z.SortNull, errors.Errorf("unknown sort %s", name)
}

// formula translates a Boolean expression.
func (b *builder) formula(e ast.Expr, bv bound) (z.Term, error) {
	switch e := unparen(e).(type) {
	case *ast.Ident:
		switch e.Name {
		case "true":
			return b.st.True(), nil
		case "false":
			return b.st.False(), nil
		}
		t, err := b.term(e, bv)
		if err != nil {
			return z.TermNull, err
		}
		if b.st.Sort(t) != z.SortBool {
			return z.TermNull, errors.Errorf("%s is not a formula", e.Name)
		}
		return t, nil
	case *ast.UnaryExpr:
		if e.Op != token.NOT {
			break
		}
		f, err := b.formula(e.X, bv)
		if err != nil {
			return z.TermNull, err
		}
		return b.st.Not(f), nil
	case *ast.BinaryExpr:
		switch e.Op {
		case token.LAND, token.LOR:
			l, err := b.formula(e.X, bv)
			if err != nil {
				return z.TermNull, err
			}
			r, err := b.formula(e.Y, bv)
			if err != nil {
				return z.TermNull, err
			}
			if e.Op == token.LAND {
				return b.st.And(l, r), nil
			}
			return b.st.Or(l, r), nil
		case token.EQL, token.NEQ:
			l, r, err := b.pair(e, bv)
			if err != nil {
				return z.TermNull, err
			}
			if e.Op == token.EQL {
				return b.st.Eq(l, r), nil
			}
			return b.st.Not(b.st.Eq(l, r)), nil
		case token.LEQ:
			l, r, err := b.pair(e, bv)
			if err != nil {
				return z.TermNull, err
			}
			if b.st.Sort(l) != z.SortInt {
				return z.TermNull, errors.New("<= needs integers")
			}
			return b.st.Leq(l, r), nil
		}
	case *ast.CallExpr:
		name, ok := callName(e)
		if !ok {
			break
		}
		switch name {
		case "in":
			x, re, err := b.membership(e, bv)
			if err != nil {
				return z.TermNull, err
			}
			return b.st.InRe(x, re), nil
		case "implies":
			if len(e.Args) != 2 {
				return z.TermNull, errors.New("implies needs 2 arguments")
			}
			l, err := b.formula(e.Args[0], bv)
			if err != nil {
				return z.TermNull, err
			}
			r, err := b.formula(e.Args[1], bv)
			if err != nil {
				return z.TermNull, err
			}
			return b.st.Implies(l, r), nil
		}
		args := make([]z.Term, len(e.Args))
		for i, a := range e.Args {
			t, err := b.term(a, bv)
			if err != nil {
				return z.TermNull, err
			}
			args[i] = t
		}
		return b.st.Apply(name, z.SortBool, args...), nil
	}
	return z.TermNull, errors.Errorf("unsupported formula at %d", e.Pos())
}

// term translates a string, integer or uninterpreted term.
func (b *builder) term(e ast.Expr, bv bound) (z.Term, error) {
	switch e := unparen(e).(type) {
	case *ast.Ident:
		if t, ok := bv[e.Name]; ok {
			return t, nil
		}
		if t, ok := b.names[e.Name]; ok {
			return t, nil
		}
		return z.TermNull, errors.Errorf("undeclared %s", e.Name)
	case *ast.BasicLit:
		return b.literal(e)
	case *ast.UnaryExpr:
		if lit, ok := e.X.(*ast.BasicLit); ok && e.Op == token.SUB && lit.Kind == token.INT {
			t, err := b.literal(lit)
			if err != nil {
				return z.TermNull, err
			}
			return b.st.Int(-b.st.IntVal(t)), nil
		}
	case *ast.BinaryExpr:
		if e.Op != token.ADD {
			break
		}
		l, r, err := b.pair(e, bv)
		if err != nil {
			return z.TermNull, err
		}
		if b.st.Sort(l) != z.SortString {
			return z.TermNull, errors.New("+ needs strings")
		}
		return b.st.Concat(l, r), nil
	case *ast.CallExpr:
		name, ok := callName(e)
		if !ok || name != "len" || len(e.Args) != 1 {
			break
		}
		x, err := b.term(e.Args[0], bv)
		if err != nil {
			return z.TermNull, err
		}
		if b.st.Sort(x) != z.SortString {
			return z.TermNull, errors.New("len needs a string")
		}
		return b.st.Len(x), nil
	}
	return z.TermNull, errors.Errorf("unsupported term at %d", e.Pos())
}

// pair translates the operands of e, which must have the same sort.
func (b *builder) pair(e *ast.BinaryExpr, bv bound) (z.Term, z.Term, error) {
	l, err := b.term(e.X, bv)
	if err != nil {
		return z.TermNull, z.TermNull, err
	}
	r, err := b.term(e.Y, bv)
	if err != nil {
		return z.TermNull, z.TermNull, err
	}
	if b.st.Sort(l) != b.st.Sort(r) {
		return z.TermNull, z.TermNull, errors.Errorf("%s %s %s is ill sorted",
			b.st.String(l), e.Op, b.st.String(r))
	}
	return l, r, nil
}

func (b *builder) literal(lit *ast.BasicLit) (z.Term, error) {
	switch lit.Kind {
	case token.STRING:
		s, err := strconv.Unquote(lit.Value)
		if err != nil {
			return z.TermNull, errors.Wrap(err, "string literal")
		}
		return b.st.Str(s), nil
	case token.INT:
		i, err := strconv.ParseInt(lit.Value, 0, 64)
		if err != nil {
			return z.TermNull, errors.Wrap(err, "int literal")
		}
		return b.st.Int(i), nil
	}
	return z.TermNull, errors.Errorf("unsupported literal %s", lit.Value)
}

// membership translates in(x, re).
func (b *builder) membership(e *ast.CallExpr, bv bound) (z.Term, z.Term, error) {
	if len(e.Args) != 2 {
		return z.TermNull, z.TermNull, errors.New("in needs 2 arguments")
	}
	x, err := b.term(e.Args[0], bv)
	if err != nil {
		return z.TermNull, z.TermNull, err
	}
	if b.st.Sort(x) != z.SortString {
		return z.TermNull, z.TermNull, errors.New("in needs a string")
	}
	re, err := b.regex(e.Args[1], bv)
	if err != nil {
		return z.TermNull, z.TermNull, err
	}
	return x, re, nil
}

func (b *builder) regex(e ast.Expr, bv bound) (z.Term, error) {
	switch e := unparen(e).(type) {
	case *ast.BinaryExpr:
		if e.Op != token.ADD {
			break
		}
		l, err := b.regex(e.X, bv)
		if err != nil {
			return z.TermNull, err
		}
		r, err := b.regex(e.Y, bv)
		if err != nil {
			return z.TermNull, err
		}
		return b.st.ReConcat(l, r), nil
	case *ast.CallExpr:
		name, ok := callName(e)
		if !ok || name != "star" || len(e.Args) != 1 {
			break
		}
		r, err := b.regex(e.Args[0], bv)
		if err != nil {
			return z.TermNull, err
		}
		return b.st.ReStar(r), nil
	default:
		t, err := b.term(e, bv)
		if err != nil {
			return z.TermNull, err
		}
		if b.st.Sort(t) != z.SortString {
			return z.TermNull, errors.New("regular expressions need strings")
		}
		return b.st.StrToRe(t), nil
	}
	return z.TermNull, errors.Errorf("unsupported regular expression at %d", e.Pos())
}

func callName(e *ast.CallExpr) (string, bool) {
	id, ok := e.Fun.(*ast.Ident)
	if !ok {
		return "", false
	}
	return id.Name, true
}

func unparen(e ast.Expr) ast.Expr {
	for {
		p, ok := e.(*ast.ParenExpr)
		if !ok {
			return e
		}
		e = p.X
	}
}
