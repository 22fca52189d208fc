package resolver

import (
	"fmt"

	"fen/internal/ast"
	"fen/internal/diag"
	"fen/internal/resolved"
	"fen/internal/source"
)

// resolvePattern resolves one pattern. The outermost call in a binding
// position owns the capture transaction: it opens the capture map and, on
// the way out, promotes every captured symbol into the value scope. Nested
// sub-patterns share the already-open map.
func (c *Context) resolvePattern(p ast.Pattern) resolved.Pattern {
	if c.capturesOpen() {
		return c.resolvePatternInner(p)
	}
	c.pushCaptures()
	out := c.resolvePatternInner(p)
	c.promote(c.popCaptures())
	return out
}

func (c *Context) resolvePatternInner(p ast.Pattern) resolved.Pattern {
	switch n := p.(type) {
	case *ast.PatWildcard:
		return &resolved.PatWildcard{Span: n.Span}

	case *ast.PatVar:
		if !c.captureVar(n.Name.Name, n.Name.Span) {
			return &resolved.PatError{Span: n.Name.Span}
		}
		return &resolved.PatVar{Name: n.Name.Name, Span: n.Name.Span}

	case *ast.PatConstructor:
		ref, ok := c.constructorRef(n.Path)
		if !ok {
			return &resolved.PatError{Span: n.Path.Span}
		}
		return &resolved.PatApp{Func: ref, Span: n.Path.Span}

	case *ast.PatApp:
		ref, ok := c.constructorRef(n.Func)
		args := make([]resolved.Pattern, 0, len(n.Args))
		for _, arg := range n.Args {
			args = append(args, c.resolvePatternInner(arg))
		}
		if !ok {
			return &resolved.PatError{Span: n.Span}
		}
		return &resolved.PatApp{Func: ref, Args: args, Span: n.Span}

	case *ast.PatEffect:
		return c.resolveEffectPattern(n)

	case *ast.PatLiteral:
		return &resolved.PatLiteral{Lit: resolveLiteral(n.Lit), Span: n.Span}

	case *ast.PatAnnotation:
		return &resolved.PatAnnotation{
			Pat:  c.resolvePatternInner(n.Pat),
			Type: c.resolveType(n.Type),
			Span: n.Span,
		}

	case *ast.PatOr:
		return c.resolveOrPattern(n)

	case *ast.PatParen:
		return c.resolvePatternInner(n.Inner)

	default:
		panic(fmt.Sprintf("resolver: unknown pattern %T", p))
	}
}

// resolveOrPattern resolves `left | right`. Each branch binds into its own
// fresh capture map; afterwards both key sets must be identical. On a
// mismatch every one-sided variable is reported and the node degrades to
// an error, but the left branch's captures still flow upward so the arm
// body resolves against a definite binding set.
func (c *Context) resolveOrPattern(n *ast.PatOr) resolved.Pattern {
	c.pushCaptures()
	left := c.resolvePatternInner(n.Left)
	leftSet := c.popCaptures()

	c.pushCaptures()
	right := c.resolvePatternInner(n.Right)
	rightSet := c.popCaptures()

	mismatched := false
	for sym, span := range leftSet {
		if _, ok := rightSet[sym]; !ok {
			c.reportOneSided(sym, span)
			mismatched = true
		}
	}
	for sym, span := range rightSet {
		if _, ok := leftSet[sym]; !ok {
			c.reportOneSided(sym, span)
			mismatched = true
		}
	}

	top := c.captures[len(c.captures)-1]
	for sym, span := range leftSet {
		top[sym] = span
	}

	if mismatched {
		return &resolved.PatError{Span: n.Span}
	}
	return &resolved.PatOr{Left: left, Right: right, Span: n.Span}
}

func (c *Context) reportOneSided(sym source.StringID, span source.Span) {
	diag.ReportError(c.Reporter, diag.ResVariableNotBoundOnBothSides, span,
		fmt.Sprintf("variable `%s` is not bound on both sides of the or-pattern", c.name(sym))).
		Emit()
}

// resolveEffectPattern resolves `op args -> k`. The continuation binder,
// when present, captures like any pattern variable.
func (c *Context) resolveEffectPattern(n *ast.PatEffect) resolved.Pattern {
	item, ok := c.findValue(n.Func, false)
	if !ok {
		diag.ReportError(c.Reporter, diag.ResCannotFind, n.Func.Span,
			fmt.Sprintf("cannot find effect `%s`", c.pathName(n.Func.Symbols()))).
			Emit()
		return &resolved.PatError{Span: n.Span}
	}
	if item.Item.Kind != ValueEffect {
		diag.ReportError(c.Reporter, diag.ResExpectedEffect, n.Func.Span,
			fmt.Sprintf("`%s` is a %s, not an effect", c.pathName(n.Func.Symbols()), item.Item.Kind)).
			Emit()
		return &resolved.PatError{Span: n.Span}
	}

	args := make([]resolved.Pattern, 0, len(n.Args))
	for _, arg := range n.Args {
		args = append(args, c.resolvePatternInner(arg))
	}
	cont := source.NoStringID
	if n.Cont != nil {
		if c.captureVar(n.Cont.Name, n.Cont.Span) {
			cont = n.Cont.Name
		}
	}
	ref := item.Item.Ref
	return &resolved.PatEffect{
		Func: resolved.Ref(ref.Namespace, ref.Name, n.Func.Span),
		Args: args,
		Cont: cont,
		Span: n.Span,
	}
}

// constructorRef resolves a pattern or expression head that must name a
// constructor. The value lookup probes first so the miss and the
// wrong-kind case get tailored reports.
func (c *Context) constructorRef(path ast.Path) (resolved.Qualified, bool) {
	item, ok := c.findValue(path, false)
	if !ok {
		diag.ReportError(c.Reporter, diag.ResNotFound, path.Span,
			fmt.Sprintf("cannot find constructor `%s`", c.pathName(path.Symbols()))).
			Emit()
		return resolved.ErrorRef(path.Span), false
	}
	if item.Item.Kind != ValueConstructor {
		diag.ReportError(c.Reporter, diag.ResExpectedConstructor, path.Span,
			fmt.Sprintf("`%s` is a %s, not a constructor", c.pathName(path.Symbols()), item.Item.Kind)).
			Emit()
		return resolved.ErrorRef(path.Span), false
	}
	ref := item.Item.Ref
	return resolved.Ref(ref.Namespace, ref.Name, path.Span), true
}
