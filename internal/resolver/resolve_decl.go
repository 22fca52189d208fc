package resolver

import (
	"fen/internal/ast"
	"fen/internal/resolved"
	"fen/internal/source"
)

func (c *Context) resolveDecl(d ast.Decl) resolved.Decl {
	switch n := d.(type) {
	case *ast.LetDecl:
		return c.resolveLetDecl(n)
	case *ast.TypeDecl:
		return c.resolveTypeDecl(n)
	case *ast.EffectDecl:
		return c.resolveEffectDecl(n)
	case *ast.ModuleDecl:
		return c.resolveModuleDecl(n)
	case *ast.UseDecl:
		// Consumed before declaration resolution started.
		return nil
	default:
		return nil
	}
}

// resolveLetDecl resolves one top-level value. Binder patterns share one
// capture scope, so `let f x x = ...` is a linearity violation. Type
// variables free in the signature are bound implicitly, as if by an
// enclosing forall.
func (c *Context) resolveLetDecl(n *ast.LetDecl) *resolved.LetDecl {
	c.Scopes.Push(CapValue)
	c.Scopes.Push(CapType)
	defer c.Scopes.Pop(CapType)
	defer c.Scopes.Pop(CapValue)

	for _, b := range n.Binders {
		c.bindFreeTypeVars(b.Type)
	}
	if n.Ret != nil {
		if n.Ret.Effects != nil {
			for _, t := range n.Ret.Effects.Types {
				c.bindFreeTypeVars(t)
			}
		}
		c.bindFreeTypeVars(n.Ret.Type)
	}

	binders := make([]resolved.Binder, 0, len(n.Binders))
	c.pushCaptures()
	for _, b := range n.Binders {
		binders = append(binders, resolved.Binder{
			Pat:  c.resolvePattern(b.Pat),
			Type: c.resolveType(b.Type),
			Span: b.Span,
		})
	}
	c.promote(c.popCaptures())

	var ret *resolved.RetAnnotation
	if n.Ret != nil {
		ret = &resolved.RetAnnotation{
			Effects: c.resolveEffects(n.Ret.Effects),
			Type:    c.resolveType(n.Ret.Type),
			Span:    n.Ret.Span,
		}
	}

	var cases []*resolved.PatternArm
	switch body := n.Body.(type) {
	case *ast.LetModeBody:
		cases = []*resolved.PatternArm{{
			Body: c.resolveExpr(body.Expr),
			Span: body.Expr.GetSpan(),
		}}
	case *ast.LetModeCases:
		cases = make([]*resolved.PatternArm, 0, len(body.Cases))
		for _, arm := range body.Cases {
			cases = append(cases, c.resolveArm(arm))
		}
	}

	return &resolved.LetDecl{
		Vis:     visibility(n.Vis),
		Name:    n.Name.Name,
		Binders: binders,
		Ret:     ret,
		Cases:   cases,
		Span:    n.Span,
	}
}

func (c *Context) resolveTypeDecl(n *ast.TypeDecl) *resolved.TypeDecl {
	id := c.declaredNamespace(n.Name.Name)

	c.Scopes.Push(CapType)
	defer c.Scopes.Pop(CapType)
	binders := c.resolveTypeBinders(n.Binders)

	var def resolved.TypeDef
	switch d := n.Def.(type) {
	case *ast.SumDef:
		ctors := make([]*resolved.Constructor, 0, len(d.Constructors))
		for _, ctor := range d.Constructors {
			args := make([]resolved.Type, 0, len(ctor.Args))
			for _, arg := range ctor.Args {
				args = append(args, c.resolveType(arg))
			}
			ctors = append(ctors, &resolved.Constructor{
				Name: ctor.Name.Name,
				Args: args,
				Span: ctor.Span,
			})
		}
		def = &resolved.SumDef{Constructors: ctors}
	case *ast.RecordDef:
		fields := make([]*resolved.FieldDecl, 0, len(d.Fields))
		for _, f := range d.Fields {
			fields = append(fields, &resolved.FieldDecl{
				Name: f.Name.Name,
				Type: c.resolveType(f.Type),
				Span: f.Span,
			})
		}
		def = &resolved.RecordDef{Fields: fields}
	case *ast.SynonymDef:
		def = &resolved.SynonymDef{Type: c.resolveType(d.Type)}
	default:
		def = &resolved.AbstractDef{}
	}

	return &resolved.TypeDecl{
		ID:      id,
		Vis:     visibility(n.Vis),
		Name:    n.Name.Name,
		Binders: binders,
		Def:     def,
		Span:    n.Span,
	}
}

func (c *Context) resolveEffectDecl(n *ast.EffectDecl) *resolved.EffectDecl {
	id := c.declaredNamespace(n.Name.Name)

	c.Scopes.Push(CapType)
	defer c.Scopes.Pop(CapType)
	binders := c.resolveTypeBinders(n.Binders)

	fields := make([]*resolved.EffectField, 0, len(n.Fields))
	for _, f := range n.Fields {
		args := make([]resolved.Type, 0, len(f.Args))
		for _, arg := range f.Args {
			args = append(args, c.resolveType(arg))
		}
		fields = append(fields, &resolved.EffectField{
			Vis:  visibility(f.Vis),
			Name: f.Name.Name,
			Args: args,
			Ret:  c.resolveType(f.Ret),
			Span: f.Span,
		})
	}

	return &resolved.EffectDecl{
		ID:      id,
		Vis:     visibility(n.Vis),
		Name:    n.Name.Name,
		Binders: binders,
		Fields:  fields,
		Span:    n.Span,
	}
}

func (c *Context) resolveModuleDecl(n *ast.ModuleDecl) *resolved.ModuleDecl {
	prev := c.enterModule(n.Name.Name)
	defer c.restoreModule(prev)

	for _, decl := range n.Decls {
		if use, ok := decl.(*ast.UseDecl); ok {
			c.resolveUse(use)
		}
	}
	decls := make([]resolved.Decl, 0, len(n.Decls))
	for _, decl := range n.Decls {
		if r := c.resolveDecl(decl); r != nil {
			decls = append(decls, r)
		}
	}

	return &resolved.ModuleDecl{
		ID:    c.Current(),
		Vis:   visibility(n.Vis),
		Name:  n.Name.Name,
		Decls: decls,
		Span:  n.Span,
	}
}

// resolveArm resolves one when/cases arm: all of its patterns share one
// value scope and one capture map, then the guard and body run inside it.
func (c *Context) resolveArm(arm *ast.PatternArm) *resolved.PatternArm {
	c.Scopes.Push(CapValue)
	defer c.Scopes.Pop(CapValue)

	c.pushCaptures()
	pats := make([]resolved.Pattern, 0, len(arm.Patterns))
	for _, p := range arm.Patterns {
		pats = append(pats, c.resolvePattern(p))
	}
	c.promote(c.popCaptures())

	var guard resolved.Expr
	if arm.Guard != nil {
		guard = c.resolveExpr(arm.Guard)
	}
	return &resolved.PatternArm{
		Patterns: pats,
		Guard:    guard,
		Body:     c.resolveExpr(arm.Body),
		Span:     arm.Span,
	}
}

// declaredNamespace recovers the namespace the declare phase assigned to a
// type, effect or module declared in the current namespace. Declarations
// skipped as duplicates have none.
func (c *Context) declaredNamespace(name source.StringID) resolved.NamespaceID {
	if item, ok := c.Registry.Get(c.current).Modules[name]; ok {
		return item.Item
	}
	return resolved.NoNamespaceID
}

// bindFreeTypeVars walks a signature type and binds every type variable
// not already in scope, matching the implicit generalization a missing
// forall implies.
func (c *Context) bindFreeTypeVars(t ast.Type) {
	switch n := t.(type) {
	case *ast.TypeVar:
		if !c.Scopes.Contains(CapType, n.Name.Name) {
			c.Scopes.Add(CapType, n.Name.Name)
		}
	case *ast.TypeArrow:
		c.bindFreeTypeVars(n.Left)
		if n.Effects != nil {
			for _, e := range n.Effects.Types {
				c.bindFreeTypeVars(e)
			}
		}
		c.bindFreeTypeVars(n.Right)
	case *ast.TypeApp:
		c.bindFreeTypeVars(n.Func)
		for _, arg := range n.Args {
			c.bindFreeTypeVars(arg)
		}
	case *ast.TypeTuple:
		for _, item := range n.Items {
			c.bindFreeTypeVars(item)
		}
	case *ast.TypeParen:
		c.bindFreeTypeVars(n.Inner)
	case *ast.TypeForall:
		// Explicit binders own their variables; nothing to collect here.
	}
}
