package resolver

import (
	"fmt"

	"fen/internal/ast"
	"fen/internal/diag"
	"fen/internal/resolved"
)

func (c *Context) resolveType(t ast.Type) resolved.Type {
	switch n := t.(type) {
	case *ast.TypeUpper:
		item, ok := c.findType(n.Path, true)
		if !ok {
			return &resolved.TypeError{Span: n.Path.Span}
		}
		ref := item.Item.Ref
		return &resolved.TypeName{Ref: resolved.Ref(ref.Namespace, ref.Name, n.Path.Span)}

	case *ast.TypeVar:
		if !c.Scopes.Contains(CapType, n.Name.Name) {
			diag.ReportError(c.Reporter, diag.ResCannotFind, n.Name.Span,
				fmt.Sprintf("cannot find type variable `%s`", c.name(n.Name.Name))).
				Emit()
			return &resolved.TypeError{Span: n.Name.Span}
		}
		return &resolved.TypeVar{Name: n.Name.Name, Span: n.Name.Span}

	case *ast.TypeArrow:
		return &resolved.TypePi{
			Left:    c.resolveType(n.Left),
			Effects: c.resolveEffects(n.Effects),
			Right:   c.resolveType(n.Right),
			Span:    n.Span,
		}

	case *ast.TypeApp:
		args := make([]resolved.Type, 0, len(n.Args))
		for _, arg := range n.Args {
			args = append(args, c.resolveType(arg))
		}
		return &resolved.TypeApp{
			Func: c.resolveType(n.Func),
			Args: args,
			Span: n.Span,
		}

	case *ast.TypeForall:
		c.Scopes.Push(CapType)
		defer c.Scopes.Pop(CapType)
		params := c.resolveTypeBinders(n.Params)
		return &resolved.TypeForall{
			Params: params,
			Body:   c.resolveType(n.Body),
			Span:   n.Span,
		}

	case *ast.TypeUnit:
		return &resolved.TypeUnit{Span: n.Span}

	case *ast.TypeTuple:
		items := make([]resolved.Type, 0, len(n.Items))
		for _, item := range n.Items {
			items = append(items, c.resolveType(item))
		}
		return &resolved.TypeTuple{Items: items, Span: n.Span}

	case *ast.TypeParen:
		return c.resolveType(n.Inner)

	default:
		panic(fmt.Sprintf("resolver: unknown type %T", t))
	}
}

func (c *Context) resolveEffects(e *ast.Effects) *resolved.Effects {
	if e == nil {
		return nil
	}
	types := make([]resolved.Type, 0, len(e.Types))
	for _, t := range e.Types {
		types = append(types, c.resolveType(t))
	}
	return &resolved.Effects{Types: types, Span: e.Span}
}

// resolveTypeBinders binds declaration-head type variables into the
// innermost type scope, keeping explicit kind annotations.
func (c *Context) resolveTypeBinders(binders []ast.TypeBinder) []resolved.TypeBinder {
	out := make([]resolved.TypeBinder, 0, len(binders))
	for _, b := range binders {
		switch n := b.(type) {
		case *ast.BinderImplicit:
			c.Scopes.Add(CapType, n.Name.Name)
			out = append(out, resolved.TypeBinder{Name: n.Name.Name, Span: n.Name.Span})
		case *ast.BinderExplicit:
			c.Scopes.Add(CapType, n.Name.Name)
			out = append(out, resolved.TypeBinder{
				Name: n.Name.Name,
				Kind: resolveKind(n.Kind),
				Span: n.Span,
			})
		}
	}
	return out
}

func resolveKind(k ast.Kind) resolved.Kind {
	switch n := k.(type) {
	case *ast.KindStar:
		return &resolved.KindStar{Span: n.Span}
	case *ast.KindArrow:
		return &resolved.KindArrow{
			Left:  resolveKind(n.Left),
			Right: resolveKind(n.Right),
			Span:  n.Span,
		}
	case *ast.KindParen:
		return resolveKind(n.Inner)
	default:
		return &resolved.KindError{}
	}
}
