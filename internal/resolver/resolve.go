// Package resolver turns the concrete syntax tree into the resolved tree:
// every identifier becomes a qualified reference into a declaring
// namespace, a scope-checked local variable, or an explicit error node.
// Resolution never aborts; failures become diagnostics plus error markers
// and traversal continues over the rest of the tree.
package resolver

import (
	"fmt"

	"fen/internal/ast"
	"fen/internal/diag"
	"fen/internal/resolved"
)

// ResolveProgram resolves one compilation unit against the declared
// registry and module tree. Use declarations are processed first so every
// top-level declaration sees the full import state.
func (c *Context) ResolveProgram(prog *ast.Program) *resolved.Module {
	for _, decl := range prog.Decls {
		if use, ok := decl.(*ast.UseDecl); ok {
			c.resolveUse(use)
		}
	}
	out := &resolved.Module{}
	for _, decl := range prog.Decls {
		if r := c.resolveDecl(decl); r != nil {
			out.Decls = append(out.Decls, r)
		}
	}
	return out
}

// resolveUse processes `use path [as alias]`. Aliased imports only feed
// path canonicalization; unaliased imports spill the target's exports
// into the import map under their short names.
func (c *Context) resolveUse(n *ast.UseDecl) {
	syms := c.Imports.Canonicalize(n.Path.Symbols())
	id, ok := c.Tree.Find(syms)
	if !ok {
		diag.ReportError(c.Reporter, diag.ResCannotFindModule, n.Path.Span,
			fmt.Sprintf("cannot find module `%s`", c.pathName(syms))).
			Emit()
		return
	}
	if n.Alias != nil {
		c.Imports.AddAlias(n.Alias.Name, syms)
		return
	}

	ns := c.Registry.Get(id)
	for name, item := range ns.Values {
		if item.Vis != resolved.Public && !item.PassThrough {
			continue
		}
		c.Imports.Add(ClassValue, name, item.Item.Ref)
	}
	for name, item := range ns.Types {
		if item.Vis != resolved.Public && !item.PassThrough {
			continue
		}
		c.Imports.Add(ClassType, name, item.Item.Ref)
	}
	for name, item := range ns.Modules {
		if item.Vis != resolved.Public && !item.PassThrough {
			continue
		}
		c.Imports.Add(ClassModule, name, resolved.Qualified{Namespace: item.Item, Name: name})
	}
}

func resolveLiteral(lit ast.Literal) resolved.Literal {
	switch l := lit.(type) {
	case *ast.LitString:
		return &resolved.LitString{Value: l.Value, Span: l.Span}
	case *ast.LitInteger:
		return &resolved.LitInteger{Value: l.Value, Span: l.Span}
	case *ast.LitFloat:
		return &resolved.LitFloat{Value: l.Value, Span: l.Span}
	case *ast.LitChar:
		return &resolved.LitChar{Value: l.Value, Span: l.Span}
	case *ast.LitUnit:
		return &resolved.LitUnit{Span: l.Span}
	default:
		panic(fmt.Sprintf("resolver: unknown literal %T", lit))
	}
}
