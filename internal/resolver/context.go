package resolver

import (
	"fmt"
	"strings"

	"fen/internal/ast"
	"fen/internal/diag"
	"fen/internal/resolved"
	"fen/internal/source"
)

// Context is the mutable state of one resolution run: the scope stack, the
// capture-map stack for pattern linearity, the current module path and the
// read-only registry, tree and import tables. It is owned by a single
// traversal and never shared.
type Context struct {
	Scopes   *Kaleidoscope
	Registry *Registry
	Tree     *ModuleTree
	Imports  *Imports
	Reporter diag.Reporter

	interner *source.Interner
	lib      libraryRefs
	captures []map[source.StringID]source.Span
	path     []source.StringID
	current  resolved.NamespaceID
	root     resolved.NamespaceID
}

// NewContext prepares resolution of one compilation unit rooted at the
// given namespace. The registry and tree must be fully declared already.
func NewContext(reg *Registry, tree *ModuleTree, unit resolved.NamespaceID, interner *source.Interner, reporter diag.Reporter) *Context {
	var path []source.StringID
	if ns := reg.Get(unit); ns != nil {
		path = append(path, ns.Path...)
	}
	return &Context{
		Scopes:   NewKaleidoscope(),
		Registry: reg,
		Tree:     tree,
		Imports:  NewImports(),
		Reporter: reporter,
		interner: interner,
		lib:      internLibraryRefs(interner),
		path:     path,
		current:  unit,
		root:     tree.ID,
	}
}

// Current returns the namespace resolution is currently inside of.
func (c *Context) Current() resolved.NamespaceID { return c.current }

// enterModule descends into a nested module declaration. It returns the
// previous namespace for restoreModule.
func (c *Context) enterModule(name source.StringID) resolved.NamespaceID {
	prev := c.current
	c.path = append(c.path, name)
	if id, ok := c.Tree.Find(c.path); ok {
		c.current = id
	}
	return prev
}

func (c *Context) restoreModule(prev resolved.NamespaceID) {
	c.path = c.path[:len(c.path)-1]
	c.current = prev
}

func (c *Context) name(sym source.StringID) string {
	return c.interner.MustLookup(sym)
}

func (c *Context) pathName(syms []source.StringID) string {
	parts := make([]string, len(syms))
	for i, sym := range syms {
		parts[i] = c.name(sym)
	}
	return strings.Join(parts, ".")
}

// ---- pattern capture stack ----

func (c *Context) capturesOpen() bool { return len(c.captures) > 0 }

func (c *Context) pushCaptures() {
	c.captures = append(c.captures, make(map[source.StringID]source.Span))
}

func (c *Context) popCaptures() map[source.StringID]source.Span {
	if len(c.captures) == 0 {
		panic("resolver: pop on empty capture stack")
	}
	top := c.captures[len(c.captures)-1]
	c.captures = c.captures[:len(c.captures)-1]
	return top
}

// captureVar records a pattern binding. Rebinding a name anywhere in the
// open capture stack is a linearity violation; the occurrence is reported
// and rejected while resolution continues.
func (c *Context) captureVar(name source.StringID, span source.Span) bool {
	if len(c.captures) == 0 {
		panic("resolver: capture with no open capture map")
	}
	for i := len(c.captures) - 1; i >= 0; i-- {
		if prev, ok := c.captures[i][name]; ok {
			diag.ReportError(c.Reporter, diag.ResDuplicatePattern, span,
				fmt.Sprintf("variable `%s` is bound more than once in the same pattern", c.name(name))).
				WithNote(prev, "first bound here").
				Emit()
			return false
		}
	}
	c.captures[len(c.captures)-1][name] = span
	return true
}

// promote moves a finished capture set into the innermost value scope so
// the pattern's body can reference the bindings.
func (c *Context) promote(set map[source.StringID]source.Span) {
	for sym := range set {
		c.Scopes.Add(CapValue, sym)
	}
}

// ---- qualified lookup ----

// walkModules resolves a multi-segment path prefix to a namespace by
// walking modules maps. The first segment is tried relative to the current
// namespace, then against the root for absolute references, then against
// the module-class import map. A private module owned by another namespace
// stops the whole lookup with no partial result.
func (c *Context) walkModules(prefix []source.StringID, span source.Span, report bool) (resolved.NamespaceID, bool) {
	ns, ok := c.firstSegment(prefix, span, report)
	if !ok {
		return resolved.NoNamespaceID, false
	}
	for _, seg := range prefix[1:] {
		item, ok := c.Registry.Get(ns).Modules[seg]
		if !ok {
			if report {
				diag.ReportError(c.Reporter, diag.ResInvalidPath, span,
					fmt.Sprintf("cannot find module `%s`", c.pathName(prefix))).
					Emit()
			}
			return resolved.NoNamespaceID, false
		}
		if item.Vis == resolved.Private && !item.PassThrough && ns != c.current {
			if report {
				diag.ReportError(c.Reporter, diag.ResPrivateDefinition, span,
					fmt.Sprintf("module `%s` is private", c.name(seg))).
					Emit()
			}
			return resolved.NoNamespaceID, false
		}
		ns = item.Item
	}
	return ns, true
}

// firstSegment resolves the leading path segment and reports the failure
// itself, so the caller can stop without a second diagnostic.
func (c *Context) firstSegment(prefix []source.StringID, span source.Span, report bool) (resolved.NamespaceID, bool) {
	seg := prefix[0]
	if item, ok := c.Registry.Get(c.current).Modules[seg]; ok {
		return item.Item, true
	}
	if item, ok := c.Registry.Get(c.root).Modules[seg]; ok {
		if item.Vis == resolved.Private && !item.PassThrough && c.root != c.current {
			if report {
				diag.ReportError(c.Reporter, diag.ResPrivateDefinition, span,
					fmt.Sprintf("module `%s` is private", c.name(seg))).
					Emit()
			}
			return resolved.NoNamespaceID, false
		}
		return item.Item, true
	}
	if ref, ambiguous, ok := c.Imports.Lookup(ClassModule, seg); ok {
		if ambiguous {
			if report {
				diag.ReportError(c.Reporter, diag.ResAmbiguousImport, span,
					fmt.Sprintf("module `%s` is imported from multiple modules", c.name(seg))).
					Emit()
			}
			return resolved.NoNamespaceID, false
		}
		return ref.Namespace, true
	}
	if report {
		diag.ReportError(c.Reporter, diag.ResInvalidPath, span,
			fmt.Sprintf("cannot find module `%s`", c.pathName(prefix))).
			Emit()
	}
	return resolved.NoNamespaceID, false
}

// findValue resolves a possibly-qualified value reference per the lookup
// contract: alias canonicalization, module walk for qualified paths, then
// import map and current namespace for bare names. When report is false
// every failure stays silent so callers can probe one name class before
// another and phrase the report themselves.
func (c *Context) findValue(path ast.Path, report bool) (Item[Value], bool) {
	var zero Item[Value]
	syms := c.Imports.Canonicalize(path.Symbols())
	last := syms[len(syms)-1]

	if len(syms) > 1 {
		ns, ok := c.walkModules(syms[:len(syms)-1], path.Span, report)
		if !ok {
			return zero, false
		}
		item, ok := c.Registry.Get(ns).Values[last]
		if !ok {
			if report {
				diag.ReportError(c.Reporter, diag.ResNotFound, path.Span,
					fmt.Sprintf("cannot find `%s`", c.pathName(syms))).
					Emit()
			}
			return zero, false
		}
		if !c.accessible(item.Vis, item.PassThrough, ns) {
			if report {
				diag.ReportError(c.Reporter, diag.ResPrivateDefinition, path.Last.Span,
					fmt.Sprintf("`%s` is private", c.pathName(syms))).
					Emit()
			}
			return zero, false
		}
		return item, true
	}

	if ref, ambiguous, ok := c.Imports.Lookup(ClassValue, last); ok {
		if ambiguous {
			if report {
				diag.ReportError(c.Reporter, diag.ResAmbiguousImport, path.Span,
					fmt.Sprintf("`%s` is imported from multiple modules", c.name(last))).
					Emit()
			}
			return zero, false
		}
		if ns := c.Registry.Get(ref.Namespace); ns != nil {
			if item, ok := ns.Values[ref.Name]; ok {
				return item, true
			}
		}
		// Stale import entry: the declaring namespace no longer carries
		// the declaration. Fall through to the current namespace.
	}

	if item, ok := c.Registry.Get(c.current).Values[last]; ok {
		return item, true
	}
	if report {
		diag.ReportError(c.Reporter, diag.ResCannotFind, path.Span,
			fmt.Sprintf("cannot find `%s`", c.name(last))).
			Emit()
	}
	return zero, false
}

// findType is findValue over the type maps.
func (c *Context) findType(path ast.Path, report bool) (Item[TypeValue], bool) {
	var zero Item[TypeValue]
	syms := c.Imports.Canonicalize(path.Symbols())
	last := syms[len(syms)-1]

	if len(syms) > 1 {
		ns, ok := c.walkModules(syms[:len(syms)-1], path.Span, report)
		if !ok {
			return zero, false
		}
		item, ok := c.Registry.Get(ns).Types[last]
		if !ok {
			if report {
				diag.ReportError(c.Reporter, diag.ResNotFound, path.Span,
					fmt.Sprintf("cannot find type `%s`", c.pathName(syms))).
					Emit()
			}
			return zero, false
		}
		if !c.accessible(item.Vis, item.PassThrough, ns) {
			if report {
				diag.ReportError(c.Reporter, diag.ResPrivateDefinition, path.Last.Span,
					fmt.Sprintf("type `%s` is private", c.pathName(syms))).
					Emit()
			}
			return zero, false
		}
		return item, true
	}

	if ref, ambiguous, ok := c.Imports.Lookup(ClassType, last); ok {
		if ambiguous {
			if report {
				diag.ReportError(c.Reporter, diag.ResAmbiguousImport, path.Span,
					fmt.Sprintf("type `%s` is imported from multiple modules", c.name(last))).
					Emit()
			}
			return zero, false
		}
		if ns := c.Registry.Get(ref.Namespace); ns != nil {
			if item, ok := ns.Types[ref.Name]; ok {
				return item, true
			}
		}
	}

	if item, ok := c.Registry.Get(c.current).Types[last]; ok {
		return item, true
	}
	if report {
		diag.ReportError(c.Reporter, diag.ResCannotFind, path.Span,
			fmt.Sprintf("cannot find type `%s`", c.name(last))).
			Emit()
	}
	return zero, false
}

// accessible implements the visibility rule for a found item: private
// declarations are visible inside their declaring namespace and through
// pass-through re-export conduits.
func (c *Context) accessible(vis resolved.Visibility, passThrough bool, declaring resolved.NamespaceID) bool {
	if vis == resolved.Public {
		return true
	}
	if declaring == c.current {
		return true
	}
	return passThrough
}
