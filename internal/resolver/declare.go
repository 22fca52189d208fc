package resolver

import (
	"fmt"
	"slices"

	"fen/internal/ast"
	"fen/internal/diag"
	"fen/internal/resolved"
	"fen/internal/source"
)

// Declarer runs the declare phase: it scans every module once, assigns a
// NamespaceID to the root and to each module, type and effect declaration,
// and fills the registry and the module tree. Resolution starts only after
// every unit has been declared.
type Declarer struct {
	Registry *Registry
	Tree     *ModuleTree
	interner *source.Interner
	reporter diag.Reporter
}

// NewDeclarer creates a declarer with a fresh registry and a root
// namespace owning the tree root.
func NewDeclarer(interner *source.Interner, reporter diag.Reporter) *Declarer {
	reg := NewRegistry(0)
	root := reg.New(nil)
	// Intern the desugaring names while the interner is still owned by a
	// single goroutine; resolution contexts only read them back.
	internLibraryRefs(interner)
	return &Declarer{
		Registry: reg,
		Tree:     NewModuleTree(root),
		interner: interner,
		reporter: reporter,
	}
}

// Root returns the root namespace of the compilation.
func (d *Declarer) Root() resolved.NamespaceID {
	return d.Tree.ID
}

// DeclareProgram declares one compilation unit at the given module path.
// An empty path declares directly into the root namespace.
func (d *Declarer) DeclareProgram(path []source.StringID, prog *ast.Program) resolved.NamespaceID {
	ns := d.Root()
	if len(path) > 0 {
		node, ok := d.Tree.FindSubTree(path)
		if ok && node.ID.IsValid() {
			ns = node.ID
		} else {
			ns = d.declarePath(path)
		}
	}
	d.declareDecls(ns, path, prog.Decls)
	return ns
}

// declarePath allocates namespaces along a unit path, linking each new
// module into its parent's modules map as public.
func (d *Declarer) declarePath(path []source.StringID) resolved.NamespaceID {
	parent := d.Root()
	for i, seg := range path {
		prefix := path[:i+1]
		node, ok := d.Tree.FindSubTree(prefix)
		if ok && node.ID.IsValid() {
			parent = node.ID
			continue
		}
		id := d.Registry.New(slices.Clone(prefix))
		d.Tree.Add(prefix, id)
		d.Registry.Get(parent).Modules[seg] = Item[resolved.NamespaceID]{
			Item: id,
			Vis:  resolved.Public,
		}
		parent = id
	}
	return parent
}

func (d *Declarer) declareDecls(ns resolved.NamespaceID, path []source.StringID, decls []ast.Decl) {
	for _, decl := range decls {
		switch n := decl.(type) {
		case *ast.ModuleDecl:
			d.declareModule(ns, path, n)
		case *ast.TypeDecl:
			d.declareType(ns, path, n)
		case *ast.EffectDecl:
			d.declareEffect(ns, path, n)
		case *ast.LetDecl:
			d.declareLet(ns, n)
		case *ast.UseDecl:
			// Imports are per-unit state, handled at resolve time.
		}
	}
}

func (d *Declarer) declareModule(parent resolved.NamespaceID, path []source.StringID, n *ast.ModuleDecl) {
	parentNS := d.Registry.Get(parent)
	if _, ok := parentNS.Modules[n.Name.Name]; ok {
		diag.ReportError(d.reporter, diag.DeclDuplicateModule, n.Name.Span,
			fmt.Sprintf("module `%s` is declared twice", d.interner.MustLookup(n.Name.Name))).
			Emit()
		return
	}
	childPath := append(slices.Clone(path), n.Name.Name)
	id := d.Registry.New(childPath)
	d.Tree.Add(childPath, id)
	parentNS.Modules[n.Name.Name] = Item[resolved.NamespaceID]{
		Item: id,
		Vis:  visibility(n.Vis),
	}
	d.declareDecls(id, childPath, n.Decls)
}

// declareType gives the type its own namespace holding constructors or
// fields, reachable as a path segment, and registers the type in the
// parent's type map. Constructors are also exported unqualified into the
// parent so the declaring module can use them bare.
func (d *Declarer) declareType(parent resolved.NamespaceID, path []source.StringID, n *ast.TypeDecl) {
	parentNS := d.Registry.Get(parent)
	if prev, ok := parentNS.Types[n.Name.Name]; ok {
		diag.ReportError(d.reporter, diag.DeclDuplicateDefinition, n.Name.Span,
			fmt.Sprintf("type `%s` is declared twice", d.interner.MustLookup(n.Name.Name))).
			WithNote(prev.Item.Ref.Span, "previously declared here").
			Emit()
		return
	}

	childPath := append(slices.Clone(path), n.Name.Name)
	id := d.Registry.New(childPath)
	d.Tree.Add(childPath, id)
	childNS := d.Registry.Get(id)
	vis := visibility(n.Vis)

	kind := TypeAbstract
	switch def := n.Def.(type) {
	case *ast.SumDef:
		kind = TypeSum
		for _, ctor := range def.Constructors {
			ref := resolved.Ref(id, ctor.Name.Name, ctor.Name.Span)
			item := Item[Value]{
				Item: Value{Kind: ValueConstructor, Ref: ref},
				Vis:  vis,
			}
			if prev, dup := childNS.Values[ctor.Name.Name]; dup {
				diag.ReportError(d.reporter, diag.DeclDuplicateConstructor, ctor.Name.Span,
					fmt.Sprintf("constructor `%s` is declared twice", d.interner.MustLookup(ctor.Name.Name))).
					WithNote(prev.Item.Ref.Span, "previously declared here").
					Emit()
				continue
			}
			childNS.Values[ctor.Name.Name] = item
			if _, taken := parentNS.Values[ctor.Name.Name]; !taken {
				parentNS.Values[ctor.Name.Name] = item
			}
		}
	case *ast.RecordDef:
		kind = TypeRecord
		for _, field := range def.Fields {
			ref := resolved.Ref(id, field.Name.Name, field.Name.Span)
			if prev, dup := childNS.Values[field.Name.Name]; dup {
				diag.ReportError(d.reporter, diag.DeclDuplicateDefinition, field.Name.Span,
					fmt.Sprintf("field `%s` is declared twice", d.interner.MustLookup(field.Name.Name))).
					WithNote(prev.Item.Ref.Span, "previously declared here").
					Emit()
				continue
			}
			childNS.Values[field.Name.Name] = Item[Value]{
				Item: Value{Kind: ValueField, Ref: ref},
				Vis:  vis,
			}
		}
	case *ast.SynonymDef:
		kind = TypeSynonym
	case *ast.AbstractDef:
		kind = TypeAbstract
	}

	parentNS.Types[n.Name.Name] = Item[TypeValue]{
		Item: TypeValue{Kind: kind, Ref: resolved.Ref(parent, n.Name.Name, n.Name.Span)},
		Vis:  vis,
	}
	parentNS.Modules[n.Name.Name] = Item[resolved.NamespaceID]{
		Item: id,
		Vis:  vis,
	}
}

// declareEffect mirrors declareType: the effect owns a namespace with its
// operations, and the operations are exported unqualified into the parent.
func (d *Declarer) declareEffect(parent resolved.NamespaceID, path []source.StringID, n *ast.EffectDecl) {
	parentNS := d.Registry.Get(parent)
	if prev, ok := parentNS.Types[n.Name.Name]; ok {
		diag.ReportError(d.reporter, diag.DeclDuplicateDefinition, n.Name.Span,
			fmt.Sprintf("effect `%s` is declared twice", d.interner.MustLookup(n.Name.Name))).
			WithNote(prev.Item.Ref.Span, "previously declared here").
			Emit()
		return
	}

	childPath := append(slices.Clone(path), n.Name.Name)
	id := d.Registry.New(childPath)
	d.Tree.Add(childPath, id)
	childNS := d.Registry.Get(id)
	vis := visibility(n.Vis)

	for _, field := range n.Fields {
		ref := resolved.Ref(id, field.Name.Name, field.Name.Span)
		item := Item[Value]{
			Item: Value{Kind: ValueEffect, Ref: ref},
			Vis:  visibility(field.Vis),
		}
		if prev, dup := childNS.Values[field.Name.Name]; dup {
			diag.ReportError(d.reporter, diag.DeclDuplicateEffect, field.Name.Span,
				fmt.Sprintf("effect operation `%s` is declared twice", d.interner.MustLookup(field.Name.Name))).
				WithNote(prev.Item.Ref.Span, "previously declared here").
				Emit()
			continue
		}
		childNS.Values[field.Name.Name] = item
		if _, taken := parentNS.Values[field.Name.Name]; !taken {
			parentNS.Values[field.Name.Name] = item
		}
	}

	parentNS.Types[n.Name.Name] = Item[TypeValue]{
		Item: TypeValue{Kind: TypeEffectDecl, Ref: resolved.Ref(parent, n.Name.Name, n.Name.Span)},
		Vis:  vis,
	}
	parentNS.Modules[n.Name.Name] = Item[resolved.NamespaceID]{
		Item: id,
		Vis:  vis,
	}
}

func (d *Declarer) declareLet(parent resolved.NamespaceID, n *ast.LetDecl) {
	parentNS := d.Registry.Get(parent)
	if prev, ok := parentNS.Values[n.Name.Name]; ok {
		diag.ReportError(d.reporter, diag.DeclDuplicateDefinition, n.Name.Span,
			fmt.Sprintf("`%s` is declared twice", d.interner.MustLookup(n.Name.Name))).
			WithNote(prev.Item.Ref.Span, "previously declared here").
			Emit()
		return
	}
	parentNS.Values[n.Name.Name] = Item[Value]{
		Item: Value{
			Kind: ValueFunction,
			Ref:  resolved.Ref(parent, n.Name.Name, n.Name.Span),
		},
		Vis: visibility(n.Vis),
	}
}

// ReExports runs the re-export pass over one declared unit: every public
// use publishes its target's exported surface into the enclosing
// namespace as pass-through items. The pass runs after all units have
// been declared and before resolution starts, so the registry is still
// owned by a single goroutine.
func (d *Declarer) ReExports(ns resolved.NamespaceID, prog *ast.Program) {
	d.reExportDecls(ns, prog.Decls)
}

func (d *Declarer) reExportDecls(ns resolved.NamespaceID, decls []ast.Decl) {
	for _, decl := range decls {
		switch n := decl.(type) {
		case *ast.UseDecl:
			if n.Vis != ast.Public {
				continue
			}
			target, ok := d.Tree.Find(n.Path.Symbols())
			if !ok {
				// Resolution reports the broken path with unit context.
				continue
			}
			d.reExport(ns, target, n.Alias)
		case *ast.ModuleDecl:
			if item, ok := d.Registry.Get(ns).Modules[n.Name.Name]; ok {
				d.reExportDecls(item.Item, n.Decls)
			}
		}
	}
}

// reExport copies the target's exported surface into a namespace. The
// copies keep their original qualified references and stay private; the
// pass-through flag is what makes them reachable from outside.
func (d *Declarer) reExport(into, from resolved.NamespaceID, alias *ast.Ident) {
	dst := d.Registry.Get(into)
	if alias != nil {
		if _, taken := dst.Modules[alias.Name]; !taken {
			dst.Modules[alias.Name] = Item[resolved.NamespaceID]{Item: from, PassThrough: true}
		}
		return
	}
	src := d.Registry.Get(from)
	if src == nil || src == dst {
		return
	}
	for name, item := range src.Values {
		if item.Vis != resolved.Public && !item.PassThrough {
			continue
		}
		if _, taken := dst.Values[name]; !taken {
			dst.Values[name] = Item[Value]{Item: item.Item, PassThrough: true}
		}
	}
	for name, item := range src.Types {
		if item.Vis != resolved.Public && !item.PassThrough {
			continue
		}
		if _, taken := dst.Types[name]; !taken {
			dst.Types[name] = Item[TypeValue]{Item: item.Item, PassThrough: true}
		}
	}
	for name, item := range src.Modules {
		if item.Vis != resolved.Public && !item.PassThrough {
			continue
		}
		if _, taken := dst.Modules[name]; !taken {
			dst.Modules[name] = Item[resolved.NamespaceID]{Item: item.Item, PassThrough: true}
		}
	}
}

func visibility(v ast.Visibility) resolved.Visibility {
	if v == ast.Public {
		return resolved.Public
	}
	return resolved.Private
}
