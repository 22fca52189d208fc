package resolver

import (
	"testing"

	"fen/internal/ast"
	"fen/internal/diag"
	"fen/internal/source"
)

func TestDeclareBuildsTreeAndNamespaces(t *testing.T) {
	r := newRig(t)
	prog := &ast.Program{Decls: []ast.Decl{
		&ast.ModuleDecl{Vis: ast.Public, Name: r.id("Data"), Decls: []ast.Decl{
			sumType(r, ast.Public, "Maybe", "Just", "Nothing"),
			letBody(ast.Public, r.id("map"), intLit(r, "0")),
		}},
	}}
	reporter := diag.BagReporter{Bag: r.bag}
	d := NewDeclarer(r.interner, reporter)
	d.DeclareProgram(nil, prog)

	if r.bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %d", r.bag.Len())
	}

	dataNS, ok := d.Tree.Find([]source.StringID{r.sym("Data")})
	if !ok {
		t.Fatalf("module Data missing from the tree")
	}
	maybeNS, ok := d.Tree.Find([]source.StringID{r.sym("Data"), r.sym("Maybe")})
	if !ok {
		t.Fatalf("type Maybe must own a namespace reachable as a path")
	}

	data := d.Registry.Get(dataNS)
	if _, ok := data.Values[r.sym("map")]; !ok {
		t.Fatalf("map not declared in Data")
	}
	if _, ok := data.Types[r.sym("Maybe")]; !ok {
		t.Fatalf("Maybe not declared in Data's type map")
	}
	just, ok := data.Values[r.sym("Just")]
	if !ok {
		t.Fatalf("constructors must be visible unqualified in the declaring module")
	}
	if just.Item.Kind != ValueConstructor || just.Item.Ref.Namespace != maybeNS {
		t.Fatalf("constructor must point at the type's namespace")
	}
	maybe := d.Registry.Get(maybeNS)
	if _, ok := maybe.Values[r.sym("Nothing")]; !ok {
		t.Fatalf("constructors must live in the type's namespace")
	}
}

func TestDeclareReportsDuplicates(t *testing.T) {
	cases := []struct {
		name string
		prog func(r *rig) *ast.Program
		code diag.Code
	}{
		{
			name: "let",
			prog: func(r *rig) *ast.Program {
				return &ast.Program{Decls: []ast.Decl{
					letBody(ast.Public, r.id("v"), intLit(r, "1")),
					letBody(ast.Public, r.id("v"), intLit(r, "2")),
				}}
			},
			code: diag.DeclDuplicateDefinition,
		},
		{
			name: "module",
			prog: func(r *rig) *ast.Program {
				return &ast.Program{Decls: []ast.Decl{
					&ast.ModuleDecl{Vis: ast.Public, Name: r.id("M")},
					&ast.ModuleDecl{Vis: ast.Public, Name: r.id("M")},
				}}
			},
			code: diag.DeclDuplicateModule,
		},
		{
			name: "constructor",
			prog: func(r *rig) *ast.Program {
				return &ast.Program{Decls: []ast.Decl{
					sumType(r, ast.Public, "T", "C", "C"),
				}}
			},
			code: diag.DeclDuplicateConstructor,
		},
		{
			name: "effect operation",
			prog: func(r *rig) *ast.Program {
				return &ast.Program{Decls: []ast.Decl{
					&ast.EffectDecl{Vis: ast.Public, Name: r.id("E"), Fields: []*ast.EffectField{
						{Vis: ast.Public, Name: r.id("op"), Ret: &ast.TypeUnit{}},
						{Vis: ast.Public, Name: r.id("op"), Ret: &ast.TypeUnit{}},
					}},
				}}
			},
			code: diag.DeclDuplicateEffect,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRig(t)
			d := NewDeclarer(r.interner, diag.BagReporter{Bag: r.bag})
			d.DeclareProgram(nil, tc.prog(r))
			if r.bag.Len() != 1 {
				t.Fatalf("expected 1 diagnostic, got %d: %v", r.bag.Len(), r.codes())
			}
			if got := r.bag.Items()[0].Code; got != tc.code {
				t.Fatalf("expected %v, got %v", tc.code, got)
			}
		})
	}
}

func TestDeclareUnitPathAllocatesParents(t *testing.T) {
	r := newRig(t)
	d := NewDeclarer(r.interner, diag.BagReporter{Bag: r.bag})
	unit := d.DeclareProgram([]source.StringID{r.sym("App"), r.sym("Main")}, &ast.Program{
		Decls: []ast.Decl{letBody(ast.Public, r.id("main"), intLit(r, "0"))},
	})

	got, ok := d.Tree.Find([]source.StringID{r.sym("App"), r.sym("Main")})
	if !ok || got != unit {
		t.Fatalf("unit namespace not reachable through the tree")
	}
	if _, ok := d.Tree.Find([]source.StringID{r.sym("App")}); !ok {
		t.Fatalf("intermediate module App must be allocated")
	}
	if _, ok := d.Registry.Get(unit).Values[r.sym("main")]; !ok {
		t.Fatalf("main not declared in the unit namespace")
	}
}
