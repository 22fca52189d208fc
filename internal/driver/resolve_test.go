package driver

import (
	"context"
	"fmt"
	"testing"

	"fen/internal/ast"
	"fen/internal/project"
	"fen/internal/resolved"
	"fen/internal/source"
)

func letInt(interner *source.Interner, vis ast.Visibility, name, value string) *ast.LetDecl {
	return &ast.LetDecl{
		Vis:  vis,
		Name: ast.Ident{Name: interner.Intern(name)},
		Body: &ast.LetModeBody{Expr: &ast.ExprLiteral{Lit: &ast.LitInteger{Value: interner.Intern(value)}}},
	}
}

func refPath(interner *source.Interner, segs ...string) ast.Path {
	idents := make([]ast.Ident, 0, len(segs)-1)
	for _, seg := range segs[:len(segs)-1] {
		idents = append(idents, ast.Ident{Name: interner.Intern(seg)})
	}
	return ast.Path{Segments: idents, Last: ast.Ident{Name: interner.Intern(segs[len(segs)-1])}}
}

func TestResolveUnitsCrossUnitReference(t *testing.T) {
	interner := source.NewInterner()

	lib := Unit{
		Name: "lib",
		Path: []source.StringID{interner.Intern("lib")},
		Program: &ast.Program{Decls: []ast.Decl{
			letInt(interner, ast.Public, "answer", "42"),
		}},
	}
	app := Unit{
		Name: "app",
		Path: []source.StringID{interner.Intern("app")},
		Program: &ast.Program{Decls: []ast.Decl{
			&ast.LetDecl{
				Vis:  ast.Public,
				Name: ast.Ident{Name: interner.Intern("main")},
				Body: &ast.LetModeBody{Expr: &ast.ExprIdent{Path: refPath(interner, "lib", "answer")}},
			},
		}},
	}

	var phases []PhaseEvent
	opts := Options{Jobs: 2, Observer: func(e PhaseEvent) { phases = append(phases, e) }}
	declarer, declareBag, results, err := ResolveUnits(context.Background(), interner, []Unit{lib, app}, opts)
	if err != nil {
		t.Fatalf("resolve units: %v", err)
	}
	if declareBag.Len() != 0 {
		t.Fatalf("declare diagnostics: %d", declareBag.Len())
	}
	for _, res := range results {
		if res.Bag.Len() != 0 {
			t.Fatalf("unit %s diagnostics: %d", res.Name, res.Bag.Len())
		}
		if res.Module == nil {
			t.Fatalf("unit %s produced no module", res.Name)
		}
	}

	// main must point at lib's namespace.
	let, ok := results[1].Module.Decls[0].(*resolved.LetDecl)
	if !ok {
		t.Fatalf("expected let declaration, got %T", results[1].Module.Decls[0])
	}
	fn, ok := let.Cases[0].Body.(*resolved.ExprFunction)
	if !ok {
		t.Fatalf("expected function reference, got %T", let.Cases[0].Body)
	}
	if fn.Ref.Namespace != results[0].Namespace {
		t.Fatalf("reference resolved into namespace %d, want %d", fn.Ref.Namespace, results[0].Namespace)
	}
	if fn.Ref.Name != interner.Intern("answer") {
		t.Fatal("reference resolved to the wrong name")
	}

	if len(phases) != 4 {
		t.Fatalf("expected 4 phase events, got %d", len(phases))
	}
	if phases[0].Name != PhaseDeclare || phases[0].Status != PhaseStart {
		t.Fatalf("first phase event = %+v", phases[0])
	}
	if phases[3].Name != PhaseResolve || phases[3].Status != PhaseEnd {
		t.Fatalf("last phase event = %+v", phases[3])
	}

	// The export surface of lib is cacheable and lists the public let.
	digest := project.HashBytes([]byte("lib source"))
	payload := ExportsOf(declarer.Registry, results[0].Namespace, interner, "lib", digest)
	if payload == nil {
		t.Fatal("no payload for a declared namespace")
	}
	if len(payload.Values) != 1 || payload.Values[0].Name != "answer" {
		t.Fatalf("exports = %+v", payload.Values)
	}
}

// preludeUnit declares the library surface the desugarings resolve
// against: the boolean constructors and the operator functions.
func preludeUnit(interner *source.Interner) Unit {
	return Unit{
		Name: "prelude",
		Program: &ast.Program{Decls: []ast.Decl{
			&ast.TypeDecl{
				Vis:  ast.Public,
				Name: ast.Ident{Name: interner.Intern("Bool")},
				Def: &ast.SumDef{Constructors: []*ast.Constructor{
					{Name: ast.Ident{Name: interner.Intern("True")}},
					{Name: ast.Ident{Name: interner.Intern("False")}},
				}},
			},
			&ast.ModuleDecl{
				Vis:  ast.Public,
				Name: ast.Ident{Name: interner.Intern("Operator")},
				Decls: []ast.Decl{
					letInt(interner, ast.Public, "add", "0"),
				},
			},
		}},
	}
}

func TestResolveUnitsParallelDesugar(t *testing.T) {
	interner := source.NewInterner()
	units := []Unit{preludeUnit(interner)}
	for i := 0; i < 8; i++ {
		name := fmt.Sprintf("u%d", i)
		one := &ast.ExprLiteral{Lit: &ast.LitInteger{Value: interner.Intern("1")}}
		two := &ast.ExprLiteral{Lit: &ast.LitInteger{Value: interner.Intern("2")}}
		body := &ast.ExprLambda{
			Params: []ast.Pattern{&ast.PatVar{Name: ast.Ident{Name: interner.Intern("c")}}},
			Body: &ast.ExprIf{
				Cond: &ast.ExprIdent{Path: refPath(interner, "c")},
				Then: &ast.ExprBinary{Left: one, Op: ast.Operator{Kind: ast.OpAdd}, Right: two},
				Else: two,
			},
		}
		units = append(units, Unit{
			Name: name,
			Path: []source.StringID{interner.Intern(name)},
			Program: &ast.Program{Decls: []ast.Decl{
				&ast.LetDecl{
					Vis:  ast.Public,
					Name: ast.Ident{Name: interner.Intern("pick")},
					Body: &ast.LetModeBody{Expr: body},
				},
			}},
		})
	}

	_, declareBag, results, err := ResolveUnits(context.Background(), interner, units, Options{Jobs: 8})
	if err != nil {
		t.Fatalf("resolve units: %v", err)
	}
	if declareBag.Len() != 0 {
		t.Fatalf("declare diagnostics: %d", declareBag.Len())
	}
	for _, res := range results {
		if res.Bag.Len() != 0 {
			t.Fatalf("unit %s diagnostics: %d", res.Name, res.Bag.Len())
		}
	}
	for _, res := range results[1:] {
		lam := res.Module.Decls[0].(*resolved.LetDecl).Cases[0].Body.(*resolved.ExprLambda)
		when, ok := lam.Body.(*resolved.ExprWhen)
		if !ok {
			t.Fatalf("unit %s: if must desugar to when, got %T", res.Name, lam.Body)
		}
		if len(when.Arms) != 2 {
			t.Fatalf("unit %s: expected 2 arms, got %d", res.Name, len(when.Arms))
		}
		app, ok := when.Arms[0].Body.(*resolved.ExprApp)
		if !ok || app.App != resolved.AppInfix {
			t.Fatalf("unit %s: then branch must desugar to an infix call", res.Name)
		}
	}
}

func TestResolveUnitsPublicUseReExports(t *testing.T) {
	interner := source.NewInterner()
	lib := Unit{
		Name: "lib",
		Path: []source.StringID{interner.Intern("lib")},
		Program: &ast.Program{Decls: []ast.Decl{
			letInt(interner, ast.Public, "helper", "1"),
		}},
	}
	api := Unit{
		Name: "api",
		Path: []source.StringID{interner.Intern("api")},
		Program: &ast.Program{Decls: []ast.Decl{
			&ast.UseDecl{Vis: ast.Public, Path: refPath(interner, "lib")},
		}},
	}
	app := Unit{
		Name: "app",
		Path: []source.StringID{interner.Intern("app")},
		Program: &ast.Program{Decls: []ast.Decl{
			&ast.LetDecl{
				Vis:  ast.Public,
				Name: ast.Ident{Name: interner.Intern("main")},
				Body: &ast.LetModeBody{Expr: &ast.ExprIdent{Path: refPath(interner, "api", "helper")}},
			},
		}},
	}

	_, declareBag, results, err := ResolveUnits(context.Background(), interner, []Unit{lib, api, app}, Options{Jobs: 3})
	if err != nil {
		t.Fatalf("resolve units: %v", err)
	}
	if declareBag.Len() != 0 {
		t.Fatalf("declare diagnostics: %d", declareBag.Len())
	}
	for _, res := range results {
		if res.Bag.Len() != 0 {
			t.Fatalf("unit %s diagnostics: %d", res.Name, res.Bag.Len())
		}
	}
	fn, ok := results[2].Module.Decls[0].(*resolved.LetDecl).Cases[0].Body.(*resolved.ExprFunction)
	if !ok {
		t.Fatalf("re-exported reference should resolve as a function")
	}
	if fn.Ref.Namespace != results[0].Namespace {
		t.Fatalf("conduit must point at lib's namespace, got %d", fn.Ref.Namespace)
	}
	if fn.Ref.Name != interner.Intern("helper") {
		t.Fatal("conduit resolved to the wrong name")
	}
}

func TestResolveUnitsRefreshesExportCache(t *testing.T) {
	cache := openTestCache(t)
	interner := source.NewInterner()
	digest := project.HashBytes([]byte("pub let answer = 42"))
	unit := Unit{
		Name: "lib",
		Path: []source.StringID{interner.Intern("lib")},
		Program: &ast.Program{Decls: []ast.Decl{
			letInt(interner, ast.Public, "answer", "42"),
		}},
		Digest: digest,
	}

	opts := Options{Jobs: 1, Cache: cache}
	if _, _, _, err := ResolveUnits(context.Background(), interner, []Unit{unit}, opts); err != nil {
		t.Fatalf("first run: %v", err)
	}

	var payload ExportPayload
	hit, err := cache.Get(digest, &payload)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !hit {
		t.Fatal("expected the run to install an export payload")
	}
	if payload.Unit != "lib" || len(payload.Values) != 1 || payload.Values[0].Name != "answer" {
		t.Fatalf("payload = %+v", payload)
	}

	// Second run takes the digest-hit path without rewriting.
	if _, _, _, err := ResolveUnits(context.Background(), interner, []Unit{unit}, opts); err != nil {
		t.Fatalf("second run: %v", err)
	}
}

func TestResolveUnitsCanceledContext(t *testing.T) {
	interner := source.NewInterner()
	unit := Unit{
		Name: "lib",
		Path: []source.StringID{interner.Intern("lib")},
		Program: &ast.Program{Decls: []ast.Decl{
			letInt(interner, ast.Public, "answer", "42"),
		}},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, _, err := ResolveUnits(ctx, interner, []Unit{unit}, Options{Jobs: 1})
	if err == nil {
		t.Fatal("expected an error from a canceled context")
	}
}
