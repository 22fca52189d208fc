package resolver

import (
	"fmt"

	"fen/internal/ast"
	"fen/internal/diag"
	"fen/internal/resolved"
	"fen/internal/source"
)

// operatorModule and boolModule are the conventional library modules the
// desugarings resolve against: infix operators become applications of
// `Operator.<name>` and `if` becomes a when over `Bool.True`/`Bool.False`.
const (
	operatorModule = "Operator"
	boolModule     = "Bool"
	boolTrue       = "True"
	boolFalse      = "False"
)

// libraryRefs holds the interned desugaring names. NewDeclarer interns
// them before any resolution starts; after that every traversal only
// reads the shared interner, so resolution contexts can run in parallel.
type libraryRefs struct {
	operatorMod source.StringID
	boolMod     source.StringID
	trueCtor    source.StringID
	falseCtor   source.StringID
	operators   map[ast.OpKind]source.StringID
}

func internLibraryRefs(in *source.Interner) libraryRefs {
	ops := make(map[ast.OpKind]source.StringID, len(operatorNames))
	for kind, name := range operatorNames {
		ops[kind] = in.Intern(name)
	}
	return libraryRefs{
		operatorMod: in.Intern(operatorModule),
		boolMod:     in.Intern(boolModule),
		trueCtor:    in.Intern(boolTrue),
		falseCtor:   in.Intern(boolFalse),
		operators:   ops,
	}
}

var operatorNames = map[ast.OpKind]string{
	ast.OpAdd:  "add",
	ast.OpSub:  "sub",
	ast.OpMul:  "mul",
	ast.OpDiv:  "div",
	ast.OpRem:  "rem",
	ast.OpAnd:  "and",
	ast.OpOr:   "or",
	ast.OpXor:  "xor",
	ast.OpNot:  "not",
	ast.OpEq:   "eq",
	ast.OpNeq:  "neq",
	ast.OpLt:   "lt",
	ast.OpGt:   "gt",
	ast.OpLe:   "le",
	ast.OpGe:   "ge",
	ast.OpShl:  "shl",
	ast.OpShr:  "shr",
	ast.OpPipe: "pipe",
}

func (c *Context) resolveExpr(e ast.Expr) resolved.Expr {
	switch n := e.(type) {
	case *ast.ExprIdent:
		return c.resolveIdent(n)

	case *ast.ExprConstructor:
		ref, ok := c.constructorRef(n.Path)
		if !ok {
			return &resolved.ExprError{Span: n.Path.Span}
		}
		return &resolved.ExprConstructor{Ref: ref}

	case *ast.ExprLambda:
		return c.resolveLambda(n)

	case *ast.ExprApp:
		args := make([]resolved.Expr, 0, len(n.Args))
		for _, arg := range n.Args {
			args = append(args, c.resolveExpr(arg))
		}
		return &resolved.ExprApp{
			Func: c.resolveExpr(n.Func),
			Args: args,
			Span: n.Span,
		}

	case *ast.ExprProjection:
		return &resolved.ExprProjection{
			Expr:  c.resolveExpr(n.Expr),
			Field: n.Field.Name,
			Span:  n.Span,
		}

	case *ast.ExprBinary:
		return c.resolveBinary(n)

	case *ast.ExprIf:
		return c.resolveIf(n)

	case *ast.ExprWhen:
		arms := make([]*resolved.PatternArm, 0, len(n.Arms))
		for _, arm := range n.Arms {
			arms = append(arms, c.resolveArm(arm))
		}
		return &resolved.ExprWhen{
			Scrutinee: c.resolveExpr(n.Scrutinee),
			Arms:      arms,
			Span:      n.Span,
		}

	case *ast.ExprLet:
		return c.resolveLet(n)

	case *ast.ExprDo:
		return c.resolveDo(n)

	case *ast.ExprLiteral:
		return &resolved.ExprLiteral{Lit: resolveLiteral(n.Lit)}

	case *ast.ExprAnnotation:
		return &resolved.ExprAnnotation{
			Expr: c.resolveExpr(n.Expr),
			Type: c.resolveType(n.Type),
			Span: n.Span,
		}

	case *ast.ExprRecordInstance:
		return c.resolveRecordInstance(n)

	case *ast.ExprRecordUpdate:
		return &resolved.ExprRecordUpdate{
			Expr:   c.resolveExpr(n.Expr),
			Fields: c.resolveRecordFields(n.Fields),
			Span:   n.Span,
		}

	case *ast.ExprHandler:
		return &resolved.ExprHandler{
			Expr: c.resolveExpr(n.Expr),
			With: c.resolveExpr(n.With),
			Span: n.Span,
		}

	case *ast.ExprCases:
		arms := make([]*resolved.PatternArm, 0, len(n.Arms))
		for _, arm := range n.Arms {
			arms = append(arms, c.resolveArm(arm))
		}
		return &resolved.ExprCases{Arms: arms, Span: n.Span}

	case *ast.ExprTuple:
		items := make([]resolved.Expr, 0, len(n.Items))
		for _, item := range n.Items {
			items = append(items, c.resolveExpr(item))
		}
		return &resolved.ExprTuple{Items: items, Span: n.Span}

	case *ast.ExprParen:
		return c.resolveExpr(n.Inner)

	default:
		panic(fmt.Sprintf("resolver: unknown expression %T", e))
	}
}

// resolveIdent resolves a lowercase-led reference. Local bindings win over
// globals of the same spelling.
func (c *Context) resolveIdent(n *ast.ExprIdent) resolved.Expr {
	if n.Path.IsBare() && c.Scopes.Contains(CapValue, n.Path.Last.Name) {
		return &resolved.ExprVar{Name: n.Path.Last.Name, Span: n.Path.Span}
	}
	item, ok := c.findValue(n.Path, true)
	if !ok {
		return &resolved.ExprError{Span: n.Path.Span}
	}
	ref := item.Item.Ref
	qualified := resolved.Ref(ref.Namespace, ref.Name, n.Path.Span)
	switch item.Item.Kind {
	case ValueFunction, ValueField:
		return &resolved.ExprFunction{Ref: qualified}
	case ValueConstructor:
		return &resolved.ExprConstructor{Ref: qualified}
	case ValueEffect:
		return &resolved.ExprEffect{Ref: qualified}
	default:
		diag.ReportError(c.Reporter, diag.ResExpectedFunction, n.Path.Span,
			fmt.Sprintf("`%s` is a %s, not a function", c.pathName(n.Path.Symbols()), item.Item.Kind)).
			Emit()
		return &resolved.ExprError{Span: n.Path.Span}
	}
}

func (c *Context) resolveLambda(n *ast.ExprLambda) resolved.Expr {
	c.Scopes.Push(CapValue)
	defer c.Scopes.Pop(CapValue)

	c.pushCaptures()
	params := make([]resolved.Pattern, 0, len(n.Params))
	for _, p := range n.Params {
		params = append(params, c.resolvePattern(p))
	}
	c.promote(c.popCaptures())

	return &resolved.ExprLambda{
		Params: params,
		Body:   c.resolveExpr(n.Body),
		Span:   n.Span,
	}
}

// resolveLet resolves `let pat = value; body`. The value is resolved
// before the pattern binds, so the binding is not visible in its own
// right-hand side.
func (c *Context) resolveLet(n *ast.ExprLet) resolved.Expr {
	value := c.resolveExpr(n.Value)

	c.Scopes.Push(CapValue)
	defer c.Scopes.Pop(CapValue)
	pat := c.resolvePattern(n.Pat)

	return &resolved.ExprLet{
		Pat:   pat,
		Value: value,
		Body:  c.resolveExpr(n.Body),
		Span:  n.Span,
	}
}

// resolveDo resolves a do-block in one value scope: each let statement's
// bindings are visible to every following statement.
func (c *Context) resolveDo(n *ast.ExprDo) resolved.Expr {
	c.Scopes.Push(CapValue)
	defer c.Scopes.Pop(CapValue)

	stmts := make([]resolved.Stmt, 0, len(n.Block.Statements))
	for _, stmt := range n.Block.Statements {
		switch s := stmt.(type) {
		case *ast.StmtLet:
			expr := c.resolveExpr(s.Expr)
			pat := c.resolvePattern(s.Pat)
			stmts = append(stmts, &resolved.StmtLet{Pat: pat, Expr: expr, Span: s.Span})
		case *ast.StmtExpr:
			stmts = append(stmts, &resolved.StmtExpr{Expr: c.resolveExpr(s.Expr)})
		case *ast.StmtError:
			stmts = append(stmts, &resolved.StmtError{Span: s.Span})
		}
	}
	return &resolved.ExprDo{
		Block: &resolved.Block{Statements: stmts, Span: n.Block.Span},
		Span:  n.Span,
	}
}

// resolveBinary rewrites `left op right` into an infix application of the
// operator module's function for that operator.
func (c *Context) resolveBinary(n *ast.ExprBinary) resolved.Expr {
	fn := c.operatorFunction(n.Op)
	return &resolved.ExprApp{
		App:  resolved.AppInfix,
		Func: fn,
		Args: []resolved.Expr{c.resolveExpr(n.Left), c.resolveExpr(n.Right)},
		Span: n.Span,
	}
}

func (c *Context) operatorFunction(op ast.Operator) resolved.Expr {
	path := c.libraryPath(c.lib.operatorMod, c.lib.operators[op.Kind], op.Span)
	item, ok := c.findValue(path, true)
	if !ok {
		return &resolved.ExprError{Span: op.Span}
	}
	if item.Item.Kind != ValueFunction {
		diag.ReportError(c.Reporter, diag.ResExpectedFunction, op.Span,
			fmt.Sprintf("`%s` is a %s, not a function", c.pathName(path.Symbols()), item.Item.Kind)).
			Emit()
		return &resolved.ExprError{Span: op.Span}
	}
	ref := item.Item.Ref
	return &resolved.ExprFunction{Ref: resolved.Ref(ref.Namespace, ref.Name, op.Span)}
}

// resolveIf rewrites `if cond then t else e` into a two-arm when over the
// boolean constructors. The three sub-expressions resolve regardless of
// whether the constructors are in scope.
func (c *Context) resolveIf(n *ast.ExprIf) resolved.Expr {
	cond := c.resolveExpr(n.Cond)
	then := c.resolveExpr(n.Then)
	els := c.resolveExpr(n.Else)

	truePat := c.boolPattern(c.lib.trueCtor, n.IfSpan)
	falsePat := c.boolPattern(c.lib.falseCtor, n.IfSpan)

	return &resolved.ExprWhen{
		Scrutinee: cond,
		Arms: []*resolved.PatternArm{
			{Patterns: []resolved.Pattern{truePat}, Body: then, Span: n.Then.GetSpan()},
			{Patterns: []resolved.Pattern{falsePat}, Body: els, Span: n.Else.GetSpan()},
		},
		Span: n.Span,
	}
}

func (c *Context) boolPattern(ctor source.StringID, span source.Span) resolved.Pattern {
	ref, ok := c.constructorRef(c.libraryPath(c.lib.boolMod, ctor, span))
	if !ok {
		return &resolved.PatError{Span: span}
	}
	return &resolved.PatApp{Func: ref, Span: span}
}

func (c *Context) libraryPath(module, name source.StringID, span source.Span) ast.Path {
	return ast.Path{
		Segments: []ast.Ident{{Name: module, Span: span}},
		Last:     ast.Ident{Name: name, Span: span},
		Span:     span,
	}
}

func (c *Context) resolveRecordInstance(n *ast.ExprRecordInstance) resolved.Expr {
	item, ok := c.findType(n.Name, true)
	if !ok {
		return &resolved.ExprError{Span: n.Span}
	}
	if item.Item.Kind != TypeRecord {
		diag.ReportError(c.Reporter, diag.ResExpectedRecordType, n.Name.Span,
			fmt.Sprintf("`%s` is a %s, not a record type", c.pathName(n.Name.Symbols()), item.Item.Kind)).
			Emit()
		return &resolved.ExprError{Span: n.Span}
	}
	ref := item.Item.Ref
	return &resolved.ExprRecordInstance{
		Name:   resolved.Ref(ref.Namespace, ref.Name, n.Name.Span),
		Fields: c.resolveRecordFields(n.Fields),
		Span:   n.Span,
	}
}

func (c *Context) resolveRecordFields(fields []*ast.RecordField) []resolved.FieldInit {
	out := make([]resolved.FieldInit, 0, len(fields))
	for _, f := range fields {
		out = append(out, resolved.FieldInit{
			Name: f.Name.Name,
			Expr: c.resolveExpr(f.Expr),
			Span: f.Span,
		})
	}
	return out
}
