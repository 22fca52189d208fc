package ast

import "fen/internal/source"

// Expr is a syntactic expression.
type Expr interface {
	Node
	exprNode()
}

// OpKind enumerates the binary/unary operator spellings. Precedence was
// decided by the parser; the resolver only maps each operator onto its
// library function.
type OpKind uint8

const (
	OpAdd OpKind = iota
	OpSub
	OpMul
	OpDiv
	OpRem
	OpAnd
	OpOr
	OpXor
	OpNot
	OpEq
	OpNeq
	OpLt
	OpGt
	OpLe
	OpGe
	OpShl
	OpShr
	OpPipe
)

// Operator is an operator occurrence with its source span.
type Operator struct {
	Kind OpKind
	Span source.Span
}

// ExprIdent is a lowercase-led, possibly-qualified name: a local variable,
// function or effect reference.
type ExprIdent struct {
	Path Path
}

// ExprConstructor is an uppercase-led constructor reference.
type ExprConstructor struct {
	Path Path
}

// ExprLambda is an anonymous function, `\x y -> body`.
type ExprLambda struct {
	Params []Pattern
	Body   Expr
	Span   source.Span
}

// ExprApp applies a function to arguments.
type ExprApp struct {
	Func Expr
	Args []Expr
	Span source.Span
}

// ExprProjection selects a record field, `expr.field`.
type ExprProjection struct {
	Expr  Expr
	Field Ident
	Span  source.Span
}

// ExprBinary is an infix application, `left op right`.
type ExprBinary struct {
	Left  Expr
	Op    Operator
	Right Expr
	Span  source.Span
}

// ExprIf is `if cond then t else e`; the resolver desugars it to a
// two-arm when over Bool.
type ExprIf struct {
	Cond   Expr
	Then   Expr
	Else   Expr
	IfSpan source.Span // span of the `if` keyword, used for desugared nodes
	Span   source.Span
}

// PatternArm is one arm of a when/cases: patterns, optional guard, body.
type PatternArm struct {
	Patterns []Pattern
	Guard    Expr // nil when absent
	Body     Expr
	Span     source.Span
}

func (a *PatternArm) GetSpan() source.Span { return a.Span }

// ExprWhen is a pattern match, `when scrutinee is ...`.
type ExprWhen struct {
	Scrutinee Expr
	Arms      []*PatternArm
	Span      source.Span
}

// ExprLet is a let-in binding, `let pat = value; body`.
type ExprLet struct {
	Pat   Pattern
	Value Expr
	Body  Expr
	Span  source.Span
}

// Stmt is a do-block statement.
type Stmt interface {
	Node
	stmtNode()
}

// StmtLet binds a pattern inside a do-block.
type StmtLet struct {
	Pat  Pattern
	Expr Expr
	Span source.Span
}

// StmtExpr is a bare expression statement.
type StmtExpr struct {
	Expr Expr
}

// StmtError marks a statement the parser could not produce.
type StmtError struct {
	Span source.Span
}

func (s *StmtLet) GetSpan() source.Span   { return s.Span }
func (s *StmtExpr) GetSpan() source.Span  { return s.Expr.GetSpan() }
func (s *StmtError) GetSpan() source.Span { return s.Span }

func (*StmtLet) stmtNode()   {}
func (*StmtExpr) stmtNode()  {}
func (*StmtError) stmtNode() {}

// Block is a sequence of statements.
type Block struct {
	Statements []Stmt
	Span       source.Span
}

func (b *Block) GetSpan() source.Span { return b.Span }

// ExprDo is a do-block.
type ExprDo struct {
	Block *Block
	Span  source.Span
}

// ExprLiteral is a literal expression.
type ExprLiteral struct {
	Lit Literal
}

// ExprAnnotation ascribes a type, `expr : Type`.
type ExprAnnotation struct {
	Expr Expr
	Type Type
	Span source.Span
}

// RecordField is one `name = expr` entry of a record literal or update.
type RecordField struct {
	Name Ident
	Expr Expr
	Span source.Span
}

func (f *RecordField) GetSpan() source.Span { return f.Span }

// ExprRecordInstance builds a record value, `Point { x = 1, y = 2 }`.
type ExprRecordInstance struct {
	Name   Path
	Fields []*RecordField
	Span   source.Span
}

// ExprRecordUpdate rewrites fields of a record value.
type ExprRecordUpdate struct {
	Expr   Expr
	Fields []*RecordField
	Span   source.Span
}

// ExprHandler runs an expression under an effect handler, `expr with handler`.
type ExprHandler struct {
	Expr Expr
	With Expr
	Span source.Span
}

// ExprCases is an anonymous pattern-matching function.
type ExprCases struct {
	Arms []*PatternArm
	Span source.Span
}

// ExprTuple is a tuple literal `(a, b)`.
type ExprTuple struct {
	Items []Expr
	Span  source.Span
}

// ExprParen wraps a parenthesised expression.
type ExprParen struct {
	Inner Expr
	Span  source.Span
}

func (e *ExprIdent) GetSpan() source.Span          { return e.Path.Span }
func (e *ExprConstructor) GetSpan() source.Span    { return e.Path.Span }
func (e *ExprLambda) GetSpan() source.Span         { return e.Span }
func (e *ExprApp) GetSpan() source.Span            { return e.Span }
func (e *ExprProjection) GetSpan() source.Span     { return e.Span }
func (e *ExprBinary) GetSpan() source.Span         { return e.Span }
func (e *ExprIf) GetSpan() source.Span             { return e.Span }
func (e *ExprWhen) GetSpan() source.Span           { return e.Span }
func (e *ExprLet) GetSpan() source.Span            { return e.Span }
func (e *ExprDo) GetSpan() source.Span             { return e.Span }
func (e *ExprLiteral) GetSpan() source.Span        { return e.Lit.GetSpan() }
func (e *ExprAnnotation) GetSpan() source.Span     { return e.Span }
func (e *ExprRecordInstance) GetSpan() source.Span { return e.Span }
func (e *ExprRecordUpdate) GetSpan() source.Span   { return e.Span }
func (e *ExprHandler) GetSpan() source.Span        { return e.Span }
func (e *ExprCases) GetSpan() source.Span          { return e.Span }
func (e *ExprTuple) GetSpan() source.Span          { return e.Span }
func (e *ExprParen) GetSpan() source.Span          { return e.Span }

func (*ExprIdent) exprNode()          {}
func (*ExprConstructor) exprNode()    {}
func (*ExprLambda) exprNode()         {}
func (*ExprApp) exprNode()            {}
func (*ExprProjection) exprNode()     {}
func (*ExprBinary) exprNode()         {}
func (*ExprIf) exprNode()             {}
func (*ExprWhen) exprNode()           {}
func (*ExprLet) exprNode()            {}
func (*ExprDo) exprNode()             {}
func (*ExprLiteral) exprNode()        {}
func (*ExprAnnotation) exprNode()     {}
func (*ExprRecordInstance) exprNode() {}
func (*ExprRecordUpdate) exprNode()   {}
func (*ExprHandler) exprNode()        {}
func (*ExprCases) exprNode()          {}
func (*ExprTuple) exprNode()          {}
func (*ExprParen) exprNode()          {}
