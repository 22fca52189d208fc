package resolved

import "fen/internal/source"

// Expr is a resolved expression. Binary operators and if-expressions are
// gone at this level: both desugared into ordinary applications and
// when-matches during resolution.
type Expr interface {
	exprNode()
	GetSpan() source.Span
}

// AppKind records whether an application came from infix sugar.
type AppKind uint8

const (
	AppNormal AppKind = iota
	AppInfix
)

// ExprVar references a local variable proven in scope.
type ExprVar struct {
	Name source.StringID
	Span source.Span
}

// ExprFunction references a top-level function.
type ExprFunction struct {
	Ref Qualified
}

// ExprConstructor references a data constructor.
type ExprConstructor struct {
	Ref Qualified
}

// ExprEffect references an effect operation.
type ExprEffect struct {
	Ref Qualified
}

type ExprLambda struct {
	Params []Pattern
	Body   Expr
	Span   source.Span
}

type ExprApp struct {
	App  AppKind
	Func Expr
	Args []Expr
	Span source.Span
}

type ExprProjection struct {
	Expr  Expr
	Field source.StringID
	Span  source.Span
}

// PatternArm is one resolved arm of a when/cases.
type PatternArm struct {
	Patterns []Pattern
	Guard    Expr // nil when absent
	Body     Expr
	Span     source.Span
}

type ExprWhen struct {
	Scrutinee Expr
	Arms      []*PatternArm
	Span      source.Span
}

type ExprLet struct {
	Pat   Pattern
	Value Expr
	Body  Expr
	Span  source.Span
}

// Stmt is a resolved do-block statement.
type Stmt interface {
	stmtNode()
	GetSpan() source.Span
}

type StmtLet struct {
	Pat  Pattern
	Expr Expr
	Span source.Span
}

type StmtExpr struct {
	Expr Expr
}

type StmtError struct {
	Span source.Span
}

func (s *StmtLet) GetSpan() source.Span   { return s.Span }
func (s *StmtExpr) GetSpan() source.Span  { return s.Expr.GetSpan() }
func (s *StmtError) GetSpan() source.Span { return s.Span }

func (*StmtLet) stmtNode()   {}
func (*StmtExpr) stmtNode()  {}
func (*StmtError) stmtNode() {}

// Block is a resolved statement sequence.
type Block struct {
	Statements []Stmt
	Span       source.Span
}

type ExprDo struct {
	Block *Block
	Span  source.Span
}

type ExprLiteral struct {
	Lit Literal
}

type ExprAnnotation struct {
	Expr Expr
	Type Type
	Span source.Span
}

// FieldInit is one resolved field of a record instance or update.
type FieldInit struct {
	Name source.StringID
	Expr Expr
	Span source.Span
}

type ExprRecordInstance struct {
	Name   Qualified
	Fields []FieldInit
	Span   source.Span
}

type ExprRecordUpdate struct {
	Expr   Expr
	Fields []FieldInit
	Span   source.Span
}

type ExprHandler struct {
	Expr Expr
	With Expr
	Span source.Span
}

type ExprCases struct {
	Arms []*PatternArm
	Span source.Span
}

type ExprTuple struct {
	Items []Expr
	Span  source.Span
}

// ExprError marks an expression that failed to resolve.
type ExprError struct {
	Span source.Span
}

func (e *ExprVar) GetSpan() source.Span            { return e.Span }
func (e *ExprFunction) GetSpan() source.Span       { return e.Ref.Span }
func (e *ExprConstructor) GetSpan() source.Span    { return e.Ref.Span }
func (e *ExprEffect) GetSpan() source.Span         { return e.Ref.Span }
func (e *ExprLambda) GetSpan() source.Span         { return e.Span }
func (e *ExprApp) GetSpan() source.Span            { return e.Span }
func (e *ExprProjection) GetSpan() source.Span     { return e.Span }
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
func (e *ExprError) GetSpan() source.Span          { return e.Span }

func (*ExprVar) exprNode()            {}
func (*ExprFunction) exprNode()       {}
func (*ExprConstructor) exprNode()    {}
func (*ExprEffect) exprNode()         {}
func (*ExprLambda) exprNode()         {}
func (*ExprApp) exprNode()            {}
func (*ExprProjection) exprNode()     {}
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
func (*ExprError) exprNode()          {}
