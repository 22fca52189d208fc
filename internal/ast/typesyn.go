package ast

import "fen/internal/source"

// Type is a syntactic type expression.
type Type interface {
	Node
	typeNode()
}

// Effects is the effect row attached to a function arrow, `{IO, State}`.
type Effects struct {
	Types []Type
	Span  source.Span
}

func (e *Effects) GetSpan() source.Span { return e.Span }

// TypeUpper is a reference to a declared type, possibly qualified.
type TypeUpper struct {
	Path Path
}

// TypeVar is a lexically bound type variable.
type TypeVar struct {
	Name Ident
}

// TypeArrow is the function type `A -> {E} B`.
type TypeArrow struct {
	Left    Type
	Effects *Effects // nil when the arrow carries no effect row
	Right   Type
	Span    source.Span
}

// TypeApp applies a type constructor to arguments, `Maybe a`.
type TypeApp struct {
	Func Type
	Args []Type
	Span source.Span
}

// TypeForall introduces type variables, `forall a b. A`.
type TypeForall struct {
	Params []TypeBinder
	Body   Type
	Span   source.Span
}

// TypeUnit is the unit type `()`.
type TypeUnit struct {
	Span source.Span
}

// TypeTuple is a tuple type `(A, B)`.
type TypeTuple struct {
	Items []Type
	Span  source.Span
}

// TypeParen wraps a parenthesised type.
type TypeParen struct {
	Inner Type
	Span  source.Span
}

func (t *TypeUpper) GetSpan() source.Span  { return t.Path.Span }
func (t *TypeVar) GetSpan() source.Span    { return t.Name.Span }
func (t *TypeArrow) GetSpan() source.Span  { return t.Span }
func (t *TypeApp) GetSpan() source.Span    { return t.Span }
func (t *TypeForall) GetSpan() source.Span { return t.Span }
func (t *TypeUnit) GetSpan() source.Span   { return t.Span }
func (t *TypeTuple) GetSpan() source.Span  { return t.Span }
func (t *TypeParen) GetSpan() source.Span  { return t.Span }

func (*TypeUpper) typeNode()  {}
func (*TypeVar) typeNode()    {}
func (*TypeArrow) typeNode()  {}
func (*TypeApp) typeNode()    {}
func (*TypeForall) typeNode() {}
func (*TypeUnit) typeNode()   {}
func (*TypeTuple) typeNode()  {}
func (*TypeParen) typeNode()  {}

// TypeBinder introduces a type variable in a declaration head, either bare
// (`a`) or with an explicit kind (`(a : * -> *)`).
type TypeBinder interface {
	Node
	typeBinderNode()
}

type BinderImplicit struct {
	Name Ident
}

type BinderExplicit struct {
	Name Ident
	Kind Kind
	Span source.Span
}

func (b *BinderImplicit) GetSpan() source.Span { return b.Name.Span }
func (b *BinderExplicit) GetSpan() source.Span { return b.Span }

func (*BinderImplicit) typeBinderNode() {}
func (*BinderExplicit) typeBinderNode() {}
