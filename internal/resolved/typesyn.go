package resolved

import "fen/internal/source"

// Type is a resolved type expression.
type Type interface {
	typeNode()
	GetSpan() source.Span
}

// Effects is a resolved effect row.
type Effects struct {
	Types []Type
	Span  source.Span
}

// TypeName references a declared type by its canonical namespace.
type TypeName struct {
	Ref Qualified
}

// TypeVar is a lexically bound type variable.
type TypeVar struct {
	Name source.StringID
	Span source.Span
}

// TypePi is the function type with its effect row.
type TypePi struct {
	Left    Type
	Effects *Effects
	Right   Type
	Span    source.Span
}

type TypeApp struct {
	Func Type
	Args []Type
	Span source.Span
}

type TypeForall struct {
	Params []TypeBinder
	Body   Type
	Span   source.Span
}

type TypeUnit struct {
	Span source.Span
}

type TypeTuple struct {
	Items []Type
	Span  source.Span
}

// TypeError marks a type reference that failed to resolve.
type TypeError struct {
	Span source.Span
}

func (t *TypeName) GetSpan() source.Span   { return t.Ref.Span }
func (t *TypeVar) GetSpan() source.Span    { return t.Span }
func (t *TypePi) GetSpan() source.Span     { return t.Span }
func (t *TypeApp) GetSpan() source.Span    { return t.Span }
func (t *TypeForall) GetSpan() source.Span { return t.Span }
func (t *TypeUnit) GetSpan() source.Span   { return t.Span }
func (t *TypeTuple) GetSpan() source.Span  { return t.Span }
func (t *TypeError) GetSpan() source.Span  { return t.Span }

func (*TypeName) typeNode()   {}
func (*TypeVar) typeNode()    {}
func (*TypePi) typeNode()     {}
func (*TypeApp) typeNode()    {}
func (*TypeForall) typeNode() {}
func (*TypeUnit) typeNode()   {}
func (*TypeTuple) typeNode()  {}
func (*TypeError) typeNode()  {}

// TypeBinder is a resolved type-variable binder.
type TypeBinder struct {
	Name source.StringID
	Kind Kind // nil for implicit binders
	Span source.Span
}
