package ast

import "fen/internal/source"

// Decl is a top-level declaration.
type Decl interface {
	Node
	declNode()
}

// Binder is one typed parameter of a let declaration, `(pat : Type)`.
type Binder struct {
	Pat  Pattern
	Type Type
	Span source.Span
}

func (b *Binder) GetSpan() source.Span { return b.Span }

// RetAnnotation is the optional return annotation of a let declaration:
// an effect row plus a result type.
type RetAnnotation struct {
	Effects *Effects // nil when no effect row is written
	Type    Type
	Span    source.Span
}

func (r *RetAnnotation) GetSpan() source.Span { return r.Span }

// LetMode is the body of a let declaration: either a direct expression or
// pattern-matching cases.
type LetMode interface {
	Node
	letModeNode()
}

type LetModeBody struct {
	Expr Expr
}

type LetModeCases struct {
	Cases []*PatternArm
	Span  source.Span
}

func (m *LetModeBody) GetSpan() source.Span  { return m.Expr.GetSpan() }
func (m *LetModeCases) GetSpan() source.Span { return m.Span }

func (*LetModeBody) letModeNode()  {}
func (*LetModeCases) letModeNode() {}

// LetDecl declares a top-level value or function.
type LetDecl struct {
	Vis     Visibility
	Name    Ident
	Binders []*Binder
	Ret     *RetAnnotation // nil when unannotated
	Body    LetMode
	Span    source.Span
}

// Constructor is one variant of a sum type declaration.
type Constructor struct {
	Name Ident
	Args []Type
	Span source.Span
}

func (c *Constructor) GetSpan() source.Span { return c.Span }

// Field is one field of a record type declaration.
type Field struct {
	Name Ident
	Type Type
	Span source.Span
}

func (f *Field) GetSpan() source.Span { return f.Span }

// TypeDef is the right-hand side of a type declaration.
type TypeDef interface {
	Node
	typeDefNode()
}

type SumDef struct {
	Constructors []*Constructor
	Span         source.Span
}

type RecordDef struct {
	Fields []*Field
	Span   source.Span
}

type SynonymDef struct {
	Type Type
}

// AbstractDef marks a type declaration without a body.
type AbstractDef struct {
	Span source.Span
}

func (d *SumDef) GetSpan() source.Span      { return d.Span }
func (d *RecordDef) GetSpan() source.Span   { return d.Span }
func (d *SynonymDef) GetSpan() source.Span  { return d.Type.GetSpan() }
func (d *AbstractDef) GetSpan() source.Span { return d.Span }

func (*SumDef) typeDefNode()      {}
func (*RecordDef) typeDefNode()   {}
func (*SynonymDef) typeDefNode()  {}
func (*AbstractDef) typeDefNode() {}

// TypeDecl declares a named type.
type TypeDecl struct {
	Vis     Visibility
	Name    Ident
	Binders []TypeBinder
	Def     TypeDef
	Span    source.Span
}

// EffectField is one operation of an effect declaration.
type EffectField struct {
	Vis  Visibility
	Name Ident
	Args []Type
	Ret  Type
	Span source.Span
}

func (f *EffectField) GetSpan() source.Span { return f.Span }

// EffectDecl declares an effect with its operations.
type EffectDecl struct {
	Vis     Visibility
	Name    Ident
	Binders []TypeBinder
	Fields  []*EffectField
	Span    source.Span
}

// ModuleDecl declares a nested module with its own declarations.
type ModuleDecl struct {
	Vis   Visibility
	Name  Ident
	Decls []Decl
	Span  source.Span
}

// UseDecl imports another module, optionally under an alias. A public use
// additionally re-exports the target's exported surface from the
// enclosing module.
type UseDecl struct {
	Vis   Visibility
	Path  Path
	Alias *Ident // nil when unaliased
	Span  source.Span
}

func (d *LetDecl) GetSpan() source.Span    { return d.Span }
func (d *TypeDecl) GetSpan() source.Span   { return d.Span }
func (d *EffectDecl) GetSpan() source.Span { return d.Span }
func (d *ModuleDecl) GetSpan() source.Span { return d.Span }
func (d *UseDecl) GetSpan() source.Span    { return d.Span }

func (*LetDecl) declNode()    {}
func (*TypeDecl) declNode()   {}
func (*EffectDecl) declNode() {}
func (*ModuleDecl) declNode() {}
func (*UseDecl) declNode()    {}

// Program is the root of one compilation unit.
type Program struct {
	Decls []Decl
}
