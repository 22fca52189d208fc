package resolved

import "fen/internal/source"

// Decl is a resolved top-level declaration.
type Decl interface {
	declNode()
	GetSpan() source.Span
}

// Binder is one typed parameter of a let declaration.
type Binder struct {
	Pat  Pattern
	Type Type
	Span source.Span
}

// RetAnnotation is a resolved return annotation.
type RetAnnotation struct {
	Effects *Effects
	Type    Type
	Span    source.Span
}

// LetDecl is a resolved top-level value. A direct body becomes a single
// case with no patterns, so downstream phases see one shape.
type LetDecl struct {
	Vis     Visibility
	Name    source.StringID
	Binders []Binder
	Ret     *RetAnnotation
	Cases   []*PatternArm
	Span    source.Span
}

// Constructor is one resolved variant of a sum type.
type Constructor struct {
	Name source.StringID
	Args []Type
	Span source.Span
}

// FieldDecl is one resolved record field.
type FieldDecl struct {
	Name source.StringID
	Type Type
	Span source.Span
}

// TypeDef is the resolved right-hand side of a type declaration.
type TypeDef interface {
	typeDefNode()
}

type SumDef struct {
	Constructors []*Constructor
}

type RecordDef struct {
	Fields []*FieldDecl
}

type SynonymDef struct {
	Type Type
}

type AbstractDef struct{}

func (*SumDef) typeDefNode()      {}
func (*RecordDef) typeDefNode()   {}
func (*SynonymDef) typeDefNode()  {}
func (*AbstractDef) typeDefNode() {}

// TypeDecl is a resolved type declaration carrying its canonical namespace.
type TypeDecl struct {
	ID      NamespaceID
	Vis     Visibility
	Name    source.StringID
	Binders []TypeBinder
	Def     TypeDef
	Span    source.Span
}

// EffectField is one resolved effect operation.
type EffectField struct {
	Vis  Visibility
	Name source.StringID
	Args []Type
	Ret  Type
	Span source.Span
}

// EffectDecl is a resolved effect declaration.
type EffectDecl struct {
	ID      NamespaceID
	Vis     Visibility
	Name    source.StringID
	Binders []TypeBinder
	Fields  []*EffectField
	Span    source.Span
}

// ModuleDecl is a resolved nested module.
type ModuleDecl struct {
	ID    NamespaceID
	Vis   Visibility
	Name  source.StringID
	Decls []Decl
	Span  source.Span
}

func (d *LetDecl) GetSpan() source.Span    { return d.Span }
func (d *TypeDecl) GetSpan() source.Span   { return d.Span }
func (d *EffectDecl) GetSpan() source.Span { return d.Span }
func (d *ModuleDecl) GetSpan() source.Span { return d.Span }

func (*LetDecl) declNode()    {}
func (*TypeDecl) declNode()   {}
func (*EffectDecl) declNode() {}
func (*ModuleDecl) declNode() {}

// Module is the resolved root of one compilation unit.
type Module struct {
	Decls []Decl
}
