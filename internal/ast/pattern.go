package ast

import "fen/internal/source"

// Pattern is a syntactic pattern.
type Pattern interface {
	Node
	patternNode()
}

// PatWildcard matches anything, `_`.
type PatWildcard struct {
	Span source.Span
}

// PatVar binds a fresh variable.
type PatVar struct {
	Name Ident
}

// PatConstructor is a bare constructor reference, `Nothing`.
type PatConstructor struct {
	Path Path
}

// PatApp applies a constructor to sub-patterns, `Just x`.
type PatApp struct {
	Func Path
	Args []Pattern
	Span source.Span
}

// PatEffect matches an effect operation with an optional continuation
// binder, `read args -> k`.
type PatEffect struct {
	Func Path
	Args []Pattern
	Cont *Ident // nil when no continuation is bound
	Span source.Span
}

// PatLiteral matches a literal.
type PatLiteral struct {
	Lit  Literal
	Span source.Span
}

// PatAnnotation ascribes a type to a pattern, `x : Int`.
type PatAnnotation struct {
	Pat  Pattern
	Type Type
	Span source.Span
}

// PatOr matches either branch, `left | right`. Both branches must bind the
// same variables.
type PatOr struct {
	Left  Pattern
	Right Pattern
	Span  source.Span
}

// PatParen wraps a parenthesised pattern.
type PatParen struct {
	Inner Pattern
	Span  source.Span
}

func (p *PatWildcard) GetSpan() source.Span    { return p.Span }
func (p *PatVar) GetSpan() source.Span         { return p.Name.Span }
func (p *PatConstructor) GetSpan() source.Span { return p.Path.Span }
func (p *PatApp) GetSpan() source.Span         { return p.Span }
func (p *PatEffect) GetSpan() source.Span      { return p.Span }
func (p *PatLiteral) GetSpan() source.Span     { return p.Span }
func (p *PatAnnotation) GetSpan() source.Span  { return p.Span }
func (p *PatOr) GetSpan() source.Span          { return p.Span }
func (p *PatParen) GetSpan() source.Span       { return p.Span }

func (*PatWildcard) patternNode()    {}
func (*PatVar) patternNode()         {}
func (*PatConstructor) patternNode() {}
func (*PatApp) patternNode()         {}
func (*PatEffect) patternNode()      {}
func (*PatLiteral) patternNode()     {}
func (*PatAnnotation) patternNode()  {}
func (*PatOr) patternNode()          {}
func (*PatParen) patternNode()       {}
