package resolved

import "fen/internal/source"

// Pattern is a resolved pattern.
type Pattern interface {
	patternNode()
	GetSpan() source.Span
}

type PatWildcard struct {
	Span source.Span
}

// PatVar binds a scope-checked local variable.
type PatVar struct {
	Name source.StringID
	Span source.Span
}

// PatApp matches a constructor application. A bare constructor is an
// application with no arguments.
type PatApp struct {
	Func Qualified
	Args []Pattern
	Span source.Span
}

// PatEffect matches an effect operation with an optional continuation.
type PatEffect struct {
	Func Qualified
	Args []Pattern
	Cont source.StringID // NoStringID when no continuation is bound
	Span source.Span
}

type PatLiteral struct {
	Lit  Literal
	Span source.Span
}

type PatAnnotation struct {
	Pat  Pattern
	Type Type
	Span source.Span
}

type PatOr struct {
	Left  Pattern
	Right Pattern
	Span  source.Span
}

// PatError marks a pattern that failed to resolve.
type PatError struct {
	Span source.Span
}

func (p *PatWildcard) GetSpan() source.Span   { return p.Span }
func (p *PatVar) GetSpan() source.Span        { return p.Span }
func (p *PatApp) GetSpan() source.Span        { return p.Span }
func (p *PatEffect) GetSpan() source.Span     { return p.Span }
func (p *PatLiteral) GetSpan() source.Span    { return p.Span }
func (p *PatAnnotation) GetSpan() source.Span { return p.Span }
func (p *PatOr) GetSpan() source.Span         { return p.Span }
func (p *PatError) GetSpan() source.Span      { return p.Span }

func (*PatWildcard) patternNode()   {}
func (*PatVar) patternNode()        {}
func (*PatApp) patternNode()        {}
func (*PatEffect) patternNode()     {}
func (*PatLiteral) patternNode()    {}
func (*PatAnnotation) patternNode() {}
func (*PatOr) patternNode()         {}
func (*PatError) patternNode()      {}
