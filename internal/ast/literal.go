package ast

import "fen/internal/source"

// Literal is a literal occurrence. The raw text stays interned; literal
// decoding belongs to later phases.
type Literal interface {
	Node
	literalNode()
}

type LitString struct {
	Value source.StringID
	Span  source.Span
}

type LitInteger struct {
	Value source.StringID
	Span  source.Span
}

type LitFloat struct {
	Value source.StringID
	Span  source.Span
}

type LitChar struct {
	Value source.StringID
	Span  source.Span
}

type LitUnit struct {
	Span source.Span
}

func (l *LitString) GetSpan() source.Span  { return l.Span }
func (l *LitInteger) GetSpan() source.Span { return l.Span }
func (l *LitFloat) GetSpan() source.Span   { return l.Span }
func (l *LitChar) GetSpan() source.Span    { return l.Span }
func (l *LitUnit) GetSpan() source.Span    { return l.Span }

func (*LitString) literalNode()  {}
func (*LitInteger) literalNode() {}
func (*LitFloat) literalNode()   {}
func (*LitChar) literalNode()    {}
func (*LitUnit) literalNode()    {}
