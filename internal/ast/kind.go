package ast

import "fen/internal/source"

// Kind is a type-level kind annotation on an explicit type binder.
type Kind interface {
	Node
	kindNode()
}

// KindStar is the kind of plain types, written `*`.
type KindStar struct {
	Span source.Span
}

// KindArrow is a kind arrow `k1 -> k2`.
type KindArrow struct {
	Left  Kind
	Right Kind
	Span  source.Span
}

// KindParen wraps a parenthesised kind.
type KindParen struct {
	Inner Kind
	Span  source.Span
}

func (k *KindStar) GetSpan() source.Span  { return k.Span }
func (k *KindArrow) GetSpan() source.Span { return k.Span }
func (k *KindParen) GetSpan() source.Span { return k.Span }

func (*KindStar) kindNode()  {}
func (*KindArrow) kindNode() {}
func (*KindParen) kindNode() {}
