package resolved

import "fen/internal/source"

// Kind is a resolved kind annotation.
type Kind interface {
	kindNode()
	GetSpan() source.Span
}

type KindStar struct {
	Span source.Span
}

type KindArrow struct {
	Left  Kind
	Right Kind
	Span  source.Span
}

// KindError marks a kind that failed to resolve.
type KindError struct {
	Span source.Span
}

func (k *KindStar) GetSpan() source.Span  { return k.Span }
func (k *KindArrow) GetSpan() source.Span { return k.Span }
func (k *KindError) GetSpan() source.Span { return k.Span }

func (*KindStar) kindNode()  {}
func (*KindArrow) kindNode() {}
func (*KindError) kindNode() {}
