// Package ast holds the concrete syntax tree handed over by the parser.
// Identifiers are unqualified; the resolver rewrites them into the
// resolved tree (internal/resolved).
package ast

import (
	"fen/internal/source"
)

// Node is the base interface for all syntax nodes.
type Node interface {
	GetSpan() source.Span
}

// Ident is a single identifier occurrence.
type Ident struct {
	Name source.StringID
	Span source.Span
}

func (i Ident) GetSpan() source.Span { return i.Span }

// Path is a possibly-qualified name: zero or more module segments followed
// by the final identifier.
type Path struct {
	Segments []Ident
	Last     Ident
	Span     source.Span
}

func (p Path) GetSpan() source.Span { return p.Span }

// Symbols flattens the path into its interned segments, final one included.
func (p Path) Symbols() []source.StringID {
	out := make([]source.StringID, 0, len(p.Segments)+1)
	for _, seg := range p.Segments {
		out = append(out, seg.Name)
	}
	return append(out, p.Last.Name)
}

// IsBare reports whether the path has no module qualifier.
func (p Path) IsBare() bool { return len(p.Segments) == 0 }

// Visibility of a declaration relative to its enclosing module.
type Visibility uint8

const (
	Private Visibility = iota
	Public
)

func (v Visibility) String() string {
	if v == Public {
		return "public"
	}
	return "private"
}
