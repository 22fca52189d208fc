// Package resolved holds the output tree of the name-resolution pass:
// isomorphic in shape to internal/ast, but every name reference is either
// a Qualified pointing into a declaring namespace, a scope-checked local
// variable, or an explicit error node.
package resolved

import (
	"fen/internal/source"
)

// NamespaceID is a stable handle into the namespace registry. One is
// assigned to the root module and to every nested module, type and effect
// declaration during the declare phase; none is ever destroyed.
type NamespaceID uint32

const (
	// NoNamespaceID marks the absence of a namespace reference.
	NoNamespaceID NamespaceID = 0
)

// IsValid reports whether the ID refers to an allocated namespace.
func (id NamespaceID) IsValid() bool { return id != NoNamespaceID }

// Qualified is a resolved reference: the canonical declaring namespace plus
// the final symbol, independent of source spelling and aliases. A Qualified
// with an invalid namespace is an error marker.
type Qualified struct {
	Namespace NamespaceID
	Name      source.StringID
	Span      source.Span
}

// Ref builds a resolved reference.
func Ref(ns NamespaceID, name source.StringID, span source.Span) Qualified {
	return Qualified{Namespace: ns, Name: name, Span: span}
}

// ErrorRef builds an error marker carrying only the offending span.
func ErrorRef(span source.Span) Qualified {
	return Qualified{Span: span}
}

// IsError reports whether the reference failed to resolve.
func (q Qualified) IsError() bool { return !q.Namespace.IsValid() }

// Key identifies a Qualified ignoring its span: two references are the
// same declaration iff their keys are equal. Error markers never compare
// equal through keys.
type Key struct {
	Namespace NamespaceID
	Name      source.StringID
}

func (q Qualified) Key() Key {
	return Key{Namespace: q.Namespace, Name: q.Name}
}

// Same reports whether both references resolved to one declaration.
func (q Qualified) Same(other Qualified) bool {
	if q.IsError() || other.IsError() {
		return false
	}
	return q.Key() == other.Key()
}

// Visibility of a declaration relative to its enclosing module.
type Visibility uint8

const (
	Private Visibility = iota
	Public
)
