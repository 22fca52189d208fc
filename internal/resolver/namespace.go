package resolver

import (
	"fmt"

	"fortio.org/safecast"

	"fen/internal/resolved"
	"fen/internal/source"
)

// ValueKind classifies an entry in a namespace's value map.
type ValueKind uint8

const (
	ValueFunction ValueKind = iota
	ValueConstructor
	ValueEffect
	ValueField
	ValueModule
)

func (k ValueKind) String() string {
	switch k {
	case ValueFunction:
		return "function"
	case ValueConstructor:
		return "constructor"
	case ValueEffect:
		return "effect"
	case ValueField:
		return "field"
	case ValueModule:
		return "module"
	default:
		return "invalid"
	}
}

// Value is one declared value-level entity. Module aliases carry the target
// namespace instead of a qualified reference.
type Value struct {
	Kind   ValueKind
	Ref    resolved.Qualified
	Module resolved.NamespaceID
}

// TypeKind classifies an entry in a namespace's type map.
type TypeKind uint8

const (
	TypeSum TypeKind = iota
	TypeRecord
	TypeAbstract
	TypeSynonym
	TypeEffectDecl
)

func (k TypeKind) String() string {
	switch k {
	case TypeSum:
		return "sum type"
	case TypeRecord:
		return "record type"
	case TypeAbstract:
		return "abstract type"
	case TypeSynonym:
		return "type synonym"
	case TypeEffectDecl:
		return "effect"
	default:
		return "invalid"
	}
}

// TypeValue is one declared type-level entity.
type TypeValue struct {
	Kind TypeKind
	Ref  resolved.Qualified
}

// Item wraps a declared entity with its visibility and the pass-through
// flag. A pass-through item is a re-export conduit installed by a public
// use: it stays private in its host namespace yet resolves from outside.
type Item[T any] struct {
	Item        T
	Vis         resolved.Visibility
	PassThrough bool
}

// Namespace is one module's declaration tables. Keys are unique within each
// map; duplicates are rejected during the declare phase.
type Namespace struct {
	Path    []source.StringID
	Values  map[source.StringID]Item[Value]
	Types   map[source.StringID]Item[TypeValue]
	Modules map[source.StringID]Item[resolved.NamespaceID]
}

func newNamespace(path []source.StringID) *Namespace {
	return &Namespace{
		Path:    path,
		Values:  make(map[source.StringID]Item[Value]),
		Types:   make(map[source.StringID]Item[TypeValue]),
		Modules: make(map[source.StringID]Item[resolved.NamespaceID]),
	}
}

// Registry stores all namespaces of a compilation in a slice arena. IDs are
// assigned once by the declare phase and never reused.
type Registry struct {
	data []*Namespace // index 0 reserved for NoNamespaceID
}

// NewRegistry creates a registry with an optional capacity hint.
func NewRegistry(capacity uint32) *Registry {
	if capacity == 0 {
		capacity = 16
	}
	return &Registry{
		data: make([]*Namespace, 1, capacity+1),
	}
}

// New allocates a namespace for the given module path and returns its ID.
func (r *Registry) New(path []source.StringID) resolved.NamespaceID {
	value, err := safecast.Conv[uint32](len(r.data))
	if err != nil {
		panic(fmt.Errorf("namespace registry overflow: %w", err))
	}
	id := resolved.NamespaceID(value)
	r.data = append(r.data, newNamespace(path))
	return id
}

// Get returns the namespace pointer or nil for an invalid ID.
func (r *Registry) Get(id resolved.NamespaceID) *Namespace {
	if !id.IsValid() || int(id) >= len(r.data) {
		return nil
	}
	return r.data[id]
}

// Len reports the number of namespaces excluding the sentinel.
func (r *Registry) Len() int { return len(r.data) - 1 }
