package resolver

import (
	"fen/internal/resolved"
	"fen/internal/source"
)

// NameClass separates the namespaces an import can populate: one short
// name may simultaneously be a value, a type and a module.
type NameClass uint8

const (
	ClassValue NameClass = iota
	ClassType
	ClassModule
)

type importKey struct {
	Name  source.StringID
	Class NameClass
}

type importEntry struct {
	Ref       resolved.Qualified
	Ambiguous bool
}

// Imports holds the per-unit import state: the alias table for path
// canonicalization and the short-name import map with ambiguity tracking.
type Imports struct {
	aliases map[source.StringID][]source.StringID
	names   map[importKey]importEntry
}

func NewImports() *Imports {
	return &Imports{
		aliases: make(map[source.StringID][]source.StringID),
		names:   make(map[importKey]importEntry),
	}
}

// AddAlias records `use path as alias`. A later reference whose first
// segment matches the alias gets the target path substituted in.
func (im *Imports) AddAlias(alias source.StringID, path []source.StringID) {
	im.aliases[alias] = path
}

// Canonicalize substitutes the first segment when it matches a recorded
// alias; otherwise the path is returned unchanged.
func (im *Imports) Canonicalize(path []source.StringID) []source.StringID {
	if len(path) == 0 {
		return path
	}
	target, ok := im.aliases[path[0]]
	if !ok {
		return path
	}
	out := make([]source.StringID, 0, len(target)+len(path)-1)
	out = append(out, target...)
	return append(out, path[1:]...)
}

// Add registers an unaliased import under its short name. A second
// distinct target for the same name and class marks the entry ambiguous.
func (im *Imports) Add(class NameClass, name source.StringID, ref resolved.Qualified) {
	key := importKey{Name: name, Class: class}
	prev, ok := im.names[key]
	if ok {
		if !prev.Ref.Same(ref) {
			prev.Ambiguous = true
			im.names[key] = prev
		}
		return
	}
	im.names[key] = importEntry{Ref: ref}
}

// Lookup returns the import entry for a bare name, if any.
func (im *Imports) Lookup(class NameClass, name source.StringID) (resolved.Qualified, bool, bool) {
	e, ok := im.names[importKey{Name: name, Class: class}]
	if !ok {
		return resolved.Qualified{}, false, false
	}
	return e.Ref, e.Ambiguous, true
}
