package resolver

import (
	"fen/internal/resolved"
	"fen/internal/source"
)

// ModuleTree is a trie from dotted module paths to namespace IDs. It is
// built by the declare phase and read-only afterwards.
type ModuleTree struct {
	ID       resolved.NamespaceID
	Children map[source.StringID]*ModuleTree
}

// NewModuleTree creates a tree rooted at the given namespace.
func NewModuleTree(root resolved.NamespaceID) *ModuleTree {
	return &ModuleTree{
		ID:       root,
		Children: make(map[source.StringID]*ModuleTree),
	}
}

// Add inserts a path, creating intermediate nodes as needed, and binds the
// leaf to the namespace. Intermediate nodes created here carry no ID until
// their own module declaration assigns one.
func (t *ModuleTree) Add(path []source.StringID, id resolved.NamespaceID) *ModuleTree {
	node := t
	for _, seg := range path {
		child, ok := node.Children[seg]
		if !ok {
			child = &ModuleTree{Children: make(map[source.StringID]*ModuleTree)}
			node.Children[seg] = child
		}
		node = child
	}
	node.ID = id
	return node
}

// Find walks the whole path and returns the namespace at its leaf.
func (t *ModuleTree) Find(path []source.StringID) (resolved.NamespaceID, bool) {
	node, ok := t.FindSubTree(path)
	if !ok || !node.ID.IsValid() {
		return resolved.NoNamespaceID, false
	}
	return node.ID, true
}

// FindSubTree walks the path and returns the sub-tree rooted at its leaf.
// Alias substitution resolves a reference's first segment against the
// sub-tree an alias points at.
func (t *ModuleTree) FindSubTree(path []source.StringID) (*ModuleTree, bool) {
	node := t
	for _, seg := range path {
		child, ok := node.Children[seg]
		if !ok {
			return nil, false
		}
		node = child
	}
	return node, true
}
