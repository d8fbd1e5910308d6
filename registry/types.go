package registry

import (
	"cmp"
	"slices"
	"strings"

	"github.com/albertocavalcante/go-apiver/label"
)

// Entry is one registered version of a leaf.
// Handle is opaque to the registry and never inspected.
type Entry[H any] struct {
	Version label.Version
	Handle  H
}

// Registration is a flattened view of a single entry with its full name.
type Registration[H any] struct {
	Name    string
	Version label.Version
	Handle  H
}

// SlotKind distinguishes the two key spaces of a Node.
type SlotKind int

const (
	// LeafSlot holds versioned entries.
	LeafSlot SlotKind = iota
	// NamespaceSlot holds a nested Node.
	NamespaceSlot
)

func (k SlotKind) String() string {
	if k == NamespaceSlot {
		return "namespace"
	}
	return "leaf"
}

// Node is one level of the namespace hierarchy.
type Node[H any] struct {
	path       []string
	leaves     map[string][]Entry[H]
	namespaces map[string]*Node[H]
}

func newNode[H any](path []string) *Node[H] {
	return &Node[H]{
		path:       path,
		leaves:     make(map[string][]Entry[H]),
		namespaces: make(map[string]*Node[H]),
	}
}

// Path returns the namespace path from the root to this node.
func (n *Node[H]) Path() []string {
	return slices.Clone(n.path)
}

// Leaf returns a copy of the entries registered under name, newest first
// once finalized.
func (n *Node[H]) Leaf(name string) ([]Entry[H], bool) {
	entries, ok := n.leaves[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(entries), true
}

// Selection is the outcome of Select for a registered leaf.
type Selection[H any] struct {
	// Entry is the newest entry at or below the requested version.
	// It is only meaningful when Found is true.
	Entry Entry[H]
	Found bool

	// Oldest is the lowest registered version of the leaf.
	Oldest label.Version
}

// Select picks the newest entry of name whose version is at most maxVersion.
// The boolean is false if name is not a leaf at this level. Entries must
// already be sorted, as they are after Finalize.
func (n *Node[H]) Select(name string, maxVersion label.Version) (Selection[H], bool) {
	entries := n.leaves[name]
	if len(entries) == 0 {
		return Selection[H]{}, false
	}
	sel := Selection[H]{Oldest: entries[len(entries)-1].Version}
	for _, e := range entries {
		if e.Version.Satisfies(maxVersion) {
			sel.Entry, sel.Found = e, true
			break
		}
	}
	return sel, true
}

// Namespace returns the nested node for name.
func (n *Node[H]) Namespace(name string) (*Node[H], bool) {
	child, ok := n.namespaces[name]
	return child, ok
}

// LeafNames returns the leaf names at this level, sorted.
func (n *Node[H]) LeafNames() []string {
	return sortedKeys(n.leaves)
}

// NamespaceNames returns the namespace names at this level, sorted.
func (n *Node[H]) NamespaceNames() []string {
	return sortedKeys(n.namespaces)
}

// Len returns the number of entries in this node and all nested nodes.
func (n *Node[H]) Len() int {
	total := 0
	for _, entries := range n.leaves {
		total += len(entries)
	}
	for _, child := range n.namespaces {
		total += child.Len()
	}
	return total
}

// SortLeaves orders this level's entries by version descending. Nested
// namespaces are left alone. Already-sorted slices are not written to, so
// calling this on a finalized node is safe alongside concurrent readers.
func (n *Node[H]) SortLeaves() {
	for _, entries := range n.leaves {
		if slices.IsSortedFunc(entries, byVersionDesc[H]) {
			continue
		}
		slices.SortStableFunc(entries, byVersionDesc[H])
	}
}

// sortAll sorts this level and every nested level.
func (n *Node[H]) sortAll() {
	n.SortLeaves()
	for _, child := range n.namespaces {
		child.sortAll()
	}
}

// Registrations returns every entry under this node, ordered by name and
// then by version descending.
func (n *Node[H]) Registrations() []Registration[H] {
	var out []Registration[H]
	n.collect(&out)
	slices.SortStableFunc(out, func(a, b Registration[H]) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return b.Version.Compare(a.Version)
	})
	return out
}

func (n *Node[H]) collect(out *[]Registration[H]) {
	for name, entries := range n.leaves {
		qualified := qualify(n.path, name)
		for _, e := range entries {
			*out = append(*out, Registration[H]{Name: qualified, Version: e.Version, Handle: e.Handle})
		}
	}
	for _, child := range n.namespaces {
		child.collect(out)
	}
}

func byVersionDesc[H any](a, b Entry[H]) int {
	return b.Version.Compare(a.Version)
}

func qualify(path []string, name string) string {
	return strings.Join(append(slices.Clone(path), name), label.Separator)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
