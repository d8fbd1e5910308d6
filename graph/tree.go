package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/albertocavalcante/go-apiver/label"
)

// Build walks src and every nested namespace into a Tree.
func Build(src Source) (*Tree, error) {
	root, err := buildNode(src, "")
	if err != nil {
		return nil, err
	}
	return &Tree{Root: root}, nil
}

func buildNode(src Source, name string) (*Node, error) {
	node := &Node{Name: name, Path: src.Path()}

	for _, leaf := range src.LeafNames() {
		versions, err := src.Versions(leaf)
		if err != nil {
			return nil, fmt.Errorf("versions of %q: %w", leaf, err)
		}
		node.Leaves = append(node.Leaves, Leaf{Name: leaf, Versions: versions})
	}

	for _, ns := range src.NamespaceNames() {
		child, err := src.Namespace(ns)
		if err != nil {
			return nil, fmt.Errorf("namespace %q: %w", ns, err)
		}
		childNode, err := buildNode(child, ns)
		if err != nil {
			return nil, err
		}
		node.Namespaces = append(node.Namespaces, childNode)
	}
	return node, nil
}

// Find returns the node at the dotted namespace path, or nil.
// The empty path is the root.
func (t *Tree) Find(path string) *Node {
	if path == "" {
		return t.Root
	}
	node := t.Root
	for _, seg := range strings.Split(path, label.Separator) {
		idx := slices.IndexFunc(node.Namespaces, func(n *Node) bool { return n.Name == seg })
		if idx < 0 {
			return nil
		}
		node = node.Namespaces[idx]
	}
	return node
}

// Stats returns summary counts for the tree.
func (t *Tree) Stats() Stats {
	var s Stats
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		s.MaxDepth = max(s.MaxDepth, depth)
		s.Leaves += len(n.Leaves)
		for _, l := range n.Leaves {
			s.Registrations += len(l.Versions)
		}
		for _, child := range n.Namespaces {
			s.Namespaces++
			walk(child, depth+1)
		}
	}
	walk(t.Root, 0)
	return s
}

// Explain describes which version the versioned lookup at the end of path
// selects, e.g. "api.test_v5".
func (t *Tree) Explain(path string) (*Explanation, error) {
	nsPath, last := "", path
	if i := strings.LastIndex(path, label.Separator); i >= 0 {
		nsPath, last = path[:i], path[i+1:]
	}

	q, err := label.ParseQuery(last)
	if err != nil {
		return nil, err
	}
	if !q.Versioned {
		return nil, fmt.Errorf("%q is not a versioned lookup", path)
	}

	node := t.Find(nsPath)
	if node == nil {
		return nil, fmt.Errorf("namespace %q not found", nsPath)
	}
	idx := slices.IndexFunc(node.Leaves, func(l Leaf) bool { return l.Name == q.Name })
	if idx < 0 {
		return nil, fmt.Errorf("leaf %q not found in namespace %q", q.Name, nsPath)
	}
	leaf := node.Leaves[idx]

	exp := &Explanation{
		Path:      node.Path,
		Leaf:      leaf.Name,
		Requested: q.MaxVersion,
	}
	for _, v := range leaf.Versions {
		c := Candidate{Version: v}
		switch {
		case exp.Selected != nil:
			c.RejectionReason = fmt.Sprintf("older than selected %s", *exp.Selected)
		case !v.Satisfies(q.MaxVersion):
			c.RejectionReason = fmt.Sprintf("exceeds requested %s", q.MaxVersion)
		default:
			c.Selected = true
			selected := v
			exp.Selected = &selected
		}
		exp.Candidates = append(exp.Candidates, c)
	}
	if n := len(leaf.Versions); n > 0 {
		exp.MinVersion = leaf.Versions[n-1]
	}
	return exp, nil
}
