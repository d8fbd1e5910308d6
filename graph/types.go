package graph

import (
	"strings"

	"github.com/albertocavalcante/go-apiver/label"
)

// Source is a read-only view of one namespace level.
type Source interface {
	Path() []string
	LeafNames() []string
	NamespaceNames() []string
	Versions(leaf string) ([]label.Version, error)
	Namespace(name string) (Source, error)
}

// Tree is a snapshot of a namespace hierarchy.
type Tree struct {
	Root *Node
}

// Node is one namespace level in a Tree.
type Node struct {
	// Name is the final path segment, empty for the root.
	Name string

	// Path is the namespace path from the root.
	Path []string

	// Leaves are the versioned names at this level, sorted by name.
	Leaves []Leaf

	// Namespaces are the nested levels, sorted by name.
	Namespaces []*Node
}

// QualifiedName returns the dotted path of the node.
func (n *Node) QualifiedName() string {
	return strings.Join(n.Path, label.Separator)
}

// Leaf is a versioned name and its registered versions, newest first.
type Leaf struct {
	Name     string          `json:"name"`
	Versions []label.Version `json:"versions"`
}

// Stats summarizes a Tree.
type Stats struct {
	Namespaces    int `json:"namespaces"`
	Leaves        int `json:"leaves"`
	Registrations int `json:"registrations"`
	MaxDepth      int `json:"max_depth"`
}

// Candidate is one registered version considered by Explain.
type Candidate struct {
	Version         label.Version
	Selected        bool
	RejectionReason string
}

// Explanation describes how a versioned lookup was decided.
type Explanation struct {
	Path       []string
	Leaf       string
	Requested  label.Version
	Candidates []Candidate

	// Selected is nil when no candidate qualifies.
	Selected *label.Version

	// MinVersion is the oldest registered version.
	MinVersion label.Version
}
