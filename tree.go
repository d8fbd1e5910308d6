package goapiver

import (
	"github.com/albertocavalcante/go-apiver/graph"
	"github.com/albertocavalcante/go-apiver/label"
)

// Tree snapshots r and every nested namespace for inspection. Nested
// resolvers are materialized as a side effect.
func (r *Resolver[H]) Tree() (*graph.Tree, error) {
	return graph.Build(treeSource[H]{r})
}

// treeSource adapts a Resolver to graph.Source.
type treeSource[H any] struct {
	r *Resolver[H]
}

var _ graph.Source = treeSource[int]{}

func (s treeSource[H]) Path() []string           { return s.r.Path() }
func (s treeSource[H]) LeafNames() []string      { return s.r.LeafNames() }
func (s treeSource[H]) NamespaceNames() []string { return s.r.NamespaceNames() }

func (s treeSource[H]) Versions(leaf string) ([]label.Version, error) {
	return s.r.Versions(leaf)
}

func (s treeSource[H]) Namespace(name string) (graph.Source, error) {
	child, err := s.r.ResolveNamespace(name)
	if err != nil {
		return nil, err
	}
	return treeSource[H]{child}, nil
}
