package registry

import (
	"errors"
	"fmt"
	"slices"

	"github.com/albertocavalcante/go-apiver/label"
)

// Registry accumulates registrations until Finalize is called.
type Registry[H any] struct {
	root      *Node[H]
	count     int
	finalized bool
}

// New returns an empty, unfinalized Registry.
func New[H any]() *Registry[H] {
	return &Registry[H]{root: newNode[H](nil)}
}

// Register appends (version, handle) to the leaf named by qualifiedName,
// creating namespace slots along the way. Duplicate (name, version) pairs are
// allowed; the earliest registration wins ties during resolution.
//
// Nothing is mutated when an error is returned.
func (r *Registry[H]) Register(qualifiedName string, version label.Version, handle H) error {
	qn, err := r.prepare(qualifiedName)
	if err != nil {
		return err
	}
	r.insert(qn, version, handle)
	return nil
}

// RegisterAll registers the same handle under several qualified names.
// Either every name is registered or none is.
func (r *Registry[H]) RegisterAll(names []string, version label.Version, handle H) error {
	if len(names) == 0 {
		return fmt.Errorf("register: %w: no names given", ErrInvalidName)
	}

	parsed := make([]label.QualifiedName, 0, len(names))
	var errs []error
	for _, name := range names {
		qn, err := r.prepare(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		parsed = append(parsed, qn)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	for _, qn := range parsed {
		r.insert(qn, version, handle)
	}
	return nil
}

// prepare validates a qualified name against the registry's current state.
func (r *Registry[H]) prepare(qualifiedName string) (label.QualifiedName, error) {
	if r.finalized {
		return label.QualifiedName{}, fmt.Errorf("register %q: %w", qualifiedName, ErrFinalized)
	}
	qn, err := label.ParseQualifiedName(qualifiedName)
	if err != nil {
		return label.QualifiedName{}, fmt.Errorf("register: %w", err)
	}
	if err := checkConflicts(qn); err != nil {
		return label.QualifiedName{}, err
	}
	return qn, nil
}

func (r *Registry[H]) insert(qn label.QualifiedName, version label.Version, handle H) {
	target := r.root
	for _, seg := range qn.Namespace() {
		child, ok := target.namespaces[seg]
		if !ok {
			child = newNode[H](append(slices.Clone(target.path), seg))
			target.namespaces[seg] = child
		}
		target = child
	}
	leaf := qn.Leaf()
	target.leaves[leaf] = append(target.leaves[leaf], Entry[H]{Version: version, Handle: handle})
	r.count++
}

// Finalize sorts every leaf newest first and freezes the registry.
// Calling it more than once is harmless.
func (r *Registry[H]) Finalize() {
	r.root.sortAll()
	r.finalized = true
}

// Finalized reports whether Finalize has been called.
func (r *Registry[H]) Finalized() bool {
	return r.finalized
}

// Root returns the top-level node.
func (r *Registry[H]) Root() *Node[H] {
	return r.root
}

// Len returns the number of registrations, counting each alias separately.
func (r *Registry[H]) Len() int {
	return r.count
}
