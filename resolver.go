package goapiver

import (
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/albertocavalcante/go-apiver/label"
	"github.com/albertocavalcante/go-apiver/registry"
)

// Resolver answers versioned-name and namespace lookups against a finalized
// registry on behalf of a subject.
//
// Versioned lookups select the newest entry whose version does not exceed the
// request, so callers asking for a version newer than anything registered
// still get the best available implementation. Namespace lookups return a
// nested Resolver, built on first access and reused afterwards.
//
// A Resolver never invokes handles; the subject is carried along so the
// caller can invoke a handle against it. All methods are safe for concurrent
// use.
type Resolver[H any] struct {
	node    *registry.Node[H]
	subject any
	cfg     *resolverConfig
	logger  *slog.Logger

	// slots is fixed at construction; only the entries' children are
	// installed later, each exactly once.
	slots map[string]*namespaceSlot[H]
}

// namespaceSlot holds a nested node until the first lookup replaces it with
// a live child resolver.
type namespaceSlot[H any] struct {
	node  *registry.Node[H]
	once  sync.Once
	child *Resolver[H]
}

// NewResolver builds a resolver over reg for the given subject.
// The registry is finalized if the caller has not done so already.
func NewResolver[H any](reg *registry.Registry[H], subject any, opts ...Option) (*Resolver[H], error) {
	if reg == nil {
		return nil, errors.New("registry is nil")
	}
	cfg, err := newResolverConfig(opts...)
	if err != nil {
		return nil, err
	}
	if !reg.Finalized() {
		reg.Finalize()
	}

	r := newResolver(reg.Root(), subject, cfg)
	r.logger.Debug("resolver built",
		"registrations", reg.Len(),
		"namespaces", len(r.slots),
		"eager", cfg.eagerNamespaces)
	if cfg.eagerNamespaces {
		r.materializeAll()
	}
	return r, nil
}

func newResolver[H any](node *registry.Node[H], subject any, cfg *resolverConfig) *Resolver[H] {
	names := node.NamespaceNames()
	slots := make(map[string]*namespaceSlot[H], len(names))
	for _, name := range names {
		child, _ := node.Namespace(name)
		slots[name] = &namespaceSlot[H]{node: child}
	}
	logger := cfg.log()
	if path := node.Path(); len(path) > 0 {
		logger = logger.With("namespace", strings.Join(path, label.Separator))
	}
	return &Resolver[H]{
		node:    node,
		subject: subject,
		cfg:     cfg,
		logger:  logger,
		slots:   slots,
	}
}

// WithSubject returns a root-level resolver over the same registrations bound
// to a different subject. Nested resolvers are not shared with r.
func (r *Resolver[H]) WithSubject(subject any) *Resolver[H] {
	nr := newResolver(r.node, subject, r.cfg)
	if r.cfg.eagerNamespaces {
		nr.materializeAll()
	}
	return nr
}

// ResolveVersioned returns the handle of the newest entry for leaf whose
// version is at most maxVersion.
//
// It returns a *NameNotFoundError if leaf was never registered at this level
// and a *VersionTooLowError if every registered version exceeds maxVersion.
func (r *Resolver[H]) ResolveVersioned(leaf string, maxVersion label.Version) (H, error) {
	var zero H
	sel, ok := r.node.Select(leaf, maxVersion)
	if !ok {
		return zero, &NameNotFoundError{Path: r.node.Path(), Query: label.FormatVersioned(leaf, maxVersion)}
	}
	if !sel.Found {
		return zero, &VersionTooLowError{
			Name:       leaf,
			Requested:  maxVersion,
			MinVersion: sel.Oldest,
		}
	}
	return sel.Entry.Handle, nil
}

// ResolveNamespace returns the nested resolver for segment. Every call for
// the same segment returns the same instance, including concurrent first
// calls.
func (r *Resolver[H]) ResolveNamespace(segment string) (*Resolver[H], error) {
	slot, ok := r.slots[segment]
	if !ok {
		return nil, &NameNotFoundError{Path: r.node.Path(), Query: segment}
	}
	slot.once.Do(func() {
		child := newResolver(slot.node, r.subject, r.cfg)
		child.node.SortLeaves()
		slot.child = child
		r.logger.Debug("namespace materialized", "segment", segment, "leaves", len(slot.node.LeafNames()))
	})
	return slot.child, nil
}

func (r *Resolver[H]) materializeAll() {
	for name := range r.slots {
		child, _ := r.ResolveNamespace(name)
		child.materializeAll()
	}
}

// Subject returns the value handles are meant to be invoked against.
func (r *Resolver[H]) Subject() any {
	return r.subject
}

// Path returns the namespace path from the root resolver to r.
func (r *Resolver[H]) Path() []string {
	return r.node.Path()
}

// LeafNames returns the leaf names registered at this level, sorted.
func (r *Resolver[H]) LeafNames() []string {
	return r.node.LeafNames()
}

// NamespaceNames returns the namespace names at this level, sorted.
func (r *Resolver[H]) NamespaceNames() []string {
	return r.node.NamespaceNames()
}

// Versions returns the registered versions of leaf, newest first.
func (r *Resolver[H]) Versions(leaf string) ([]label.Version, error) {
	entries, ok := r.node.Leaf(leaf)
	if !ok {
		return nil, &NameNotFoundError{Path: r.node.Path(), Query: leaf}
	}
	out := make([]label.Version, len(entries))
	for i, e := range entries {
		out[i] = e.Version
	}
	return out, nil
}

// Names lists every lookup that succeeds at this level: "name_v<N>" for each
// registered version and ":name" for each namespace.
func (r *Resolver[H]) Names() []string {
	var names []string
	for _, leaf := range r.node.LeafNames() {
		entries, _ := r.node.Leaf(leaf)
		for _, e := range entries {
			names = append(names, label.FormatVersioned(leaf, e.Version))
		}
	}
	for _, ns := range r.node.NamespaceNames() {
		names = append(names, ":"+ns)
	}
	return names
}

// String summarizes the lookups available at this level.
func (r *Resolver[H]) String() string {
	available := strings.Join(r.Names(), ", ")
	if available == "" {
		available = "None"
	}
	return "apiver resolver: " + available
}
