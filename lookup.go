package goapiver

import (
	"errors"
	"strings"

	"github.com/albertocavalcante/go-apiver/label"
)

// Result is the outcome of a single lookup: either a handle or a nested
// resolver, never both.
type Result[H any] struct {
	Handle    H
	Namespace *Resolver[H]
}

// IsNamespace reports whether the lookup selected a namespace.
func (res Result[H]) IsNamespace() bool {
	return res.Namespace != nil
}

// Lookup routes a single-segment query. "get_v2" resolves the leaf "get" at
// version 2 or below; "api" resolves the namespace "api". Queries that match
// neither shape, such as dotted names, fail with a *NameNotFoundError.
func (r *Resolver[H]) Lookup(query string) (Result[H], error) {
	q, err := label.ParseQuery(query)
	if err != nil {
		return Result[H]{}, &NameNotFoundError{Path: r.node.Path(), Query: query}
	}

	if q.Versioned {
		h, err := r.ResolveVersioned(q.Name, q.MaxVersion)
		if err != nil {
			return Result[H]{}, err
		}
		return Result[H]{Handle: h}, nil
	}

	child, err := r.ResolveNamespace(q.Name)
	if err != nil {
		return Result[H]{}, err
	}
	return Result[H]{Namespace: child}, nil
}

// Walk follows a dotted path one segment at a time, the way a chain of member
// accesses such as one.two.three.stop_v5 would. Every segment but the last
// must be a namespace; the last is looked up with Lookup.
func (r *Resolver[H]) Walk(path string) (Result[H], error) {
	if path == "" {
		return Result[H]{}, &NameNotFoundError{Path: r.node.Path(), Query: path}
	}
	segments := strings.Split(path, label.Separator)

	cur := r
	for _, seg := range segments[:len(segments)-1] {
		next, err := cur.ResolveNamespace(seg)
		if err != nil {
			return Result[H]{}, err
		}
		cur = next
	}
	return cur.Lookup(segments[len(segments)-1])
}

// Has reports whether query resolves to anything. A version that is too low
// counts as absent.
func (r *Resolver[H]) Has(query string) bool {
	_, err := r.Lookup(query)
	return err == nil
}

// Get resolves a dotted path that must end in a versioned leaf and returns
// its handle.
func (r *Resolver[H]) Get(path string) (H, error) {
	res, err := r.Walk(path)
	if err != nil {
		var zero H
		return zero, err
	}
	if res.IsNamespace() {
		var zero H
		return zero, &NameNotFoundError{Path: res.Namespace.Path(), Query: path}
	}
	return res.Handle, nil
}

// IsNotFound reports whether err is a name-not-found failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNameNotFound)
}

// IsVersionTooLow reports whether err is a version-too-low failure and, if so,
// the oldest version that would have succeeded.
func IsVersionTooLow(err error) (label.Version, bool) {
	var vErr *VersionTooLowError
	if errors.As(err, &vErr) {
		return vErr.MinVersion, true
	}
	return 0, false
}
