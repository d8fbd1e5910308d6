// Package goapiver resolves versioned method names against a registry of
// implementations.
//
// Implementations are registered under dotted qualified names at integer
// versions. A request for "name at version N or below" is answered with the
// newest registered implementation that does not exceed N, so a caller that
// asks for a version newer than anything registered still gets the best one
// available. Dotted names form namespaces that are resolved one segment at a
// time.
//
// # Overview
//
// The package is organized in three layers:
//
//   - label: validated qualified names, versions and lookup queries
//   - registry: the build phase, accumulating registrations and freezing them
//   - goapiver: the Resolver, answering lookups for a subject
//
// # Quick Start
//
//	type Story struct{ ID int }
//
//	r, err := goapiver.Build(story, []goapiver.Registration[func(*Story) string]{
//	    goapiver.Impl(getXML, goapiver.V("get", 1)),
//	    goapiver.Impl(getJSON, goapiver.V("get", 2)),
//	    goapiver.Impl(nested, goapiver.V("api.test.third", 50)),
//	})
//
//	h, _ := r.Get("get_v3")            // getJSON: newest version <= 3
//	h, _ = r.Get("api.test.third_v55") // nested
//	_, err = r.Get("get_v0")           // *VersionTooLowError{MinVersion: 1}
//
// # Thread Safety
//
// Registration is single-threaded. Once built, a Resolver and every nested
// Resolver it returns are safe for concurrent use.
package goapiver

import (
	"errors"
	"fmt"

	"github.com/albertocavalcante/go-apiver/label"
	"github.com/albertocavalcante/go-apiver/manifest"
	"github.com/albertocavalcante/go-apiver/registry"
)

// At names one (qualified name, version) pair an implementation serves.
type At struct {
	Name    string
	Version label.Version
}

// V is shorthand for At{Name: name, Version: version}.
func V(name string, version label.Version) At {
	return At{Name: name, Version: version}
}

// Registration ties a handle to every name and version it serves.
type Registration[H any] struct {
	Handle H
	At     []At
}

// Impl declares that handle serves each of at.
func Impl[H any](handle H, at ...At) Registration[H] {
	return Registration[H]{Handle: handle, At: at}
}

// Register adds every registration to reg.
func Register[H any](reg *registry.Registry[H], regs ...Registration[H]) error {
	for _, rg := range regs {
		if len(rg.At) == 0 {
			return fmt.Errorf("register: %w: registration has no names", ErrInvalidName)
		}
		for _, at := range rg.At {
			if err := reg.Register(at.Name, at.Version, rg.Handle); err != nil {
				return err
			}
		}
	}
	return nil
}

// Build registers regs into a fresh registry, finalizes it, and returns a
// resolver bound to subject.
func Build[H any](subject any, regs []Registration[H], opts ...Option) (*Resolver[H], error) {
	reg := registry.New[H]()
	if err := Register(reg, regs...); err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	reg.Finalize()
	return NewResolver(reg, subject, opts...)
}

// RegisterManifest adds manifest entries to reg, mapping each entry's impl
// name to a handle with lookup. Every entry is checked before anything is
// registered; all failures are reported together.
func RegisterManifest[H any](reg *registry.Registry[H], entries []manifest.Entry, lookup func(impl string) (H, bool)) error {
	type bound struct {
		entry  manifest.Entry
		handle H
	}

	resolved := make([]bound, 0, len(entries))
	var errs []error
	for _, e := range entries {
		h, ok := lookup(e.Impl)
		if !ok {
			errs = append(errs, fmt.Errorf("%s: %w %q", e.Source, ErrUnknownImpl, e.Impl))
			continue
		}
		resolved = append(resolved, bound{entry: e, handle: h})
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	for _, b := range resolved {
		if err := reg.RegisterAll(b.entry.Names, b.entry.Version, b.handle); err != nil {
			return fmt.Errorf("%s: %w", b.entry.Source, err)
		}
	}
	return nil
}

// BuildFile reads a manifest from path and builds a resolver for subject.
func BuildFile[H any](subject any, path string, lookup func(impl string) (H, bool), opts ...Option) (*Resolver[H], error) {
	entries, err := manifest.ParseFile(path)
	if err != nil {
		return nil, err
	}
	reg := registry.New[H]()
	if err := RegisterManifest(reg, entries, lookup); err != nil {
		return nil, fmt.Errorf("build %s: %w", path, err)
	}
	reg.Finalize()
	return NewResolver(reg, subject, opts...)
}

// LookupMap adapts a map of implementations for RegisterManifest.
func LookupMap[H any](impls map[string]H) func(string) (H, bool) {
	return func(name string) (H, bool) {
		h, ok := impls[name]
		return h, ok
	}
}
