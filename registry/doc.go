// Package registry accumulates versioned API registrations during a build
// phase.
//
// A Registry maps dotted qualified names to ordered lists of versioned
// entries. Every segment before the last dot is a namespace; the last segment
// is the leaf. Leaves and namespaces live in separate key spaces, so a leaf
// named "test" and a namespace named "test" can coexist at the same level:
//
//	reg := registry.New[string]()
//	reg.Register("api.test", 1, "namespace_one")
//	reg.Register("api.test", 2, "namespace_two")
//	reg.Register("api.test.third", 50, "nested")
//	reg.Finalize()
//
// # Lifecycle
//
// A Registry is mutable only until Finalize. Finalize sorts every leaf's
// entries by version descending (ties keep registration order) and freezes
// the registry; later calls to Register fail with ErrFinalized.
//
// # Conflicts
//
// A namespace segment shaped like a versioned lookup ("api_v2" in
// "api_v2.get") can never be reached, because a lookup of it is routed to the
// leaf "api" at version 2. Registering such a name fails with a
// *ConfigConflictError. Leaves may have that shape: "get_v2" is looked up as
// "get_v2_v1".
//
// Registries are not safe for concurrent registration. After Finalize the
// tree is read-only and safe for concurrent readers.
package registry
