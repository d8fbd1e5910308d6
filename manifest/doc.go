// Package manifest decodes declarative API registration files.
//
// A manifest lists which implementation serves which qualified name at which
// version. Implementations are referred to by name ("impl"); binding those
// names to real handles is the caller's job.
//
// # Starlark
//
//	api(name = "get", version = 1, impl = "get_xml")
//	api(name = "get", version = 2, impl = "get_json")
//	api(names = ["multi.one", "multi.two"], version = 1, impl = "multipass")
//
// Calls to functions other than api are ignored, so manifests may carry
// load statements and unrelated rules.
//
// # YAML
//
//	apis:
//	  - name: get
//	    version: 1
//	    impl: get_xml
//	  - names: [multi.one, multi.two]
//	    version: 1
//	    impl: multipass
package manifest
