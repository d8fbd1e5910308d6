//go:build tools

// Package lint pins the linters run against go-apiver. It lives in its own
// module so the library's go.mod only lists what the library imports.
//
// The go.mod here names just the two tools. Run "go mod tidy" in this
// directory once to record their transitive requirements, then from the
// project root:
//
//	go tool -modfile=tools/lint/go.mod golangci-lint run ./...
//	go tool -modfile=tools/lint/go.mod staticcheck ./...
package lint
