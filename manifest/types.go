package manifest

import (
	"errors"
	"fmt"

	"github.com/albertocavalcante/go-apiver/label"
)

// ErrInvalidEntry indicates a manifest entry is missing required fields.
var ErrInvalidEntry = errors.New("invalid manifest entry")

// Entry is one declared registration: Impl serves every name in Names at
// Version.
type Entry struct {
	Names   []string
	Version label.Version
	Impl    string

	// Source locates the entry for error messages, e.g. "APIS.bazel:3".
	Source string
}

// EntryError reports a malformed entry together with its location.
// It matches ErrInvalidEntry with errors.Is.
type EntryError struct {
	Source  string
	Message string
}

func (e *EntryError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidEntry, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Source, ErrInvalidEntry, e.Message)
}

// Is reports whether target is ErrInvalidEntry.
func (e *EntryError) Is(target error) bool {
	return target == ErrInvalidEntry
}

// Format selects a manifest decoder.
type Format int

const (
	// FormatStarlark decodes api(...) calls.
	FormatStarlark Format = iota
	// FormatYAML decodes an "apis" list.
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatStarlark:
		return "starlark"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// checkEntry validates the fields shared by every decoder.
func checkEntry(e Entry) error {
	if len(e.Names) == 0 {
		return &EntryError{Source: e.Source, Message: "name or names is required"}
	}
	for _, name := range e.Names {
		if name == "" {
			return &EntryError{Source: e.Source, Message: "names must not be empty strings"}
		}
	}
	if e.Impl == "" {
		return &EntryError{Source: e.Source, Message: "impl is required"}
	}
	return nil
}
