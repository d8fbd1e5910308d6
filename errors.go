package goapiver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/albertocavalcante/go-apiver/label"
	"github.com/albertocavalcante/go-apiver/registry"
)

// Sentinel errors for resolution and build failures.
var (
	// ErrNameNotFound indicates the requested leaf or namespace was never registered.
	ErrNameNotFound = errors.New("name not found")

	// ErrVersionTooLow indicates every registered version exceeds the requested one.
	ErrVersionTooLow = errors.New("version too low")

	// ErrConfigConflict indicates a registration that can never be resolved unambiguously.
	ErrConfigConflict = registry.ErrConfigConflict

	// ErrFinalized indicates a registration attempted after the build phase.
	ErrFinalized = registry.ErrFinalized

	// ErrInvalidName indicates a malformed qualified name.
	ErrInvalidName = registry.ErrInvalidName

	// ErrUnknownImpl indicates a manifest entry names an implementation the
	// caller could not supply.
	ErrUnknownImpl = errors.New("unknown implementation")
)

// ConfigConflictError is returned when a registration collides with the
// versioned lookup of another name.
type ConfigConflictError = registry.ConfigConflictError

// NameNotFoundError reports a lookup of a name that was never registered.
// It matches ErrNameNotFound with errors.Is.
type NameNotFoundError struct {
	Path  []string // namespace path of the resolver that was queried
	Query string   // the name as it was looked up
}

func (e *NameNotFoundError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("%s: %q", ErrNameNotFound, e.Query)
	}
	return fmt.Sprintf("%s: %q in namespace %q", ErrNameNotFound, e.Query, strings.Join(e.Path, label.Separator))
}

// Is reports whether target is ErrNameNotFound.
func (e *NameNotFoundError) Is(target error) bool {
	return target == ErrNameNotFound
}

// VersionTooLowError reports a request below the oldest registered version.
// It matches ErrVersionTooLow with errors.Is.
type VersionTooLowError struct {
	Name       string
	Requested  label.Version
	MinVersion label.Version
}

func (e *VersionTooLowError) Error() string {
	return fmt.Sprintf("method %q not implemented, try %q or above",
		label.FormatVersioned(e.Name, e.Requested), label.FormatVersioned(e.Name, e.MinVersion))
}

// Is reports whether target is ErrVersionTooLow.
func (e *VersionTooLowError) Is(target error) bool {
	return target == ErrVersionTooLow
}
