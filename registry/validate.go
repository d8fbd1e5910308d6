package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/albertocavalcante/go-apiver/label"
)

// Sentinel errors for build-phase failures.
var (
	// ErrConfigConflict indicates a registration whose name can never be
	// resolved unambiguously.
	ErrConfigConflict = errors.New("config conflict")

	// ErrFinalized indicates a registration attempted after Finalize.
	ErrFinalized = errors.New("registry is finalized")

	// ErrInvalidName indicates a malformed qualified name.
	ErrInvalidName = label.ErrInvalidName
)

// ConfigConflictError reports a namespace segment that collides with the
// versioned lookup of another name. It matches ErrConfigConflict with errors.Is.
type ConfigConflictError struct {
	Name    string        // qualified name being registered
	Segment string        // offending segment
	Kind    SlotKind      // role of the segment in Name
	Shadows string        // leaf name the segment's lookup resolves to
	Version label.Version // version the segment's lookup requests
}

func (e *ConfigConflictError) Error() string {
	return fmt.Sprintf("%s: %q: %s segment %q collides with versioned lookup of %q at %s",
		ErrConfigConflict, e.Name, e.Kind, e.Segment, e.Shadows, e.Version)
}

// Is reports whether target is ErrConfigConflict.
func (e *ConfigConflictError) Is(target error) bool {
	return target == ErrConfigConflict
}

// checkConflicts rejects names with a namespace segment that the query
// grammar would route elsewhere. The leaf is exempt: "get_v2" is still
// reachable as "get_v2_v1" because the name part of a query is greedy.
func checkConflicts(qn label.QualifiedName) error {
	for _, seg := range qn.Namespace() {
		if !label.IsVersionedShape(seg) {
			continue
		}
		q, err := label.ParseQuery(seg)
		if err != nil {
			// Digits overflow uint64; the segment is still unreachable.
			q = label.Query{Name: strings.TrimSuffix(strings.TrimRight(seg, "0123456789"), "_v")}
		}
		return &ConfigConflictError{
			Name:    qn.String(),
			Segment: seg,
			Kind:    NamespaceSlot,
			Shadows: q.Name,
			Version: q.MaxVersion,
		}
	}
	return nil
}
