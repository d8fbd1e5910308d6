// Package label provides strongly-typed, validated names for versioned API
// registrations.
//
// All types in this package are immutable and validate their values at
// construction time. Zero values are generally invalid - use the constructor
// functions (ParseQualifiedName, ParseQuery) to create valid instances.
//
// # Types
//
// The main types are:
//   - [QualifiedName]: A dotted registration name (e.g., "api.test.third")
//   - [Version]: A non-negative API version (e.g., v2)
//   - [Query]: A single-segment lookup, either "get_v2" or "api"
//
// # Validation Patterns
//
// Segments must match: [A-Za-z_][A-Za-z0-9_]*
// Versioned queries must match: ^(.+)_v(\d+)$
package label

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidName indicates a qualified name or segment failed validation.
var ErrInvalidName = errors.New("invalid name")

// Separator delimits namespace segments in a qualified name.
const Separator = "."

var segmentRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// QualifiedName is a validated dot-delimited registration name.
// Every segment except the last denotes a namespace; the last is the leaf.
type QualifiedName struct {
	segments []string
}

// ParseQualifiedName validates s and splits it into segments.
func ParseQualifiedName(s string) (QualifiedName, error) {
	if s == "" {
		return QualifiedName{}, fmt.Errorf("%w: qualified name cannot be empty", ErrInvalidName)
	}
	segments := strings.Split(s, Separator)
	for i, seg := range segments {
		if err := ValidateSegment(seg); err != nil {
			return QualifiedName{}, fmt.Errorf("%w: %q segment %d: %v", ErrInvalidName, s, i, err)
		}
	}
	return QualifiedName{segments: segments}, nil
}

// MustQualifiedName creates a QualifiedName or panics. Use only for constants/tests.
func MustQualifiedName(s string) QualifiedName {
	q, err := ParseQualifiedName(s)
	if err != nil {
		panic(err)
	}
	return q
}

// ValidateSegment checks that a single namespace or leaf segment is usable.
func ValidateSegment(seg string) error {
	if seg == "" {
		return errors.New("segment cannot be empty")
	}
	if !segmentRegex.MatchString(seg) {
		return fmt.Errorf("segment %q must match pattern [A-Za-z_][A-Za-z0-9_]*", seg)
	}
	return nil
}

// Namespace returns the namespace path, which is empty for a bare name.
func (q QualifiedName) Namespace() []string {
	if len(q.segments) <= 1 {
		return nil
	}
	out := make([]string, len(q.segments)-1)
	copy(out, q.segments[:len(q.segments)-1])
	return out
}

// Leaf returns the final segment.
func (q QualifiedName) Leaf() string {
	if len(q.segments) == 0 {
		return ""
	}
	return q.segments[len(q.segments)-1]
}

// Segments returns a copy of all segments.
func (q QualifiedName) Segments() []string {
	out := make([]string, len(q.segments))
	copy(out, q.segments)
	return out
}

// Depth returns the number of namespace segments before the leaf.
func (q QualifiedName) Depth() int {
	if len(q.segments) == 0 {
		return 0
	}
	return len(q.segments) - 1
}

// String returns the dotted form.
func (q QualifiedName) String() string {
	return strings.Join(q.segments, Separator)
}

// IsEmpty returns true if this is a zero-value QualifiedName.
func (q QualifiedName) IsEmpty() bool {
	return len(q.segments) == 0
}
