package label

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidQuery indicates a lookup string matches neither query shape.
var ErrInvalidQuery = errors.New("invalid query")

// versionedQueryRegex matches "name_v<digits>". The name part is greedy, so
// "a_v1_v2" is the leaf "a_v1" at version 2.
var versionedQueryRegex = regexp.MustCompile(`^(.+)_v(\d+)$`)

// Query is a single-segment lookup against a resolver.
//
// A versioned query ("get_v2") selects a leaf at a maximum version; a bare
// query ("api") selects a namespace. Multi-segment paths are not queries:
// they are walked one segment at a time.
type Query struct {
	Name       string
	MaxVersion Version
	Versioned  bool
}

// ParseQuery classifies s as a versioned or namespace query.
func ParseQuery(s string) (Query, error) {
	if s == "" {
		return Query{}, fmt.Errorf("%w: empty query", ErrInvalidQuery)
	}
	if strings.Contains(s, Separator) {
		return Query{}, fmt.Errorf("%w: %q contains %q", ErrInvalidQuery, s, Separator)
	}

	match := versionedQueryRegex.FindStringSubmatch(s)
	if match == nil {
		return Query{Name: s}, nil
	}

	n, err := strconv.ParseUint(match[2], 10, 64)
	if err != nil {
		return Query{}, fmt.Errorf("%w: %q version out of range", ErrInvalidQuery, s)
	}
	return Query{Name: match[1], MaxVersion: Version(n), Versioned: true}, nil
}

// String renders the query back into its lookup form.
func (q Query) String() string {
	if q.Versioned {
		return FormatVersioned(q.Name, q.MaxVersion)
	}
	return q.Name
}

// FormatVersioned renders a leaf name and version as "name_v<N>".
func FormatVersioned(name string, v Version) string {
	return name + "_v" + strconv.FormatUint(uint64(v), 10)
}

// IsVersionedShape reports whether seg would itself parse as a versioned
// query. A namespace named seg can never be reached, because a lookup of seg
// is routed to the leaf it shadows. A leaf named seg is still reachable by
// appending a version suffix.
func IsVersionedShape(seg string) bool {
	return versionedQueryRegex.MatchString(seg)
}
