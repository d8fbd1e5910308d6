package label

import (
	"cmp"
	"strconv"
)

// Version is a registered or requested API version.
// Versions are plain non-negative integers; higher is newer.
type Version uint64

// String returns the version as "v<N>".
func (v Version) String() string {
	return "v" + strconv.FormatUint(uint64(v), 10)
}

// Compare compares two versions.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Version) Compare(other Version) int {
	return cmp.Compare(v, other)
}

// Satisfies reports whether v can serve a request capped at maxVersion.
func (v Version) Satisfies(maxVersion Version) bool {
	return v <= maxVersion
}

// ParseVersion parses a decimal version string, optionally prefixed with "v".
func ParseVersion(s string) (Version, error) {
	digits := s
	if len(digits) > 0 && (digits[0] == 'v' || digits[0] == 'V') {
		digits = digits[1:]
	}
	if digits == "" {
		return 0, &VersionError{Input: s, Message: "version cannot be empty"}
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, &VersionError{Input: s, Message: "must be a non-negative integer"}
	}
	return Version(n), nil
}

// VersionError represents a version parsing error.
type VersionError struct {
	Input   string
	Message string
}

func (e *VersionError) Error() string {
	return "invalid version " + strconv.Quote(e.Input) + ": " + e.Message
}
