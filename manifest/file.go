package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DetectFormat picks a decoder from a file name.
// ".yaml" and ".yml" are YAML; ".bzl", ".star", ".bazel" and "APIS" are Starlark.
func DetectFormat(path string) (Format, error) {
	base := filepath.Base(path)
	switch strings.ToLower(filepath.Ext(base)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".bzl", ".star", ".bazel":
		return FormatStarlark, nil
	}
	if base == "APIS" {
		return FormatStarlark, nil
	}
	return 0, fmt.Errorf("cannot detect manifest format of %q", path)
}

// Parse decodes content in the given format.
func Parse(format Format, filename string, content []byte) ([]Entry, error) {
	switch format {
	case FormatStarlark:
		return ParseStarlark(filename, content)
	case FormatYAML:
		return ParseYAML(filename, content)
	default:
		return nil, fmt.Errorf("unsupported manifest format %s", format)
	}
}

// ParseFile reads and decodes a manifest from disk.
func ParseFile(path string) ([]Entry, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(format, filepath.Base(path), data)
}
