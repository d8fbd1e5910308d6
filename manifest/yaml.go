package manifest

import (
	"fmt"

	"github.com/albertocavalcante/go-apiver/label"
	"gopkg.in/yaml.v3"
)

// yamlManifest is the on-disk YAML layout.
type yamlManifest struct {
	APIs []yamlEntry `yaml:"apis"`
}

type yamlEntry struct {
	Name    string   `yaml:"name"`
	Names   []string `yaml:"names"`
	Version *uint64  `yaml:"version"`
	Impl    string   `yaml:"impl"`

	line int
}

// UnmarshalYAML records the entry's line for error messages.
func (e *yamlEntry) UnmarshalYAML(node *yaml.Node) error {
	type plain yamlEntry
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*e = yamlEntry(p)
	e.line = node.Line
	return nil
}

// ParseYAML decodes an "apis" list from YAML source.
// filename is used only for error messages.
func ParseYAML(filename string, content []byte) ([]Entry, error) {
	var m yamlManifest
	if err := yaml.Unmarshal(content, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	entries := make([]Entry, 0, len(m.APIs))
	for _, raw := range m.APIs {
		source := fmt.Sprintf("%s:%d", filename, raw.line)
		if raw.Version == nil {
			return nil, &EntryError{Source: source, Message: "version is required"}
		}

		var names []string
		if raw.Name != "" {
			names = append(names, raw.Name)
		}
		names = append(names, raw.Names...)

		entry := Entry{
			Names:   names,
			Version: label.Version(*raw.Version),
			Impl:    raw.Impl,
			Source:  source,
		}
		if err := checkEntry(entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
