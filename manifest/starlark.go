package manifest

import (
	"fmt"

	"github.com/albertocavalcante/go-apiver/internal/buildutil"
	"github.com/albertocavalcante/go-apiver/label"
	"github.com/bazelbuild/buildtools/build"
)

// apiFunc is the Starlark function that declares a registration.
const apiFunc = "api"

// ParseStarlark decodes api(...) calls from Starlark source.
// filename is used only for error messages.
func ParseStarlark(filename string, content []byte) ([]Entry, error) {
	f, err := build.ParseDefault(filename, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	var entries []Entry
	for _, stmt := range f.Stmt {
		call, ok := stmt.(*build.CallExpr)
		if !ok || buildutil.FuncName(call) != apiFunc {
			continue
		}
		entry, err := entryFromCall(filename, call)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func entryFromCall(filename string, call *build.CallExpr) (Entry, error) {
	source := fmt.Sprintf("%s:%d", filename, buildutil.Line(call))

	var names []string
	if name := buildutil.String(call, "name"); name != "" {
		names = append(names, name)
	} else if positional := buildutil.PositionalStrings(call, 0); len(positional) > 0 {
		names = append(names, positional[0])
	}
	names = append(names, buildutil.StringList(call, "names")...)

	if !buildutil.Has(call, "version") {
		return Entry{}, &EntryError{Source: source, Message: "version is required"}
	}
	version, _, err := buildutil.Uint(call, "version")
	if err != nil {
		return Entry{}, &EntryError{Source: source, Message: err.Error()}
	}

	entry := Entry{
		Names:   names,
		Version: label.Version(version),
		Impl:    buildutil.String(call, "impl"),
		Source:  source,
	}
	if err := checkEntry(entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}
