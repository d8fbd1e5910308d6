package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/albertocavalcante/go-apiver/label"
)

const separatorWidth = 60 // Width of separator lines in text output

// jsonNode is the JSON layout of a Node.
type jsonNode struct {
	Name       string     `json:"name,omitempty"`
	Path       string     `json:"path,omitempty"`
	Leaves     []Leaf     `json:"leaves,omitempty"`
	Namespaces []jsonNode `json:"namespaces,omitempty"`
}

// ToJSON outputs the tree as indented JSON.
func (t *Tree) ToJSON() ([]byte, error) {
	return json.MarshalIndent(struct {
		Stats Stats    `json:"stats"`
		Root  jsonNode `json:"root"`
	}{t.Stats(), toJSONNode(t.Root)}, "", "  ")
}

func toJSONNode(n *Node) jsonNode {
	out := jsonNode{Name: n.Name, Path: n.QualifiedName(), Leaves: n.Leaves}
	for _, child := range n.Namespaces {
		out.Namespaces = append(out.Namespaces, toJSONNode(child))
	}
	return out
}

// ToDOT outputs the tree in Graphviz DOT format.
// Namespaces are boxes; leaves are ellipses labeled with their versions.
func (t *Tree) ToDOT() string {
	var buf bytes.Buffer

	buf.WriteString("digraph apis {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box];\n\n")
	buf.WriteString("  \"<root>\" [style=bold];\n")
	writeDOT(&buf, t.Root, "<root>")
	buf.WriteString("}\n")
	return buf.String()
}

func writeDOT(buf *bytes.Buffer, n *Node, id string) {
	for _, l := range n.Leaves {
		leafID := qualify(n.Path, l.Name) + "()"
		fmt.Fprintf(buf, "  %q [shape=ellipse, label=%q];\n", leafID, l.Name+" ("+versionList(l.Versions)+")")
		fmt.Fprintf(buf, "  %q -> %q;\n", id, leafID)
	}
	for _, child := range n.Namespaces {
		childID := child.QualifiedName()
		fmt.Fprintf(buf, "  %q [label=%q];\n", childID, child.Name)
		fmt.Fprintf(buf, "  %q -> %q;\n", id, childID)
		writeDOT(buf, child, childID)
	}
}

// ToText outputs a human-readable tree.
func (t *Tree) ToText() string {
	var buf bytes.Buffer

	stats := t.Stats()
	buf.WriteString("API Tree\n")
	buf.WriteString(strings.Repeat("=", separatorWidth) + "\n\n")
	fmt.Fprintf(&buf, "Namespaces: %d\n", stats.Namespaces)
	fmt.Fprintf(&buf, "Leaves: %d\n", stats.Leaves)
	fmt.Fprintf(&buf, "Registrations: %d\n", stats.Registrations)
	fmt.Fprintf(&buf, "Max depth: %d\n\n", stats.MaxDepth)

	buf.WriteString("<root>\n")
	printChildren(&buf, t.Root, "")
	return buf.String()
}

func printChildren(buf *bytes.Buffer, n *Node, prefix string) {
	total := len(n.Leaves) + len(n.Namespaces)
	i := 0
	next := func() (connector, childPrefix string) {
		i++
		if i == total {
			return "└── ", prefix + "    "
		}
		return "├── ", prefix + "│   "
	}

	for _, l := range n.Leaves {
		connector, _ := next()
		fmt.Fprintf(buf, "%s%s%s [%s]\n", prefix, connector, l.Name, versionList(l.Versions))
	}
	for _, child := range n.Namespaces {
		connector, childPrefix := next()
		fmt.Fprintf(buf, "%s%s:%s\n", prefix, connector, child.Name)
		printChildren(buf, child, childPrefix)
	}
}

// ToText outputs a human-readable explanation.
func (e *Explanation) ToText() string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Explanation for: %s\n", qualify(e.Path, label.FormatVersioned(e.Leaf, e.Requested)))
	buf.WriteString(strings.Repeat("=", separatorWidth) + "\n\n")

	if e.Selected != nil {
		fmt.Fprintf(&buf, "Selected version: %s\n", *e.Selected)
	} else {
		fmt.Fprintf(&buf, "No version selected; try %s or above\n", label.FormatVersioned(e.Leaf, e.MinVersion))
	}

	buf.WriteString("\nCandidates considered:\n")
	for _, c := range e.Candidates {
		status := "  "
		if c.Selected {
			status = "✓ "
		}
		fmt.Fprintf(&buf, "  %s%s\n", status, c.Version)
		if c.RejectionReason != "" {
			fmt.Fprintf(&buf, "      Reason not selected: %s\n", c.RejectionReason)
		}
	}
	return buf.String()
}

func versionList(versions []label.Version) string {
	parts := make([]string, len(versions))
	for i, v := range versions {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}

func qualify(path []string, name string) string {
	if len(path) == 0 {
		return name
	}
	return strings.Join(path, label.Separator) + label.Separator + name
}
