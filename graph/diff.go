package graph

import (
	"cmp"
	"slices"
	"strings"

	"github.com/albertocavalcante/go-apiver/label"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// LeafChange is a leaf present in only one of two trees.
type LeafChange struct {
	Name     string          `json:"name"`
	Versions []label.Version `json:"versions"`
}

// VersionChange is a leaf present in both trees whose registered versions
// differ.
type VersionChange struct {
	Name    string          `json:"name"`
	Added   []label.Version `json:"added,omitempty"`
	Removed []label.Version `json:"removed,omitempty"`

	// OldMin and NewMin are the oldest version callers could request
	// before and after the change.
	OldMin label.Version `json:"old_min"`
	NewMin label.Version `json:"new_min"`
}

// Diff describes how the registrations of two trees differ.
//
// Example usage:
//
//	before, _ := oldResolver.Tree()
//	after, _ := newResolver.Tree()
//	d := graph.DiffTrees(before, after)
//	for _, name := range d.Breaking() {
//	    fmt.Println("callers of", name, "may fail")
//	}
type Diff struct {
	Added   []LeafChange    `json:"added,omitempty"`
	Removed []LeafChange    `json:"removed,omitempty"`
	Changed []VersionChange `json:"changed,omitempty"`
}

// IsEmpty returns true if the trees register the same versions.
func (d *Diff) IsEmpty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// Breaking returns the qualified leaf names for which a query that used to
// succeed can now fail: removed leaves and leaves whose oldest version rose.
func (d *Diff) Breaking() []string {
	var names []string
	for _, r := range d.Removed {
		names = append(names, r.Name)
	}
	for _, c := range d.Changed {
		if c.NewMin > c.OldMin {
			names = append(names, c.Name)
		}
	}
	slices.Sort(names)
	return names
}

// DiffTrees compares the registrations of two trees.
// A nil tree is treated as empty. Results are sorted by qualified name.
func DiffTrees(before, after *Tree) *Diff {
	oldLeaves := flatten(before)
	newLeaves := flatten(after)
	d := &Diff{}

	for name, newVersions := range newLeaves {
		oldVersions, existed := oldLeaves[name]
		if !existed {
			d.Added = append(d.Added, LeafChange{Name: name, Versions: newVersions})
			continue
		}
		added := missingFrom(newVersions, oldVersions)
		removed := missingFrom(oldVersions, newVersions)
		if len(added) == 0 && len(removed) == 0 {
			continue
		}
		d.Changed = append(d.Changed, VersionChange{
			Name:    name,
			Added:   added,
			Removed: removed,
			OldMin:  oldVersions[len(oldVersions)-1],
			NewMin:  newVersions[len(newVersions)-1],
		})
	}
	for name, oldVersions := range oldLeaves {
		if _, ok := newLeaves[name]; !ok {
			d.Removed = append(d.Removed, LeafChange{Name: name, Versions: oldVersions})
		}
	}

	byName := func(a, b LeafChange) int { return cmp.Compare(a.Name, b.Name) }
	slices.SortFunc(d.Added, byName)
	slices.SortFunc(d.Removed, byName)
	slices.SortFunc(d.Changed, func(a, b VersionChange) int { return cmp.Compare(a.Name, b.Name) })
	return d
}

// flatten maps every qualified leaf name to its distinct versions, newest
// first.
func flatten(t *Tree) map[string][]label.Version {
	out := make(map[string][]label.Version)
	if t == nil || t.Root == nil {
		return out
	}
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, l := range n.Leaves {
			versions := slices.Clone(l.Versions)
			slices.SortFunc(versions, func(a, b label.Version) int { return b.Compare(a) })
			out[qualify(n.Path, l.Name)] = slices.Compact(versions)
		}
		for _, child := range n.Namespaces {
			walk(child)
		}
	}
	walk(t.Root)
	return out
}

// missingFrom returns the versions in a that are not in b, preserving order.
func missingFrom(a, b []label.Version) []label.Version {
	var out []label.Version
	for _, v := range a {
		if !slices.Contains(b, v) {
			out = append(out, v)
		}
	}
	return out
}

// TextDiff renders a line diff of the text form of two trees. Unchanged
// lines are prefixed with two spaces, removed lines with "- " and added
// lines with "+ ".
func TextDiff(before, after *Tree) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(treeText(before), treeText(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var buf strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
		}
	}
	return buf.String()
}

func treeText(t *Tree) string {
	if t == nil || t.Root == nil {
		return ""
	}
	return t.ToText()
}
