package graph

import (
	"slices"
	"strings"
	"testing"

	"github.com/albertocavalcante/go-apiver/label"
)

func tree(root *Node) *Tree { return &Tree{Root: root} }

func leaf(name string, versions ...label.Version) Leaf {
	return Leaf{Name: name, Versions: versions}
}

func TestDiffTrees(t *testing.T) {
	before := tree(&Node{
		Leaves: []Leaf{leaf("get", 2, 1), leaf("list", 2)},
		Namespaces: []*Node{{
			Name:   "api",
			Path:   []string{"api"},
			Leaves: []Leaf{leaf("test", 2, 1)},
		}},
	})
	after := tree(&Node{
		Leaves: []Leaf{leaf("get", 3, 2, 1), leaf("basic", 3, 2)},
		Namespaces: []*Node{{
			Name:   "api",
			Path:   []string{"api"},
			Leaves: []Leaf{leaf("test", 2)},
		}},
	})

	d := DiffTrees(before, after)

	if len(d.Added) != 1 || d.Added[0].Name != "basic" {
		t.Errorf("Added = %+v, want [basic]", d.Added)
	}
	if len(d.Removed) != 1 || d.Removed[0].Name != "list" {
		t.Errorf("Removed = %+v, want [list]", d.Removed)
	}
	if len(d.Changed) != 2 {
		t.Fatalf("Changed = %+v, want 2 entries", d.Changed)
	}

	apiTest := d.Changed[0]
	if apiTest.Name != "api.test" || !slices.Equal(apiTest.Removed, []label.Version{1}) ||
		apiTest.OldMin != 1 || apiTest.NewMin != 2 {
		t.Errorf("Changed[0] = %+v", apiTest)
	}
	get := d.Changed[1]
	if get.Name != "get" || !slices.Equal(get.Added, []label.Version{3}) || len(get.Removed) != 0 {
		t.Errorf("Changed[1] = %+v", get)
	}

	if got, want := d.Breaking(), []string{"api.test", "list"}; !slices.Equal(got, want) {
		t.Errorf("Breaking() = %v, want %v", got, want)
	}
	if d.IsEmpty() {
		t.Error("IsEmpty() = true")
	}
}

func TestDiffTrees_Identical(t *testing.T) {
	build := func() *Tree {
		return tree(&Node{Leaves: []Leaf{leaf("get", 2, 1)}})
	}
	if d := DiffTrees(build(), build()); !d.IsEmpty() {
		t.Errorf("DiffTrees() = %+v, want empty", d)
	}
}

func TestDiffTrees_DuplicateVersionsIgnored(t *testing.T) {
	before := tree(&Node{Leaves: []Leaf{leaf("get", 1)}})
	after := tree(&Node{Leaves: []Leaf{leaf("get", 1, 1)}})
	if d := DiffTrees(before, after); !d.IsEmpty() {
		t.Errorf("DiffTrees() = %+v, want empty", d)
	}
}

func TestDiffTrees_Nil(t *testing.T) {
	cur := tree(&Node{Leaves: []Leaf{leaf("get", 1)}})

	d := DiffTrees(nil, cur)
	if len(d.Added) != 1 || d.Added[0].Name != "get" {
		t.Errorf("DiffTrees(nil, cur).Added = %+v", d.Added)
	}
	d = DiffTrees(cur, nil)
	if len(d.Removed) != 1 {
		t.Errorf("DiffTrees(cur, nil).Removed = %+v", d.Removed)
	}
}

func TestTextDiff(t *testing.T) {
	before := tree(&Node{Leaves: []Leaf{leaf("get", 1)}})
	after := tree(&Node{Leaves: []Leaf{leaf("get", 2, 1)}})

	out := TextDiff(before, after)
	if !strings.Contains(out, "- └── get [v1]\n") {
		t.Errorf("TextDiff() missing removed line:\n%s", out)
	}
	if !strings.Contains(out, "+ └── get [v2, v1]\n") {
		t.Errorf("TextDiff() missing added line:\n%s", out)
	}
	if !strings.Contains(out, "  API Tree\n") {
		t.Errorf("TextDiff() missing unchanged header:\n%s", out)
	}

	if got := TextDiff(before, before); strings.Contains(got, "+ ") || strings.Contains(got, "- ") {
		t.Errorf("TextDiff(same) reported changes:\n%s", got)
	}
}
