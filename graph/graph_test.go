package graph

import (
	"encoding/json"
	"errors"
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/albertocavalcante/go-apiver/label"
)

// fakeSource is an in-memory Source for tests.
type fakeSource struct {
	path   []string
	leaves map[string][]label.Version
	ns     map[string]*fakeSource
	broken bool
}

func newFake(path ...string) *fakeSource {
	return &fakeSource{path: path, leaves: map[string][]label.Version{}, ns: map[string]*fakeSource{}}
}

func (f *fakeSource) Path() []string { return f.path }

func (f *fakeSource) LeafNames() []string {
	names := make([]string, 0, len(f.leaves))
	for k := range f.leaves {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (f *fakeSource) NamespaceNames() []string {
	names := make([]string, 0, len(f.ns))
	for k := range f.ns {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (f *fakeSource) Versions(leaf string) ([]label.Version, error) {
	if f.broken {
		return nil, errors.New("broken")
	}
	return f.leaves[leaf], nil
}

func (f *fakeSource) Namespace(name string) (Source, error) {
	child, ok := f.ns[name]
	if !ok {
		return nil, errors.New("missing")
	}
	return child, nil
}

func (f *fakeSource) child(name string) *fakeSource {
	c := newFake(append(slices.Clone(f.path), name)...)
	f.ns[name] = c
	return c
}

// exampleSource mirrors a class with basic, api.test and api.test.third.
func exampleSource() *fakeSource {
	root := newFake()
	root.leaves["basic"] = []label.Version{3, 2}
	api := root.child("api")
	api.leaves["test"] = []label.Version{2, 1}
	test := api.child("test")
	test.leaves["third"] = []label.Version{50}
	return root
}

func mustBuild(t *testing.T, src Source) *Tree {
	t.Helper()
	tree, err := Build(src)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return tree
}

func TestBuild(t *testing.T) {
	tree := mustBuild(t, exampleSource())

	if tree.Root.Name != "" || len(tree.Root.Path) != 0 {
		t.Errorf("root = %q %v, want unnamed", tree.Root.Name, tree.Root.Path)
	}
	if len(tree.Root.Leaves) != 1 || tree.Root.Leaves[0].Name != "basic" {
		t.Fatalf("root leaves = %v", tree.Root.Leaves)
	}
	if len(tree.Root.Namespaces) != 1 || tree.Root.Namespaces[0].Name != "api" {
		t.Fatalf("root namespaces = %v", tree.Root.Namespaces)
	}
	test := tree.Find("api.test")
	if test == nil {
		t.Fatal("Find(api.test) = nil")
	}
	if test.QualifiedName() != "api.test" {
		t.Errorf("QualifiedName() = %q", test.QualifiedName())
	}
	if !slices.Equal(test.Leaves[0].Versions, []label.Version{50}) {
		t.Errorf("third versions = %v", test.Leaves[0].Versions)
	}
}

func TestBuild_PropagatesErrors(t *testing.T) {
	src := exampleSource()
	src.ns["api"].broken = true
	if _, err := Build(src); err == nil {
		t.Error("Build() should fail when a source fails")
	}
}

func TestFind(t *testing.T) {
	tree := mustBuild(t, exampleSource())
	if tree.Find("") != tree.Root {
		t.Error("Find(\"\") should return the root")
	}
	if tree.Find("api.missing") != nil {
		t.Error("Find(api.missing) should be nil")
	}
	if tree.Find("basic") != nil {
		t.Error("Find(basic) should be nil: basic is a leaf")
	}
}

func TestStats(t *testing.T) {
	stats := mustBuild(t, exampleSource()).Stats()
	want := Stats{Namespaces: 2, Leaves: 3, Registrations: 5, MaxDepth: 2}
	if stats != want {
		t.Errorf("Stats() = %+v, want %+v", stats, want)
	}
}

func TestExplain(t *testing.T) {
	tree := mustBuild(t, exampleSource())

	tests := []struct {
		path         string
		wantSelected *label.Version
		wantMin      label.Version
		wantReasons  []string
	}{
		{"api.test_v5", ptr(2), 1, []string{"", "older than selected v2"}},
		{"api.test_v1", ptr(1), 1, []string{"exceeds requested v1", ""}},
		{"api.test.third_v10", nil, 50, []string{"exceeds requested v10"}},
		{"basic_v100", ptr(3), 2, []string{"", "older than selected v3"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			exp, err := tree.Explain(tt.path)
			if err != nil {
				t.Fatalf("Explain() error = %v", err)
			}
			if (exp.Selected == nil) != (tt.wantSelected == nil) ||
				(exp.Selected != nil && *exp.Selected != *tt.wantSelected) {
				t.Errorf("Selected = %v, want %v", exp.Selected, tt.wantSelected)
			}
			if exp.MinVersion != tt.wantMin {
				t.Errorf("MinVersion = %d, want %d", exp.MinVersion, tt.wantMin)
			}
			var reasons []string
			for _, c := range exp.Candidates {
				reasons = append(reasons, c.RejectionReason)
			}
			if !slices.Equal(reasons, tt.wantReasons) {
				t.Errorf("reasons = %q, want %q", reasons, tt.wantReasons)
			}
		})
	}
}

func TestExplain_Errors(t *testing.T) {
	tree := mustBuild(t, exampleSource())
	for _, path := range []string{"api", "api.test", "missing.get_v1", "api.missing_v1", "api..x_v1"} {
		if _, err := tree.Explain(path); err == nil {
			t.Errorf("Explain(%q) should fail", path)
		}
	}
}

func TestToText(t *testing.T) {
	out := mustBuild(t, exampleSource()).ToText()
	for _, want := range []string{
		"Registrations: 5",
		"Max depth: 2",
		"├── basic [v3, v2]",
		"└── :api",
		"    ├── test [v2, v1]",
		"    └── :test",
		"        └── third [v50]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ToText() missing %q:\n%s", want, out)
		}
	}
}

func TestExplanationToText(t *testing.T) {
	tree := mustBuild(t, exampleSource())

	exp, _ := tree.Explain("api.test_v5")
	out := exp.ToText()
	if !strings.Contains(out, "Explanation for: api.test_v5") || !strings.Contains(out, "Selected version: v2") {
		t.Errorf("unexpected explanation:\n%s", out)
	}

	exp, _ = tree.Explain("api.test.third_v10")
	out = exp.ToText()
	if !strings.Contains(out, "try third_v50 or above") {
		t.Errorf("unexpected explanation:\n%s", out)
	}
}

func TestToJSON(t *testing.T) {
	data, err := mustBuild(t, exampleSource()).ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	var decoded struct {
		Stats Stats `json:"stats"`
		Root  struct {
			Leaves     []Leaf `json:"leaves"`
			Namespaces []struct {
				Name string `json:"name"`
				Path string `json:"path"`
			} `json:"namespaces"`
		} `json:"root"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded.Stats.Registrations != 5 {
		t.Errorf("stats.registrations = %d", decoded.Stats.Registrations)
	}
	if decoded.Root.Namespaces[0].Path != "api" {
		t.Errorf("namespace path = %q", decoded.Root.Namespaces[0].Path)
	}
	if decoded.Root.Leaves[0].Name != "basic" {
		t.Errorf("leaf = %+v", decoded.Root.Leaves[0])
	}
}

func TestToDOT(t *testing.T) {
	dot := mustBuild(t, exampleSource()).ToDOT()
	for _, want := range []string{
		"digraph apis {",
		`"<root>" -> "basic()";`,
		`"<root>" -> "api";`,
		`"api" -> "api.test()";`,
		`"api" -> "api.test";`,
		`"api.test" -> "api.test.third()";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q:\n%s", want, dot)
		}
	}
}

func ptr(v label.Version) *label.Version { return &v }
