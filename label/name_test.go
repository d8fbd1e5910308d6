package label

import (
	"errors"
	"slices"
	"testing"
)

func TestParseQualifiedName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantNS    []string
		wantLeaf  string
		wantDepth int
		wantErr   bool
	}{
		{"bare name", "get", nil, "get", 0, false},
		{"one namespace", "api.test", []string{"api"}, "test", 1, false},
		{"nested", "api.test.third", []string{"api", "test"}, "third", 2, false},
		{"deep", "one.two.three.four.stop", []string{"one", "two", "three", "four"}, "stop", 4, false},
		{"underscores", "_private.get_json", []string{"_private"}, "get_json", 1, false},
		{"digits after first", "v2api.list2", []string{"v2api"}, "list2", 1, false},
		{"empty", "", nil, "", 0, true},
		{"leading dot", ".get", nil, "", 0, true},
		{"trailing dot", "get.", nil, "", 0, true},
		{"double dot", "api..get", nil, "", 0, true},
		{"starts with digit", "2get", nil, "", 0, true},
		{"contains dash", "get-json", nil, "", 0, true},
		{"contains colon", ":api.get", nil, "", 0, true},
		{"contains space", "api. get", nil, "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := ParseQualifiedName(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseQualifiedName(%q) expected error, got nil", tt.input)
				}
				if !errors.Is(err, ErrInvalidName) {
					t.Errorf("ParseQualifiedName(%q) error = %v, want ErrInvalidName", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseQualifiedName(%q) unexpected error: %v", tt.input, err)
			}
			if !slices.Equal(q.Namespace(), tt.wantNS) {
				t.Errorf("Namespace() = %v, want %v", q.Namespace(), tt.wantNS)
			}
			if q.Leaf() != tt.wantLeaf {
				t.Errorf("Leaf() = %q, want %q", q.Leaf(), tt.wantLeaf)
			}
			if q.Depth() != tt.wantDepth {
				t.Errorf("Depth() = %d, want %d", q.Depth(), tt.wantDepth)
			}
			if q.String() != tt.input {
				t.Errorf("String() = %q, want %q", q.String(), tt.input)
			}
		})
	}
}

func TestQualifiedNameCopies(t *testing.T) {
	q := MustQualifiedName("a.b.c")
	ns := q.Namespace()
	ns[0] = "mutated"
	segs := q.Segments()
	segs[1] = "mutated"
	if q.String() != "a.b.c" {
		t.Errorf("mutating returned slices changed the name: %q", q.String())
	}
}

func TestQualifiedNameZeroValue(t *testing.T) {
	var q QualifiedName
	if !q.IsEmpty() {
		t.Error("zero value should be empty")
	}
	if q.Leaf() != "" || q.Depth() != 0 || q.Namespace() != nil {
		t.Error("zero value accessors should return empty results")
	}
}

func TestMustQualifiedName(t *testing.T) {
	if MustQualifiedName("api.get").Leaf() != "get" {
		t.Error("MustQualifiedName('api.get').Leaf() should be 'get'")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustQualifiedName('a..b') should have panicked")
		}
	}()
	MustQualifiedName("a..b")
}
