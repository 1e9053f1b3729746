package forms

import (
	"reflect"
	"testing"
)

func TestSetField_TopLevel(t *testing.T) {
	draft := map[string]any{"title": "old"}
	SetField(draft, "title", "new")
	if draft["title"] != "new" {
		t.Errorf("title = %v", draft["title"])
	}
}

func TestSetField_NestedPath(t *testing.T) {
	draft := map[string]any{}
	SetField(draft, "socialLinks.github", "https://github.com/me")
	SetField(draft, "socialLinks.linkedin", "https://linkedin.com/in/me")

	links, ok := draft["socialLinks"].(map[string]any)
	if !ok {
		t.Fatalf("socialLinks = %T", draft["socialLinks"])
	}
	if links["github"] != "https://github.com/me" {
		t.Errorf("github = %v", links["github"])
	}
	if links["linkedin"] != "https://linkedin.com/in/me" {
		t.Errorf("linkedin = %v", links["linkedin"])
	}
}

func TestSetField_ReplacesNonObjectIntermediate(t *testing.T) {
	draft := map[string]any{"socialLinks": "oops"}
	SetField(draft, "socialLinks.github", "x")
	links, ok := draft["socialLinks"].(map[string]any)
	if !ok || links["github"] != "x" {
		t.Errorf("socialLinks = %v", draft["socialLinks"])
	}
}

func TestAppendUnique(t *testing.T) {
	tags := []string{"go", "web"}

	// Duplicate leaves the list unchanged.
	got := AppendUnique(tags, "go")
	if !reflect.DeepEqual(got, tags) {
		t.Errorf("duplicate add changed list: %v", got)
	}

	// Empty and whitespace-only are ignored.
	if got := AppendUnique(tags, "  "); !reflect.DeepEqual(got, tags) {
		t.Errorf("blank add changed list: %v", got)
	}

	// New item appended exactly once, original untouched.
	got = AppendUnique(tags, "sqlite")
	want := []string{"go", "web", "sqlite"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if len(tags) != 2 {
		t.Error("input slice was mutated")
	}

	// Trimmed before comparison and insertion.
	got = AppendUnique(tags, " web ")
	if !reflect.DeepEqual(got, tags) {
		t.Errorf("trimmed duplicate changed list: %v", got)
	}
}

func TestRemoveAt(t *testing.T) {
	list := []string{"a", "b", "c", "d"}

	got := RemoveAt(list, 1)
	want := []string{"a", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if len(list) != 4 {
		t.Error("input slice was mutated")
	}

	// Every valid index preserves relative order of the rest.
	for i := range list {
		got := RemoveAt(list, i)
		if len(got) != len(list)-1 {
			t.Fatalf("RemoveAt(%d): len = %d", i, len(got))
		}
		k := 0
		for j, v := range list {
			if j == i {
				continue
			}
			if got[k] != v {
				t.Errorf("RemoveAt(%d): order broken at %d", i, k)
			}
			k++
		}
	}

	// Out-of-range indexes are a no-op.
	if got := RemoveAt(list, -1); !reflect.DeepEqual(got, list) {
		t.Errorf("negative index changed list: %v", got)
	}
	if got := RemoveAt(list, 4); !reflect.DeepEqual(got, list) {
		t.Errorf("past-end index changed list: %v", got)
	}
}

func TestClampLevel(t *testing.T) {
	cases := []struct{ in, want int }{
		{-5, 0}, {0, 0}, {50, 50}, {100, 100}, {150, 100},
	}
	for _, c := range cases {
		if got := ClampLevel(c.in); got != c.want {
			t.Errorf("ClampLevel(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"75", 75},
		{" 30 ", 30},
		{"120", 100},
		{"-3", 0},
		{"abc", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := ParseLevel(c.in); got != c.want {
			t.Errorf("ParseLevel(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseList(t *testing.T) {
	got := ParseList("Go\nSQL, Go\n  Docker \n\n")
	want := []string{"Go", "SQL", "Docker"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Hello World", "hello-world"},
		{"Go 1.25 — What's New?", "go-1-25-what-s-new"},
		{"  spaced   out  ", "spaced-out"},
		{"UPPER", "upper"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
