package bibtex

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dhamidi/texlyzer/bibtex/parser"
)

const database = `@string{acm = "Association for Computing Machinery"}
@article{foo:2019,
  author = {Foo Bar},
  title = "Baz {Q}ux",
  publisher = acm # { Press},
  month = jan,
  year = 2019
}
@misc{bar:2005}`

func TestEntries(t *testing.T) {
	root := parser.Parse(database)
	entries := Entries(root)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Type() != "article" || entries[0].Key().Literal != "foo:2019" {
		t.Errorf("first entry = %s %s", entries[0].Type(), entries[0].Key().Literal)
	}
	if entries[1].Type() != "misc" || entries[1].Key().Literal != "bar:2005" {
		t.Errorf("second entry = %s %s", entries[1].Type(), entries[1].Key().Literal)
	}
	if len(entries[1].Fields()) != 0 {
		t.Errorf("bar:2005 should have no fields")
	}
}

func TestFieldText(t *testing.T) {
	root := parser.Parse(database)
	strs := NewStrings(root)
	entry := Entries(root)[0]

	tests := []struct {
		field string
		want  string
	}{
		{"author", "Foo Bar"},
		{"TITLE", "Baz Qux"},
		{"publisher", "Association for Computing Machinery Press"},
		{"month", "January"},
		{"year", "2019"},
		{"missing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			if got := strs.FieldText(entry, tt.field); got != tt.want {
				t.Errorf("FieldText(%q) = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}

func TestStringsNames(t *testing.T) {
	strs := NewStrings(parser.Parse(database))
	names := strs.Names()
	if len(names) != 1 || names[0] != "acm" {
		t.Errorf("Names() = %v, want [acm]", names)
	}
}

func TestRecursiveStringsTerminate(t *testing.T) {
	tests := []struct {
		name string
		bib  string
		want string
	}{
		{"cycle", `@string{a = b}@string{b = a}@misc{x, note = a}`, "a"},
		{"self reference", `@string{a = a # a # a # a}@misc{x, note = a}`, "aaaa"},
		{"fan out", `@string{a = b # b # b # b}@string{b = a # a # a # a}@misc{x, note = a}`, "aaaaaaaaaaaaaaaa"},
		{"shared", `@string{w = "ab"}@string{v = w # w}@misc{x, note = v # " " # w}`, "abab ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := parser.Parse(tt.bib)
			strs := NewStrings(root)
			if got := strs.FieldText(Entries(root)[0], "note"); got != tt.want {
				t.Errorf("FieldText(note) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringExpansionIsBounded(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 26; i++ {
		fmt.Fprintf(&sb, "@string{s%d = s%d # s%d # s%d}\n", i, i+1, i+1, i+1)
	}
	sb.WriteString(`@string{s26 = "xyz"}@misc{x, note = s0}`)
	root := parser.Parse(sb.String())
	text := NewStrings(root).FieldText(Entries(root)[0], "note")
	if len(text) == 0 || len(text) > 2*maxTextLength {
		t.Errorf("len(FieldText(note)) = %d, want 1..%d", len(text), 2*maxTextLength)
	}
}
