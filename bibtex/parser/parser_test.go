package parser

import (
	"testing"
)

var samples = []string{
	"",
	"@",
	"junk before @article{foo:2019, author = {Foo Bar}, title = \"Baz {Q}ux\", year = 2019}",
	"@string{me = \"Foo\"} @misc(x, author = me # \" and \" # {Bar})",
	"@preamble{ \"\\newcommand{\\noop}[1]{}\" }",
	"@article{unterminated, title = {oops",
	"@book{k, = broken } }",
	"@comment{anything} @online{b,}",
	"@article{a, title = {x}}\r\n@article{b, title = {y}}\n",
}

func TestTokenizeCoversInput(t *testing.T) {
	for _, input := range samples {
		got := ""
		for _, tok := range Tokenize(input) {
			got += tok.Literal
		}
		if got != input {
			t.Errorf("tokens of %q concatenate to %q", input, got)
		}
	}
}

func TestParseLossless(t *testing.T) {
	for _, input := range samples {
		t.Run(input, func(t *testing.T) {
			root := Parse(input)
			if got := root.Text(); got != input {
				t.Errorf("Text() = %q, want %q", got, input)
			}
		})
	}
}

func TestParseEntry(t *testing.T) {
	root := Parse(`@article{foo:2019, author = {Foo Bar}, title = "Baz {Q}ux", year = 2019}`)
	entry := root.FirstChildOfKind(KindEntry)
	if entry == nil {
		t.Fatalf("no entry in\n%s", root)
	}
	if got := entry.FirstTokenOfKind(TokenType).TypeName(); got != "article" {
		t.Errorf("type = %q, want article", got)
	}
	if got := entry.FirstTokenOfKind(TokenWord).Literal; got != "foo:2019" {
		t.Errorf("key = %q, want foo:2019", got)
	}

	fields := entry.ChildrenOfKind(KindField)
	if len(fields) != 3 {
		t.Fatalf("got %d fields, want 3\n%s", len(fields), root)
	}
	wantValues := []NodeKind{KindCurlyGroup, KindQuoteGroup, KindLiteral}
	for i, field := range fields {
		var value *Node
		for _, child := range field.Children {
			if child.Kind.IsValue() {
				value = child
			}
		}
		if value == nil || value.Kind != wantValues[i] {
			t.Errorf("field %d value = %v, want %s", i, value, wantValues[i])
		}
	}
	if entry.FirstTokenOfKind(TokenRCurly) == nil {
		t.Errorf("entry is not closed")
	}
}

func TestParseJoin(t *testing.T) {
	root := Parse(`@misc(x, author = me # " and " # {Bar})`)
	entry := root.FirstChildOfKind(KindEntry)
	if entry == nil {
		t.Fatalf("no entry")
	}
	field := entry.FirstChildOfKind(KindField)
	join := field.FirstChildOfKind(KindJoin)
	if join == nil {
		t.Fatalf("no join in\n%s", root)
	}
	if join.FirstChildOfKind(KindLiteral) == nil || join.FirstChildOfKind(KindJoin) == nil {
		t.Errorf("join should nest to the right\n%s", join)
	}
	if entry.FirstTokenOfKind(TokenRParen) == nil {
		t.Errorf("entry is not closed by )")
	}
}

func TestParseRecovery(t *testing.T) {
	root := Parse("@book{k, = broken } }\n@article{b}")
	entries := root.ChildrenOfKind(KindEntry)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2\n%s", len(entries), root)
	}
	if entries[0].FirstChildOfKind(KindError) == nil {
		t.Errorf("expected an error node for the stray =")
	}
	if root.FirstChildOfKind(KindJunk) == nil {
		t.Errorf("expected junk for the trailing brace")
	}
}

func TestParseStringAndPreamble(t *testing.T) {
	root := Parse(`@string{me = "Foo"}@preamble{"x"}`)
	if root.FirstChildOfKind(KindStringDef) == nil {
		t.Errorf("no string definition")
	}
	if root.FirstChildOfKind(KindPreamble) == nil {
		t.Errorf("no preamble")
	}
}

func TestLeafAt(t *testing.T) {
	root := Parse(`@art`)
	left, right := root.LeafAt(4)
	if left == nil || left.Token.Literal != "@art" || right != nil {
		t.Errorf("LeafAt(4) = %v, %v", left, right)
	}
}
