package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dhamidi/texlyzer/codebase"
)

func TestLineEncoder(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		language codebase.Language
		text     string
		want     string
	}{
		{
			name:     "latex",
			path:     "/doc/main.tex",
			language: codebase.LanguageTeX,
			text:     "\\usepackage{amsmath}\n\\label{sec:a}\n\\foo",
			want:     "package\tamsmath\t1:13\ncommand\tfoo\t3:1\nlabel\tsec:a\t2:8\n",
		},
		{
			name:     "bibtex",
			path:     "/doc/refs.bib",
			language: codebase.LanguageBib,
			text:     "@string{j = \"J\"}\n@article{k1, title={T}}",
			want:     "string\tj\t1:1\nentry\tk1\t2:10\tarticle\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := codebase.NewDocument(codebase.PathToURI(tt.path), tt.language, tt.text, nil)
			var buf bytes.Buffer
			if err := NewLineEncoder(&buf).Encode(doc); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Encode() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestJSONEncoder(t *testing.T) {
	doc := codebase.NewDocument(codebase.PathToURI("/doc/main.tex"), codebase.LanguageTeX, "a\n\\b", nil)
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(doc); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var got jsonDocument
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Language != "latex" {
		t.Errorf("language = %q, want latex", got.Language)
	}
	if got.Tree == nil || got.Tree.Kind != "Root" {
		t.Fatalf("tree = %+v, want a Root node", got.Tree)
	}
	want := jsonSpan{Start: position{1, 1}, End: position{2, 3}}
	if got.Tree.Span != want {
		t.Errorf("root span = %+v, want %+v", got.Tree.Span, want)
	}

	var tokens []string
	var walk func(n *jsonNode)
	walk = func(n *jsonNode) {
		if n.Token != "" {
			tokens = append(tokens, n.Token)
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(got.Tree)
	if joined := strings.Join(tokens, ""); joined != "a\n\\b" {
		t.Errorf("tokens = %q, want the source text", joined)
	}
}

func TestTreeEncoder(t *testing.T) {
	doc := codebase.NewDocument(codebase.PathToURI("/doc/refs.bib"), codebase.LanguageBib, "@misc{x,}", nil)
	var buf bytes.Buffer
	if err := NewTreeEncoder(&buf, false).Encode(doc); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Root\n  Entry\n") {
		t.Errorf("Encode() = %q", buf.String())
	}
}

func TestNewEncoder(t *testing.T) {
	for _, name := range Names {
		if _, err := NewEncoder(name, &bytes.Buffer{}); err != nil {
			t.Errorf("NewEncoder(%q) error = %v", name, err)
		}
	}
	if _, err := NewEncoder("xml", &bytes.Buffer{}); err == nil {
		t.Error("NewEncoder(xml) succeeded")
	}
}
