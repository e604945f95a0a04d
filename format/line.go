package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/texlyzer/bibtex"
	"github.com/dhamidi/texlyzer/codebase"
	"github.com/dhamidi/texlyzer/latex"
)

// LineEncoder writes one tab separated line per symbol of a document:
// kind, name, line:column and an optional detail.
type LineEncoder struct {
	w   io.Writer
	doc *codebase.Document
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(doc *codebase.Document) error {
	e.doc = doc
	return write(e.w, e)
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	if s := e.doc.Symbols; s != nil {
		groups := [][]latex.Symbol{
			s.Classes, s.Packages, s.TikzLibs,
			s.Commands, s.Environments, s.Theorems,
			s.Labels, s.Colors, s.Glossary, s.Acronyms, s.BibItems,
		}
		for _, group := range groups {
			for _, symbol := range group {
				e.line(&sb, strings.ToLower(symbol.Kind.String()), symbol.Name, symbol.Span.Start, symbol.Detail)
			}
		}
	}
	if e.doc.Bib != nil {
		for _, def := range bibtex.StringDefs(e.doc.Bib) {
			e.line(&sb, "string", def.Name(), def.Node.Span.Start, "")
		}
		for _, entry := range bibtex.Entries(e.doc.Bib) {
			key := entry.Key()
			if key == nil {
				continue
			}
			e.line(&sb, "entry", key.Literal, key.Span.Start, entry.Type())
		}
	}
	return []byte(sb.String()), nil
}

func (e *LineEncoder) line(sb *strings.Builder, kind, name string, offset int, detail string) {
	pos := positionOf(e.doc, offset)
	fmt.Fprintf(sb, "%s\t%s\t%d:%d", kind, name, pos.Line, pos.Column)
	if detail != "" {
		fmt.Fprintf(sb, "\t%s", detail)
	}
	sb.WriteString("\n")
}
