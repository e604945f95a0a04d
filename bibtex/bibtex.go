// Package bibtex provides typed views over BibTeX syntax trees and the
// expansion of field values.
package bibtex

import (
	"strings"

	"github.com/dhamidi/texlyzer/bibtex/parser"
)

type Entry struct{ Node *parser.Node }

func AsEntry(n *parser.Node) (Entry, bool) {
	if n == nil || n.Kind != parser.KindEntry {
		return Entry{}, false
	}
	return Entry{n}, true
}

// Type returns the lowercased entry type, e.g. "article".
func (e Entry) Type() string {
	if e.Node == nil {
		return ""
	}
	if tok := e.Node.FirstTokenOfKind(parser.TokenType); tok != nil {
		return tok.TypeName()
	}
	return ""
}

// Key returns the citation key token, or nil for entries without a key.
func (e Entry) Key() *parser.Token {
	if e.Node == nil {
		return nil
	}
	return e.Node.FirstTokenOfKind(parser.TokenWord)
}

func (e Entry) Fields() []Field {
	if e.Node == nil {
		return nil
	}
	var result []Field
	for _, n := range e.Node.ChildrenOfKind(parser.KindField) {
		result = append(result, Field{n})
	}
	return result
}

// Field looks up a field by case-insensitive name.
func (e Entry) Field(name string) (Field, bool) {
	for _, f := range e.Fields() {
		if strings.EqualFold(f.Name(), name) {
			return f, true
		}
	}
	return Field{}, false
}

type Field struct{ Node *parser.Node }

func AsField(n *parser.Node) (Field, bool) {
	if n == nil || n.Kind != parser.KindField {
		return Field{}, false
	}
	return Field{n}, true
}

func (f Field) NameToken() *parser.Token {
	if f.Node == nil {
		return nil
	}
	return f.Node.FirstTokenOfKind(parser.TokenWord)
}

func (f Field) Name() string {
	if tok := f.NameToken(); tok != nil {
		return tok.Literal
	}
	return ""
}

func (f Field) Value() *parser.Node {
	return valueChild(f.Node)
}

type StringDef struct{ Node *parser.Node }

func AsStringDef(n *parser.Node) (StringDef, bool) {
	if n == nil || n.Kind != parser.KindStringDef {
		return StringDef{}, false
	}
	return StringDef{n}, true
}

func (s StringDef) NameToken() *parser.Token {
	if s.Node == nil {
		return nil
	}
	return s.Node.FirstTokenOfKind(parser.TokenWord)
}

func (s StringDef) Name() string {
	if tok := s.NameToken(); tok != nil {
		return tok.Literal
	}
	return ""
}

func (s StringDef) Value() *parser.Node {
	return valueChild(s.Node)
}

func valueChild(n *parser.Node) *parser.Node {
	if n == nil {
		return nil
	}
	for _, child := range n.Children {
		if child.Kind.IsValue() {
			return child
		}
	}
	return nil
}

// Entries returns the entries of a database in source order.
func Entries(root *parser.Node) []Entry {
	if root == nil {
		return nil
	}
	var result []Entry
	for _, n := range root.ChildrenOfKind(parser.KindEntry) {
		result = append(result, Entry{n})
	}
	return result
}

// StringDefs returns the @string definitions of a database.
func StringDefs(root *parser.Node) []StringDef {
	if root == nil {
		return nil
	}
	var result []StringDef
	for _, n := range root.ChildrenOfKind(parser.KindStringDef) {
		result = append(result, StringDef{n})
	}
	return result
}
