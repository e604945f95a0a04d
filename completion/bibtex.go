package completion

import (
	"strings"
	"unicode"

	"github.com/dhamidi/texlyzer/bibtex"
	bibparser "github.com/dhamidi/texlyzer/bibtex/parser"
	"github.com/dhamidi/texlyzer/knowledge"
	"github.com/dhamidi/texlyzer/latex/parser"
)

func (c *Context) bibliographies() []*bibparser.Node {
	var roots []*bibparser.Node
	for _, doc := range c.Related {
		if doc.Bib != nil {
			roots = append(roots, doc.Bib)
		}
	}
	return roots
}

func addCitations(c *Context, b *Builder) {
	group, _, ok := c.GroupOf(parser.KindCitation)
	if !ok || group.Kind != parser.KindCurlyGroupWordList {
		return
	}

	strs := bibtex.NewStrings(c.bibliographies()...)
	for _, doc := range c.Related {
		if doc.Bib == nil {
			continue
		}
		for _, entry := range bibtex.Entries(doc.Bib) {
			key := entry.Key()
			if key == nil || key.Literal == "" {
				continue
			}
			category := knowledge.CategoryMisc
			if t, ok := c.Knowledge.FindEntryType(entry.Type()); ok {
				category = t.Category
			}
			if category == knowledge.CategoryString {
				continue
			}
			b.Add(c.Range, CitationPayload{
				Key:         key.Literal,
				DocumentURI: doc.URI,
				EntryType:   entry.Type(),
				Category:    category,
				Text:        entryText(strs, entry),
			}, false)
		}
	}

	for _, doc := range c.Related {
		if doc.Symbols == nil {
			continue
		}
		for _, sym := range doc.Symbols.BibItems {
			b.Add(c.Range, CitationPayload{Key: sym.Name, DocumentURI: doc.URI, Category: knowledge.CategoryMisc}, false)
		}
	}
}

// entryText flattens the field values of an entry into a single line of
// words, so that any word of the entry can be matched.
func entryText(strs *bibtex.Strings, entry bibtex.Entry) string {
	var sb strings.Builder
	sb.WriteString(entry.Type())
	for _, field := range entry.Fields() {
		sb.WriteByte(' ')
		sb.WriteString(strs.Text(field.Value()))
	}
	text := strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return ' '
		}
		return r
	}, sb.String())
	return strings.Join(strings.Fields(text), " ")
}

func addEntryTypes(c *Context, b *Builder) {
	if c.BibLeaf == nil || c.BibLeaf.Token.Kind != bibparser.TokenType {
		return
	}
	for i := range c.Knowledge.EntryTypes {
		b.Add(c.Range, EntryTypePayload{Type: &c.Knowledge.EntryTypes[i]}, false)
	}
}

// isFieldName reports whether the cursor token names a field.
func isFieldName(leaf *bibparser.Node) bool {
	if leaf.Token.Kind != bibparser.TokenWord || leaf.Parent == nil || leaf.Parent.Kind != bibparser.KindField {
		return false
	}
	return len(leaf.Parent.Children) > 0 && leaf.Parent.Children[0] == leaf
}

func addFields(c *Context, b *Builder) {
	if c.BibLeaf == nil || !isFieldName(c.BibLeaf) {
		return
	}
	for i := range c.Knowledge.Fields {
		b.Add(c.Range, FieldPayload{Field: &c.Knowledge.Fields[i]}, false)
	}
}

func addStrings(c *Context, b *Builder) {
	leaf := c.BibLeaf
	if leaf == nil || leaf.Token.Kind != bibparser.TokenWord || leaf.Parent == nil || leaf.Parent.Kind != bibparser.KindLiteral {
		return
	}
	roots := c.bibliographies()
	strs := bibtex.NewStrings(roots...)
	for _, root := range roots {
		for _, def := range bibtex.StringDefs(root) {
			name := def.Name()
			if name == "" || def.Node == leaf.Parent.Parent {
				continue
			}
			b.Add(c.Range, StringPayload{Name: name, Text: strs.Text(def.Value())}, false)
		}
	}
}
