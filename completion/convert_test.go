package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/texlyzer/codebase"
)

func convert(t *testing.T, text string, client ClientProfile, related ...*codebase.Document) []protocol.CompletionItem {
	t.Helper()
	text, offset := withCursor(t, text)
	doc := texDoc("/project/main.tex", text)
	ctx := NewContext(doc, append([]*codebase.Document{doc}, related...), offset)
	return ToProtocol(doc, Complete(ctx, DefaultOptions(), client), client).Items
}

func find(items []protocol.CompletionItem, label string) *protocol.CompletionItem {
	for i := range items {
		if items[i].Label == label {
			return &items[i]
		}
	}
	return nil
}

func TestToProtocolTextEdit(t *testing.T) {
	items := convert(t, "x\n\\sec|", ClientProfile{})
	section := find(items, "section")
	require.NotNil(t, section)

	edit, ok := section.TextEdit.(protocol.TextEdit)
	require.True(t, ok)
	assert.Equal(t, protocol.Position{Line: 1, Character: 1}, edit.Range.Start)
	assert.Equal(t, protocol.Position{Line: 1, Character: 4}, edit.Range.End)
	assert.Equal(t, "section", edit.NewText)
	assert.Equal(t, protocol.CompletionItemKindFunction, *section.Kind)
	assert.Equal(t, "00000", *section.SortText)
	assert.Equal(t, "built-in", *section.Detail)
}

func TestToProtocolKindDowngrade(t *testing.T) {
	items := convert(t, `\begin{itemi|}`, ClientProfile{ItemKinds: []protocol.CompletionItemKind{protocol.CompletionItemKindText}})
	itemize := find(items, "itemize")
	require.NotNil(t, itemize)
	assert.Equal(t, protocol.CompletionItemKindText, *itemize.Kind)

	items = convert(t, `\begin{itemi|}`, ClientProfile{})
	itemize = find(items, "itemize")
	require.NotNil(t, itemize)
	assert.Equal(t, protocol.CompletionItemKindEnum, *itemize.Kind)
}

func TestToProtocolDefaultKinds(t *testing.T) {
	b := NewBuilder(nil, DefaultOptions())
	b.Add(Range{}, NamePayload{ItemKind: KindDirectory, Name: "figs"}, false)
	b.Add(Range{}, NamePayload{ItemKind: KindFile, Name: "intro"}, false)
	doc := texDoc("/project/main.tex", "")

	items := ToProtocol(doc, b.Finish(ClientProfile{}), ClientProfile{}).Items
	require.Len(t, items, 2)
	assert.Equal(t, protocol.CompletionItemKindText, *items[0].Kind)
	assert.Equal(t, protocol.CompletionItemKindFile, *items[1].Kind)

	withFolders := ClientProfile{ItemKinds: []protocol.CompletionItemKind{protocol.CompletionItemKindFolder}}
	items = ToProtocol(doc, b.Finish(withFolders), withFolders).Items
	assert.Equal(t, protocol.CompletionItemKindFolder, *items[0].Kind)
}

func TestToProtocolBeginSnippet(t *testing.T) {
	items := convert(t, `\beg|`, ClientProfile{SnippetSupport: true})
	begin := find(items, "begin")
	require.NotNil(t, begin)
	require.NotNil(t, begin.InsertTextFormat)
	assert.Equal(t, protocol.InsertTextFormatSnippet, *begin.InsertTextFormat)
	assert.Equal(t, beginSnippet, begin.TextEdit.(protocol.TextEdit).NewText)

	items = convert(t, `\beg|`, ClientProfile{})
	begin = find(items, "begin")
	require.NotNil(t, begin)
	assert.Nil(t, begin.InsertTextFormat)
	assert.Equal(t, "begin", begin.TextEdit.(protocol.TextEdit).NewText)
}

func TestToProtocolPreselect(t *testing.T) {
	items := convert(t, "\\begin{proof}\n\\end{|}", ClientProfile{})
	require.NotEmpty(t, items)
	assert.Equal(t, "proof", items[0].Label)
	require.NotNil(t, items[0].Preselect)
	assert.True(t, *items[0].Preselect)
}

func TestResolveCitation(t *testing.T) {
	bib := bibDoc("/project/refs.bib", references)
	client := ClientProfile{MarkdownSupport: true}
	items := convert(t, `\cite{foo|}`, client, bib)
	foo := find(items, "foo:2019")
	require.NotNil(t, foo)
	require.NotNil(t, foo.FilterText)
	assert.Equal(t, "foo:2019 misc Foo Bar Baz Qux 2019", *foo.FilterText)
	assert.Nil(t, foo.Documentation)

	lookup := func(uri string) *codebase.Document {
		if uri == bib.URI {
			return bib
		}
		return nil
	}
	resolved, err := Resolve(foo, lookup, client)
	require.NoError(t, err)
	doc, ok := resolved.Documentation.(protocol.MarkupContent)
	require.True(t, ok)
	assert.Equal(t, protocol.MarkupKindMarkdown, doc.Kind)
	assert.Contains(t, doc.Value, "@misc{foo:2019,")
	assert.Contains(t, doc.Value, "```bibtex")
}

func TestResolveWithoutData(t *testing.T) {
	item := &protocol.CompletionItem{Label: "section"}
	resolved, err := Resolve(item, func(string) *codebase.Document { return nil }, ClientProfile{})
	require.NoError(t, err)
	assert.Same(t, item, resolved)
	assert.Nil(t, resolved.Documentation)
}
