package completion

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/texlyzer/bibtex"
	"github.com/dhamidi/texlyzer/codebase"
)

var protocolKinds = map[ItemKind]protocol.CompletionItemKind{
	KindCommand:       protocol.CompletionItemKindFunction,
	KindEnvironment:   protocol.CompletionItemKindEnum,
	KindBeginSnippet:  protocol.CompletionItemKindSnippet,
	KindCitation:      protocol.CompletionItemKindConstant,
	KindLabel:         protocol.CompletionItemKindReference,
	KindColor:         protocol.CompletionItemKindColor,
	KindColorModel:    protocol.CompletionItemKindColor,
	KindTikzLibrary:   protocol.CompletionItemKindModule,
	KindPackage:       protocol.CompletionItemKindModule,
	KindClass:         protocol.CompletionItemKindClass,
	KindFile:          protocol.CompletionItemKindFile,
	KindDirectory:     protocol.CompletionItemKindFolder,
	KindGlossaryEntry: protocol.CompletionItemKindKeyword,
	KindAcronym:       protocol.CompletionItemKindKeyword,
	KindEntryType:     protocol.CompletionItemKindInterface,
	KindField:         protocol.CompletionItemKindField,
	KindString:        protocol.CompletionItemKindVariable,
	KindArgument:      protocol.CompletionItemKindValue,
}

const beginSnippet = "begin{$1}\n\t$0\n\\end{$1}"

// ToProtocol converts a finished list into LSP completion items. Ranges
// are converted to line and UTF-16 character positions of doc.
func ToProtocol(doc *codebase.Document, list List, client ClientProfile) protocol.CompletionList {
	lines := doc.Lines
	if lines == nil {
		lines = codebase.NewLineIndex(doc.Text)
	}
	items := make([]protocol.CompletionItem, 0, len(list.Items))
	for _, item := range list.Items {
		items = append(items, toItem(lines, item, client))
	}
	return protocol.CompletionList{IsIncomplete: list.Incomplete, Items: items}
}

func position(lines *codebase.LineIndex, offset int) protocol.Position {
	line, character := lines.Position(offset)
	return protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(character)}
}

func toItem(lines *codebase.LineIndex, item Item, client ClientProfile) protocol.CompletionItem {
	payload := item.Payload
	label := payload.Label()
	sortText := item.SortText

	kind, ok := protocolKinds[payload.Kind()]
	if !ok || !client.supports(kind) {
		kind = protocol.CompletionItemKindText
	}

	newText := label
	result := protocol.CompletionItem{
		Label:    label,
		Kind:     &kind,
		SortText: &sortText,
	}
	if item.Preselect {
		preselect := true
		result.Preselect = &preselect
	}
	if filter := payload.FilterText(); filter != label {
		result.FilterText = &filter
	}

	var detail string
	switch p := payload.(type) {
	case BeginSnippetPayload:
		if client.SnippetSupport {
			newText = beginSnippet
			format := protocol.InsertTextFormatSnippet
			result.InsertTextFormat = &format
		}
		detail = "begin environment"

	case CommandPayload:
		detail = p.Detail
		if p.Glyph != "" {
			detail = p.Glyph + ", " + detail
		}
		if p.Image != "" && client.MarkdownSupport {
			result.Documentation = markup(client, fmt.Sprintf("![%s](%s)", label, p.Image), "")
		}

	case EnvironmentPayload:
		detail = p.Detail

	case CitationPayload:
		result.Data = map[string]any{"kind": "citation", "uri": p.DocumentURI, "key": p.Key}
		detail = string(p.Category)

	case LabelPayload:
		detail = p.Rendered.Header
		if p.Rendered.Footer != "" {
			result.Documentation = markup(client, p.Rendered.Footer, p.Rendered.Footer)
		}

	case NamePayload:
		detail = p.Detail

	case GlossaryPayload:
		detail = p.Description

	case EntryTypePayload:
		detail = string(p.Type.Category)
		result.Documentation = markup(client, p.Type.Documentation, p.Type.Documentation)

	case FieldPayload:
		result.Documentation = markup(client, p.Field.Documentation, p.Field.Documentation)

	case StringPayload:
		detail = p.Text

	case ArgumentPayload:
		detail = `\` + p.Command
	}
	if detail != "" {
		result.Detail = &detail
	}

	result.TextEdit = protocol.TextEdit{
		Range: protocol.Range{
			Start: position(lines, item.Range.Start),
			End:   position(lines, item.Range.End),
		},
		NewText: newText,
	}
	return result
}

// markup returns the documentation in the richest format the client reads.
// An empty text yields no documentation.
func markup(client ClientProfile, markdown, plain string) any {
	if client.MarkdownSupport && markdown != "" {
		return protocol.MarkupContent{Kind: protocol.MarkupKindMarkdown, Value: markdown}
	}
	if plain == "" {
		return nil
	}
	return protocol.MarkupContent{Kind: protocol.MarkupKindPlainText, Value: plain}
}

// DocumentLookup finds an open or scanned document by URI.
type DocumentLookup func(uri string) *codebase.Document

// Resolve fills in the documentation of an item whose Data carries a
// resolve payload. Items without one are returned unchanged.
func Resolve(item *protocol.CompletionItem, lookup DocumentLookup, client ClientProfile) (*protocol.CompletionItem, error) {
	if item == nil || item.Data == nil {
		return item, nil
	}
	data, err := json.Marshal(item.Data)
	if err != nil {
		return item, err
	}

	switch gjson.GetBytes(data, "kind").String() {
	case "citation":
		doc := lookup(gjson.GetBytes(data, "uri").String())
		if doc == nil || doc.Bib == nil {
			return item, nil
		}
		key := gjson.GetBytes(data, "key").String()
		for _, entry := range bibtex.Entries(doc.Bib) {
			if tok := entry.Key(); tok == nil || tok.Literal != key {
				continue
			}
			source := strings.TrimSpace(entry.Node.Text())
			item.Documentation = markup(client, "```bibtex\n"+source+"\n```", source)
			break
		}
	}
	return item, nil
}
