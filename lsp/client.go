package lsp

import (
	"encoding/json"

	"github.com/tidwall/gjson"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/texlyzer/completion"
)

// clientProfile reads the completion related capabilities of the client.
// The capabilities are probed on their JSON form, so absent optional
// fields read as false or empty.
func clientProfile(params *protocol.InitializeParams) completion.ClientProfile {
	var profile completion.ClientProfile
	if params == nil {
		return profile
	}
	if params.ClientInfo != nil {
		profile.AlwaysIncomplete = completion.ClientNeedsIncomplete(params.ClientInfo.Name)
	}

	raw, err := json.Marshal(params.Capabilities)
	if err != nil {
		log.Warningf("ignoring client capabilities: %s", err)
		return profile
	}
	item := gjson.GetBytes(raw, "textDocument.completion.completionItem")
	profile.SnippetSupport = item.Get("snippetSupport").Bool()
	for _, format := range item.Get("documentationFormat").Array() {
		if format.String() == string(protocol.MarkupKindMarkdown) {
			profile.MarkdownSupport = true
		}
	}
	kinds := gjson.GetBytes(raw, "textDocument.completion.completionItemKind.valueSet")
	if kinds.IsArray() {
		profile.ItemKinds = []protocol.CompletionItemKind{}
		for _, kind := range kinds.Array() {
			profile.ItemKinds = append(profile.ItemKinds, protocol.CompletionItemKind(kind.Int()))
		}
	}
	return profile
}
