package completion

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// ClientProfile describes what the connected editor can display.
type ClientProfile struct {
	SnippetSupport  bool
	MarkdownSupport bool
	// ItemKinds lists the supported completion item kinds. Nil means the
	// kinds of the first protocol version, Text through Reference.
	ItemKinds []protocol.CompletionItemKind
	// AlwaysIncomplete marks every list incomplete, so the client asks
	// again on each keystroke.
	AlwaysIncomplete bool
}

// alwaysIncompleteClients refilter stale lists client side unless told
// otherwise.
var alwaysIncompleteClients = map[string]bool{
	"Visual Studio Code": true,
}

// ClientNeedsIncomplete reports whether the named client should always
// get incomplete lists.
func ClientNeedsIncomplete(name string) bool {
	return alwaysIncompleteClients[name]
}

func (p ClientProfile) supports(kind protocol.CompletionItemKind) bool {
	if p.ItemKinds == nil {
		return kind >= protocol.CompletionItemKindText && kind <= protocol.CompletionItemKindReference
	}
	for _, k := range p.ItemKinds {
		if k == kind {
			return true
		}
	}
	return false
}
