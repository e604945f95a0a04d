package format

import (
	"encoding/json"
	"io"

	bibparser "github.com/dhamidi/texlyzer/bibtex/parser"
	"github.com/dhamidi/texlyzer/codebase"
	"github.com/dhamidi/texlyzer/latex/parser"
)

// JSONEncoder writes the syntax tree of a document as indented JSON.
type JSONEncoder struct {
	w   io.Writer
	doc *codebase.Document
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(doc *codebase.Document) error {
	e.doc = doc
	return write(e.w, e)
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := jsonDocument{
		URI:      e.doc.URI,
		Language: e.doc.Language.String(),
	}
	switch {
	case e.doc.Tree != nil:
		data.Tree = e.latexNode(e.doc.Tree)
	case e.doc.Bib != nil:
		data.Tree = e.bibNode(e.doc.Bib)
	}
	text, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(text, '\n'), nil
}

type jsonDocument struct {
	URI      string    `json:"uri"`
	Language string    `json:"language"`
	Tree     *jsonNode `json:"tree,omitempty"`
}

type jsonNode struct {
	Kind      string      `json:"kind"`
	Span      jsonSpan    `json:"span"`
	TokenKind string      `json:"tokenKind,omitempty"`
	Token     string      `json:"token,omitempty"`
	Command   string      `json:"command,omitempty"`
	Error     *jsonError  `json:"error,omitempty"`
	Children  []*jsonNode `json:"children,omitempty"`
}

type jsonSpan struct {
	Start position `json:"start"`
	End   position `json:"end"`
}

type jsonError struct {
	Message string `json:"message"`
	Got     string `json:"got,omitempty"`
}

func (e *JSONEncoder) span(start, end int) jsonSpan {
	return jsonSpan{Start: positionOf(e.doc, start), End: positionOf(e.doc, end)}
}

func (e *JSONEncoder) latexNode(n *parser.Node) *jsonNode {
	jn := &jsonNode{
		Kind: n.Kind.String(),
		Span: e.span(n.Span.Start, n.Span.End),
	}
	if n.Token != nil {
		jn.TokenKind = n.Token.Kind.String()
		jn.Token = n.Token.Literal
		if n.Token.Kind == parser.TokenCommandName {
			jn.Command = n.Token.Command.String()
		}
	}
	if n.Error != nil {
		jn.Error = &jsonError{Message: n.Error.Message}
		if n.Error.Got != nil {
			jn.Error.Got = n.Error.Got.Literal
		}
	}
	if len(n.Children) > 0 {
		jn.Children = make([]*jsonNode, len(n.Children))
		for i, child := range n.Children {
			jn.Children[i] = e.latexNode(child)
		}
	}
	return jn
}

func (e *JSONEncoder) bibNode(n *bibparser.Node) *jsonNode {
	jn := &jsonNode{
		Kind: n.Kind.String(),
		Span: e.span(n.Span.Start, n.Span.End),
	}
	if n.Token != nil {
		jn.TokenKind = n.Token.Kind.String()
		jn.Token = n.Token.Literal
	}
	if len(n.Children) > 0 {
		jn.Children = make([]*jsonNode, len(n.Children))
		for i, child := range n.Children {
			jn.Children[i] = e.bibNode(child)
		}
	}
	return jn
}
