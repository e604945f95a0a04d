// Package format renders parsed documents for the command line: syntax
// trees as JSON or indented text, and a one-line-per-symbol outline.
package format

import (
	"encoding"
	"io"

	"gitlab.com/tozd/go/errors"

	"github.com/dhamidi/texlyzer/codebase"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(doc *codebase.Document) error
}

// Names lists the encoders accepted by NewEncoder.
var Names = []string{"json", "tree", "line"}

func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "json":
		return NewJSONEncoder(w), nil
	case "tree":
		return NewTreeEncoder(w, false), nil
	case "line":
		return NewLineEncoder(w), nil
	}
	return nil, errors.Errorf("unknown format: %s (expected one of %v)", name, Names)
}

type position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// positionOf converts a byte offset to a 1-based line and column.
func positionOf(doc *codebase.Document, offset int) position {
	line, character := doc.Lines.Position(offset)
	return position{Line: line + 1, Column: character + 1}
}

func write(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
