package format

import (
	"io"

	"github.com/dhamidi/texlyzer/codebase"
)

// TreeEncoder writes the indented text dump of a syntax tree.
type TreeEncoder struct {
	w         io.Writer
	positions bool
	doc       *codebase.Document
}

// NewTreeEncoder returns an encoder that prints byte spans next to LaTeX
// nodes when positions is set.
func NewTreeEncoder(w io.Writer, positions bool) *TreeEncoder {
	return &TreeEncoder{w: w, positions: positions}
}

func (e *TreeEncoder) Encode(doc *codebase.Document) error {
	e.doc = doc
	return write(e.w, e)
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	switch {
	case e.doc.Tree != nil && e.positions:
		return []byte(e.doc.Tree.StringWithPositions()), nil
	case e.doc.Tree != nil:
		return []byte(e.doc.Tree.String()), nil
	case e.doc.Bib != nil:
		return []byte(e.doc.Bib.String()), nil
	}
	return nil, nil
}
