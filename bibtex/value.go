package bibtex

import (
	"strings"

	"github.com/dhamidi/texlyzer/bibtex/parser"
)

var monthNames = map[string]string{
	"jan": "January",
	"feb": "February",
	"mar": "March",
	"apr": "April",
	"may": "May",
	"jun": "June",
	"jul": "July",
	"aug": "August",
	"sep": "September",
	"oct": "October",
	"nov": "November",
	"dec": "December",
}

// Strings resolves @string abbreviations. Lookups are case-insensitive and
// fall back to the predefined month names.
type Strings struct {
	defs map[string]*parser.Node
}

// NewStrings indexes the @string definitions of the given databases. The
// first definition of a name wins.
func NewStrings(roots ...*parser.Node) *Strings {
	s := &Strings{defs: map[string]*parser.Node{}}
	for _, root := range roots {
		for _, def := range StringDefs(root) {
			name := strings.ToLower(def.Name())
			if name == "" {
				continue
			}
			if _, ok := s.defs[name]; !ok {
				s.defs[name] = def.Value()
			}
		}
	}
	return s
}

// Names returns the user-defined abbreviations.
func (s *Strings) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.defs))
	for name := range s.defs {
		names = append(names, name)
	}
	return names
}

// maxTextLength bounds the expansion of a single abbreviation.
const maxTextLength = 4096

// Text renders a field value: braces and quotes are removed, abbreviations
// expanded and # concatenations joined. An abbreviation met again while it
// is being expanded is written as is.
func (s *Strings) Text(value *parser.Node) string {
	x := &expansion{strs: s, active: map[string]bool{}, done: map[string]string{}}
	var sb strings.Builder
	x.write(&sb, value)
	return collapseSpace(sb.String())
}

type expansion struct {
	strs   *Strings
	active map[string]bool
	done   map[string]string
}

func (x *expansion) lookup(name string) (*parser.Node, bool) {
	if x.strs == nil || x.active[name] {
		return nil, false
	}
	def, ok := x.strs.defs[name]
	return def, ok
}

func (x *expansion) expand(name string, def *parser.Node) string {
	if text, ok := x.done[name]; ok {
		return text
	}
	var sb strings.Builder
	x.active[name] = true
	x.write(&sb, def)
	delete(x.active, name)
	text := sb.String()
	if len(text) > maxTextLength {
		text = strings.ToValidUTF8(text[:maxTextLength], "")
	}
	x.done[name] = text
	return text
}

func (x *expansion) write(sb *strings.Builder, value *parser.Node) {
	if value == nil || sb.Len() >= maxTextLength {
		return
	}
	switch value.Kind {
	case parser.KindLiteral:
		word := value.Text()
		name := strings.ToLower(word)
		if def, ok := x.lookup(name); ok {
			sb.WriteString(x.expand(name, def))
			return
		}
		if month, ok := monthNames[name]; ok {
			sb.WriteString(month)
			return
		}
		sb.WriteString(word)
	case parser.KindCommand:
		sb.WriteString(value.Text())
	case parser.KindCurlyGroup, parser.KindQuoteGroup:
		children := value.Children
		for i, child := range children {
			if child.IsToken() && (i == 0 || i == len(children)-1) {
				switch child.Token.Kind {
				case parser.TokenLCurly, parser.TokenRCurly, parser.TokenQuote:
					continue
				}
			}
			if child.Kind == parser.KindCurlyGroup {
				x.write(sb, child)
				continue
			}
			sb.WriteString(child.Text())
		}
	case parser.KindJoin:
		for _, child := range value.Children {
			if child.Kind.IsValue() {
				x.write(sb, child)
			}
		}
	}
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FieldText renders the value of the named field of e.
func (s *Strings) FieldText(e Entry, name string) string {
	f, ok := e.Field(name)
	if !ok {
		return ""
	}
	return s.Text(f.Value())
}
