// Package latex provides typed views over LaTeX syntax trees.
//
// A view wraps a *parser.Node of a known kind and offers accessors that
// filter its children. Views never re-parse or mutate the tree, and every
// accessor returns a zero value when the tree is malformed.
package latex

import (
	"strings"

	"github.com/dhamidi/texlyzer/latex/parser"
)

var delimiters = map[parser.NodeKind][2]parser.TokenKind{
	parser.KindCurlyGroup:         {parser.TokenLCurly, parser.TokenRCurly},
	parser.KindCurlyGroupWord:     {parser.TokenLCurly, parser.TokenRCurly},
	parser.KindCurlyGroupWordList: {parser.TokenLCurly, parser.TokenRCurly},
	parser.KindCurlyGroupCommand:  {parser.TokenLCurly, parser.TokenRCurly},
	parser.KindCurlyGroupKeyValue: {parser.TokenLCurly, parser.TokenRCurly},
	parser.KindCurlyGroupPath:     {parser.TokenLCurly, parser.TokenRCurly},
	parser.KindCurlyGroupPathList: {parser.TokenLCurly, parser.TokenRCurly},
	parser.KindBrackGroup:         {parser.TokenLBrack, parser.TokenRBrack},
	parser.KindBrackGroupWord:     {parser.TokenLBrack, parser.TokenRBrack},
	parser.KindBrackGroupKeyValue: {parser.TokenLBrack, parser.TokenRBrack},
	parser.KindFormula:            {parser.TokenDollar, parser.TokenDollar},
}

// LeftDelimiter returns the opening token of a delimited group.
func LeftDelimiter(n *parser.Node) *parser.Token {
	if n == nil || len(n.Children) == 0 {
		return nil
	}
	first := n.Children[0]
	if !first.IsToken() {
		return nil
	}
	if d, ok := delimiters[n.Kind]; ok && first.Token.Kind == d[0] {
		return first.Token
	}
	if n.Kind == parser.KindMixedGroup && (first.Token.Kind == parser.TokenLBrack || first.Token.Kind == parser.TokenLParen) {
		return first.Token
	}
	return nil
}

// RightDelimiter returns the closing token of a delimited group, or nil when
// the group is unterminated.
func RightDelimiter(n *parser.Node) *parser.Token {
	if n == nil || len(n.Children) < 2 {
		return nil
	}
	last := n.Children[len(n.Children)-1]
	if !last.IsToken() {
		return nil
	}
	if d, ok := delimiters[n.Kind]; ok && last.Token.Kind == d[1] {
		return last.Token
	}
	if n.Kind == parser.KindMixedGroup && (last.Token.Kind == parser.TokenRBrack || last.Token.Kind == parser.TokenRParen) {
		return last.Token
	}
	return nil
}

// Content returns the text between the delimiters of a group, without
// comments and trimmed.
func Content(n *parser.Node) string {
	if n == nil {
		return ""
	}
	left, right := LeftDelimiter(n), RightDelimiter(n)
	var sb strings.Builder
	for _, tok := range n.Leaves() {
		if tok == left || tok == right || tok.Kind == parser.TokenLineComment {
			continue
		}
		sb.WriteString(tok.Literal)
	}
	return strings.TrimSpace(sb.String())
}

// Key is a possibly multi-word name: a label, a citation key, an
// environment name or an option key.
type Key struct{ Node *parser.Node }

func AsKey(n *parser.Node) (Key, bool) {
	if n == nil || n.Kind != parser.KindKey {
		return Key{}, false
	}
	return Key{n}, true
}

func (k Key) words() []*parser.Token {
	if k.Node == nil {
		return nil
	}
	var words []*parser.Token
	for _, child := range k.Node.Children {
		if !child.IsToken() {
			continue
		}
		switch child.Token.Kind {
		case parser.TokenWhitespace, parser.TokenLineBreak, parser.TokenLineComment:
			continue
		}
		words = append(words, child.Token)
	}
	return words
}

// Text renders the key with whitespace runs collapsed to single spaces.
func (k Key) Text() string {
	if k.Node == nil {
		return ""
	}
	var sb strings.Builder
	pendingSpace := false
	for _, child := range k.Node.Children {
		if !child.IsToken() {
			continue
		}
		switch child.Token.Kind {
		case parser.TokenLineComment:
			continue
		case parser.TokenWhitespace, parser.TokenLineBreak:
			pendingSpace = sb.Len() > 0
			continue
		}
		if pendingSpace {
			sb.WriteByte(' ')
			pendingSpace = false
		}
		sb.WriteString(child.Token.Literal)
	}
	return sb.String()
}

// Span covers the key without leading and trailing trivia.
func (k Key) Span() parser.Span {
	words := k.words()
	if len(words) == 0 {
		if k.Node == nil {
			return parser.Span{}
		}
		return parser.Span{Start: k.Node.Span.Start, End: k.Node.Span.Start}
	}
	return parser.Span{Start: words[0].Span.Start, End: words[len(words)-1].Span.End}
}

// Words returns the word tokens of the key.
func (k Key) Words() []*parser.Token {
	return k.words()
}

func firstKey(n *parser.Node) (Key, bool) {
	if n == nil {
		return Key{}, false
	}
	return AsKey(n.FirstChildOfKind(parser.KindKey))
}

func keys(n *parser.Node) []Key {
	if n == nil {
		return nil
	}
	var result []Key
	for _, child := range n.ChildrenOfKind(parser.KindKey) {
		result = append(result, Key{child})
	}
	return result
}

// GroupKey returns the key of a curly or bracket word group.
func GroupKey(n *parser.Node) (Key, bool) {
	if n == nil {
		return Key{}, false
	}
	switch n.Kind {
	case parser.KindCurlyGroupWord, parser.KindBrackGroupWord:
		return firstKey(n)
	}
	return Key{}, false
}

// GroupKeys returns the keys of a curly word list.
func GroupKeys(n *parser.Node) []Key {
	if n == nil || n.Kind != parser.KindCurlyGroupWordList {
		return nil
	}
	return keys(n)
}

// Path is a file name argument.
type Path struct{ Node *parser.Node }

func (p Path) Text() string {
	if p.Node == nil {
		return ""
	}
	return strings.TrimSpace(p.Node.Text())
}

func (p Path) Span() parser.Span {
	if p.Node == nil {
		return parser.Span{}
	}
	leaves := p.Node.Leaves()
	start, end := p.Node.Span.Start, p.Node.Span.End
	for len(leaves) > 0 && leaves[len(leaves)-1].Kind == parser.TokenWhitespace {
		end = leaves[len(leaves)-1].Span.Start
		leaves = leaves[:len(leaves)-1]
	}
	return parser.Span{Start: start, End: end}
}

// GroupPaths returns the paths of a path group or path list.
func GroupPaths(n *parser.Node) []Path {
	if n == nil || (n.Kind != parser.KindCurlyGroupPath && n.Kind != parser.KindCurlyGroupPathList) {
		return nil
	}
	var result []Path
	for _, child := range n.ChildrenOfKind(parser.KindPath) {
		result = append(result, Path{child})
	}
	return result
}

// KeyValuePair is a single "key=value" option.
type KeyValuePair struct{ Node *parser.Node }

func (p KeyValuePair) Key() (Key, bool) {
	return firstKey(p.Node)
}

func (p KeyValuePair) Value() *parser.Node {
	if p.Node == nil {
		return nil
	}
	return p.Node.FirstChildOfKind(parser.KindValue)
}

// ValueText returns the trimmed text of the value, or "" when there is none.
func (p KeyValuePair) ValueText() string {
	v := p.Value()
	if v == nil {
		return ""
	}
	var groups []*parser.Node
	for _, child := range v.Children {
		if child.IsToken() && child.Token.Kind.IsTrivia() {
			continue
		}
		groups = append(groups, child)
	}
	if len(groups) == 1 && groups[0].Kind == parser.KindCurlyGroup {
		return Content(groups[0])
	}
	return Content(v)
}

// Pairs returns the key/value pairs of a key/value group or body.
func Pairs(n *parser.Node) []KeyValuePair {
	if n == nil {
		return nil
	}
	if n.Kind == parser.KindCurlyGroupKeyValue || n.Kind == parser.KindBrackGroupKeyValue {
		n = n.FirstChildOfKind(parser.KindKeyValueBody)
		if n == nil {
			return nil
		}
	}
	if n.Kind != parser.KindKeyValueBody {
		return nil
	}
	var result []KeyValuePair
	for _, child := range n.ChildrenOfKind(parser.KindKeyValuePair) {
		result = append(result, KeyValuePair{child})
	}
	return result
}

// Lookup returns the value text for key within a key/value group.
func Lookup(n *parser.Node, key string) (string, bool) {
	for _, pair := range Pairs(n) {
		if k, ok := pair.Key(); ok && k.Text() == key {
			return pair.ValueText(), true
		}
	}
	return "", false
}

// CommandName returns the name token of a command node.
func CommandName(n *parser.Node) *parser.Token {
	if n == nil {
		return nil
	}
	return n.FirstTokenOfKind(parser.TokenCommandName)
}
