package completion

import (
	"strings"

	"github.com/spf13/afero"

	bibparser "github.com/dhamidi/texlyzer/bibtex/parser"
	"github.com/dhamidi/texlyzer/codebase"
	"github.com/dhamidi/texlyzer/knowledge"
	"github.com/dhamidi/texlyzer/latex"
	"github.com/dhamidi/texlyzer/latex/parser"
)

// Context is the resolved cursor position of a completion request. It is
// computed once per request and only read by the producers.
type Context struct {
	Document  *codebase.Document
	Related   []*codebase.Document
	Offset    int
	Knowledge *knowledge.Base
	Syntax    *parser.SyntaxConfig
	FS        afero.Fs

	// Leaf is the LaTeX token under the cursor, BibLeaf its BibTeX
	// counterpart. At most one of them is set.
	Leaf    *parser.Node
	BibLeaf *bibparser.Node

	// Pattern is the text typed so far; it is what candidates are matched
	// against. Range is the text a candidate replaces.
	Pattern string
	Range   Range

	// PathFragment is the part of a path after its last slash, replaced by
	// FragmentRange.
	PathFragment  string
	FragmentRange Range

	// Preselect names the environment opened by the \begin matching the
	// \end the cursor is in.
	Preselect string
}

type Option func(*Context)

func WithKnowledge(base *knowledge.Base) Option {
	return func(c *Context) { c.Knowledge = base }
}

func WithSyntax(syntax *parser.SyntaxConfig) Option {
	return func(c *Context) { c.Syntax = syntax }
}

// WithFS sets the file system include completion lists. Without it no
// files are suggested.
func WithFS(fs afero.Fs) Option {
	return func(c *Context) { c.FS = fs }
}

// NewContext resolves the cursor at offset in doc. Related documents
// (including doc itself) supply the user-defined names; when related is
// empty doc alone is used.
func NewContext(doc *codebase.Document, related []*codebase.Document, offset int, opts ...Option) *Context {
	c := &Context{
		Document: doc,
		Related:  related,
		Offset:   offset,
		Range:    emptyRange(offset),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.Knowledge == nil {
		c.Knowledge = knowledge.Default()
	}
	if c.Syntax == nil {
		c.Syntax = parser.DefaultSyntaxConfig()
	}
	if len(c.Related) == 0 && doc != nil {
		c.Related = []*codebase.Document{doc}
	}
	if doc == nil {
		return c
	}
	if offset < 0 || offset > len(doc.Text) {
		return c
	}
	switch {
	case doc.Tree != nil:
		c.resolveLatex()
	case doc.Bib != nil:
		c.resolveBibtex()
	}
	if c.PathFragment == "" && c.FragmentRange == (Range{}) {
		c.FragmentRange = c.Range
	}
	return c
}

func selectLeaf[N any](left, right *N, preferred func(*N) bool) *N {
	switch {
	case left != nil && preferred(left):
		return left
	case right != nil && preferred(right):
		return right
	case left != nil:
		return left
	}
	return right
}

func (c *Context) resolveLatex() {
	left, right := c.Document.Tree.LeafAt(c.Offset)
	// A command starting at the cursor lies entirely to its right.
	if right != nil && right.Token.Kind == parser.TokenCommandName {
		right = nil
	}
	leaf := selectLeaf(left, right, func(n *parser.Node) bool {
		return n.Token.Kind == parser.TokenWord || n.Token.Kind == parser.TokenCommandName
	})
	if leaf == nil {
		return
	}
	c.Leaf = leaf
	tok := leaf.Token

	switch tok.Kind {
	case parser.TokenCommandName:
		c.Pattern = c.typed(tok.Span.Start)
		c.Range = Range{Start: tok.Span.Start + 1, End: tok.Span.End}
		if !isLetterCommand(tok) {
			c.Range.End = c.Offset
		}

	case parser.TokenWord:
		if key, ok := latex.AsKey(leaf.Parent); ok {
			c.Pattern = c.keyPattern(key)
			span := key.Span()
			c.Range = Range{Start: span.Start, End: span.End}
		} else if leaf.Parent != nil && leaf.Parent.Kind == parser.KindPath {
			c.resolvePath(latex.Path{Node: leaf.Parent})
			return
		} else {
			c.Pattern = c.typed(tok.Span.Start)
			c.Range = Range{Start: tok.Span.Start, End: tok.Span.End}
		}
	}

	c.Preselect = c.preselect()
}

func isLetterCommand(tok *parser.Token) bool {
	name := tok.CommandName()
	if name == "" {
		return false
	}
	ch := name[0]
	return ch == '@' || ch >= 0x80 || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

// typed returns the document text from start up to the cursor.
func (c *Context) typed(start int) string {
	if start > c.Offset {
		return ""
	}
	return c.Document.Text[start:c.Offset]
}

// keyPattern joins the words of key left of the cursor with single spaces.
func (c *Context) keyPattern(key latex.Key) string {
	var parts []string
	for _, word := range key.Words() {
		if word.Span.Start >= c.Offset {
			break
		}
		if word.Span.End > c.Offset {
			parts = append(parts, c.typed(word.Span.Start))
			break
		}
		parts = append(parts, word.Literal)
	}
	return strings.Join(parts, " ")
}

func (c *Context) resolvePath(path latex.Path) {
	span := path.Span()
	text := c.typed(span.Start)
	if len(text) > span.End-span.Start {
		text = text[:span.End-span.Start]
	}
	c.Pattern = text
	c.Range = Range{Start: span.Start, End: span.End}

	slash := strings.LastIndex(text, "/")
	c.PathFragment = text[slash+1:]
	c.FragmentRange = Range{Start: span.Start + slash + 1, End: span.End}
}

func (c *Context) preselect() string {
	group, ok := c.Group()
	if !ok || group.Kind != parser.KindCurlyGroupWord || group.Parent == nil || group.Parent.Kind != parser.KindEnd {
		return ""
	}
	env := group.Parent.Parent
	if env == nil || env.Kind != parser.KindEnvironment {
		return ""
	}
	name, ok := (latex.Environment{Node: env}).Name()
	if !ok {
		return ""
	}
	return name.Text()
}

// Group returns the delimited group the cursor is inside of, looking
// through the key or path holding the cursor token.
func (c *Context) Group() (*parser.Node, bool) {
	if c.Leaf == nil {
		return nil, false
	}
	group := c.Leaf.Parent
	if group != nil && (group.Kind == parser.KindKey || group.Kind == parser.KindPath || group.Kind == parser.KindText) {
		group = group.Parent
	}
	if group == nil || !c.insideGroup(group) {
		return nil, false
	}
	return group, true
}

// GroupOf returns the group holding the cursor and the command owning it,
// when the command is one of kinds.
func (c *Context) GroupOf(kinds ...parser.NodeKind) (group, command *parser.Node, ok bool) {
	group, ok = c.Group()
	if !ok || group.Parent == nil {
		return nil, nil, false
	}
	for _, kind := range kinds {
		if group.Parent.Kind == kind {
			return group, group.Parent, true
		}
	}
	return nil, nil, false
}

func (c *Context) insideGroup(group *parser.Node) bool {
	left := latex.LeftDelimiter(group)
	if left == nil || c.Offset <= left.Span.Start {
		return false
	}
	right := latex.RightDelimiter(group)
	return right == nil || c.Offset <= right.Span.Start
}

// Command returns the command token under the cursor.
func (c *Context) Command() (*parser.Token, bool) {
	if c.Leaf == nil || c.Leaf.Token.Kind != parser.TokenCommandName {
		return nil, false
	}
	return c.Leaf.Token, true
}

// Key returns the key the cursor is in.
func (c *Context) Key() (latex.Key, bool) {
	if c.Leaf == nil {
		return latex.Key{}, false
	}
	return latex.AsKey(c.Leaf.Parent)
}

func (c *Context) resolveBibtex() {
	left, right := c.Document.Bib.LeafAt(c.Offset)
	leaf := selectLeaf(left, right, func(n *bibparser.Node) bool {
		switch n.Token.Kind {
		case bibparser.TokenWord, bibparser.TokenType, bibparser.TokenCommandName:
			return true
		}
		return false
	})
	if leaf == nil {
		return
	}
	c.BibLeaf = leaf
	tok := leaf.Token
	switch tok.Kind {
	case bibparser.TokenType:
		start := tok.Span.Start + 1
		c.Pattern = c.typed(start)
		c.Range = Range{Start: start, End: tok.Span.End}
	case bibparser.TokenWord, bibparser.TokenCommandName:
		c.Pattern = c.typed(tok.Span.Start)
		c.Range = Range{Start: tok.Span.Start, End: tok.Span.End}
	}
}

// MatchText strips the backslash of a command pattern.
func (c *Context) MatchText() string {
	if c.Leaf != nil && c.Leaf.Token.Kind == parser.TokenCommandName {
		return strings.TrimPrefix(c.Pattern, `\`)
	}
	return c.Pattern
}

// Trees returns the LaTeX trees of the related documents.
func (c *Context) Trees() []*parser.Node {
	var trees []*parser.Node
	for _, doc := range c.Related {
		if doc.Tree != nil {
			trees = append(trees, doc.Tree)
		}
	}
	return trees
}

// Symbols returns the discovered symbols of the related documents.
func (c *Context) Symbols() []*latex.Symbols {
	var all []*latex.Symbols
	for _, doc := range c.Related {
		if doc.Symbols != nil {
			all = append(all, doc.Symbols)
		}
	}
	return all
}

// Components returns the knowledge base components loaded by the related
// documents, the kernel first.
func (c *Context) Components() []*knowledge.Component {
	var files []string
	for _, symbols := range c.Symbols() {
		for _, pkg := range symbols.Packages {
			files = append(files, pkg.Name+".sty")
		}
		for _, cls := range symbols.Classes {
			files = append(files, cls.Name+".cls")
		}
	}
	return c.Knowledge.ComponentsFor(files)
}
