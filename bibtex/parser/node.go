package parser

import "strings"

type NodeKind int

const (
	KindError NodeKind = iota
	KindToken
	KindRoot
	KindJunk
	KindPreamble
	KindStringDef
	KindEntry
	KindField
	KindLiteral
	KindCurlyGroup
	KindQuoteGroup
	KindJoin
	KindCommand
)

var nodeKindNames = map[NodeKind]string{
	KindError:      "Error",
	KindToken:      "Token",
	KindRoot:       "Root",
	KindJunk:       "Junk",
	KindPreamble:   "Preamble",
	KindStringDef:  "StringDef",
	KindEntry:      "Entry",
	KindField:      "Field",
	KindLiteral:    "Literal",
	KindCurlyGroup: "CurlyGroup",
	KindQuoteGroup: "QuoteGroup",
	KindJoin:       "Join",
	KindCommand:    "Command",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsValue reports whether the kind can appear as a field value.
func (k NodeKind) IsValue() bool {
	switch k {
	case KindLiteral, KindCurlyGroup, KindQuoteGroup, KindJoin, KindCommand:
		return true
	}
	return false
}

type Node struct {
	Kind     NodeKind
	Span     Span
	Children []*Node
	Parent   *Node
	Token    *Token
}

func (n *Node) AddChild(child *Node) {
	if child != nil {
		child.Parent = n
		n.Children = append(n.Children, child)
	}
}

func (n *Node) IsToken() bool {
	return n.Kind == KindToken && n.Token != nil
}

func (n *Node) FirstChildOfKind(kind NodeKind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

func (n *Node) ChildrenOfKind(kind NodeKind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
	}
	return result
}

func (n *Node) FirstTokenOfKind(kind TokenKind) *Token {
	for _, child := range n.Children {
		if child.IsToken() && child.Token.Kind == kind {
			return child.Token
		}
	}
	return nil
}

func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

func (n *Node) Leaves() []*Token {
	var result []*Token
	n.Walk(func(node *Node) bool {
		if node.IsToken() {
			result = append(result, node.Token)
		}
		return true
	})
	return result
}

func (n *Node) Text() string {
	var sb strings.Builder
	for _, tok := range n.Leaves() {
		sb.WriteString(tok.Literal)
	}
	return sb.String()
}

// Ancestor returns the closest ancestor of the given kind.
func (n *Node) Ancestor(kind NodeKind) *Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Kind == kind {
			return p
		}
	}
	return nil
}

// LeafAt returns the leaves touching offset, following the same rules as
// the LaTeX tree: left strictly contains or ends at offset, right starts at
// it.
func (n *Node) LeafAt(offset int) (left, right *Node) {
	n.Walk(func(node *Node) bool {
		if !node.Span.Contains(offset) {
			return false
		}
		if !node.IsToken() {
			return true
		}
		switch {
		case node.Span.Start < offset:
			left = node
		case node.Span.Start == offset && right == nil:
			right = node
		}
		return true
	})
	return left, right
}

func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb, 0)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder, indent int) {
	sb.WriteString(strings.Repeat("  ", indent))
	sb.WriteString(n.Kind.String())
	if n.Token != nil {
		sb.WriteString(" " + n.Token.Kind.String() + " '" + strings.NewReplacer("\n", `\n`, "\r", `\r`).Replace(n.Token.Literal) + "'")
	}
	sb.WriteString("\n")
	for _, child := range n.Children {
		child.write(sb, indent+1)
	}
}
