package parser

import "strings"

type NodeKind int

const (
	KindError NodeKind = iota
	KindToken
	KindRoot

	// Text and key/value structure
	KindText
	KindKey
	KindValue
	KindKeyValuePair
	KindKeyValueBody
	KindPath

	// Groups
	KindCurlyGroup
	KindCurlyGroupWord
	KindCurlyGroupWordList
	KindCurlyGroupCommand
	KindCurlyGroupKeyValue
	KindCurlyGroupPath
	KindCurlyGroupPathList
	KindBrackGroup
	KindBrackGroupWord
	KindBrackGroupKeyValue
	KindMixedGroup

	// Math
	KindFormula
	KindEquation

	// Commands
	KindGenericCommand
	KindEnvironment
	KindBegin
	KindEnd
	KindPart
	KindChapter
	KindSection
	KindSubsection
	KindSubsubsection
	KindParagraph
	KindSubparagraph
	KindEnumItem
	KindCaption
	KindCitation
	KindPackageInclude
	KindClassInclude
	KindLatexInclude
	KindBiblatexInclude
	KindBibtexInclude
	KindGraphicsInclude
	KindSvgInclude
	KindInkscapeInclude
	KindVerbatimInclude
	KindImport
	KindLabelDefinition
	KindLabelReference
	KindLabelReferenceRange
	KindLabelNumber
	KindOldCommandDefinition
	KindNewCommandDefinition
	KindMathOperator
	KindGlossaryEntryDefinition
	KindGlossaryEntryReference
	KindAcronymDefinition
	KindAcronymDeclaration
	KindAcronymReference
	KindTheoremDefinition
	KindColorReference
	KindColorDefinition
	KindColorSetDefinition
	KindTikzLibraryImport
	KindEnvironmentDefinition
	KindGraphicsPath
	KindBlockComment
	KindBibItem
)

var nodeKindNames = map[NodeKind]string{
	KindError:                   "Error",
	KindToken:                   "Token",
	KindRoot:                    "Root",
	KindText:                    "Text",
	KindKey:                     "Key",
	KindValue:                   "Value",
	KindKeyValuePair:            "KeyValuePair",
	KindKeyValueBody:            "KeyValueBody",
	KindPath:                    "Path",
	KindCurlyGroup:              "CurlyGroup",
	KindCurlyGroupWord:          "CurlyGroupWord",
	KindCurlyGroupWordList:      "CurlyGroupWordList",
	KindCurlyGroupCommand:       "CurlyGroupCommand",
	KindCurlyGroupKeyValue:      "CurlyGroupKeyValue",
	KindCurlyGroupPath:          "CurlyGroupPath",
	KindCurlyGroupPathList:      "CurlyGroupPathList",
	KindBrackGroup:              "BrackGroup",
	KindBrackGroupWord:          "BrackGroupWord",
	KindBrackGroupKeyValue:      "BrackGroupKeyValue",
	KindMixedGroup:              "MixedGroup",
	KindFormula:                 "Formula",
	KindEquation:                "Equation",
	KindGenericCommand:          "GenericCommand",
	KindEnvironment:             "Environment",
	KindBegin:                   "Begin",
	KindEnd:                     "End",
	KindPart:                    "Part",
	KindChapter:                 "Chapter",
	KindSection:                 "Section",
	KindSubsection:              "Subsection",
	KindSubsubsection:           "Subsubsection",
	KindParagraph:               "Paragraph",
	KindSubparagraph:            "Subparagraph",
	KindEnumItem:                "EnumItem",
	KindCaption:                 "Caption",
	KindCitation:                "Citation",
	KindPackageInclude:          "PackageInclude",
	KindClassInclude:            "ClassInclude",
	KindLatexInclude:            "LatexInclude",
	KindBiblatexInclude:         "BiblatexInclude",
	KindBibtexInclude:           "BibtexInclude",
	KindGraphicsInclude:         "GraphicsInclude",
	KindSvgInclude:              "SvgInclude",
	KindInkscapeInclude:         "InkscapeInclude",
	KindVerbatimInclude:         "VerbatimInclude",
	KindImport:                  "Import",
	KindLabelDefinition:         "LabelDefinition",
	KindLabelReference:          "LabelReference",
	KindLabelReferenceRange:     "LabelReferenceRange",
	KindLabelNumber:             "LabelNumber",
	KindOldCommandDefinition:    "OldCommandDefinition",
	KindNewCommandDefinition:    "NewCommandDefinition",
	KindMathOperator:            "MathOperator",
	KindGlossaryEntryDefinition: "GlossaryEntryDefinition",
	KindGlossaryEntryReference:  "GlossaryEntryReference",
	KindAcronymDefinition:       "AcronymDefinition",
	KindAcronymDeclaration:      "AcronymDeclaration",
	KindAcronymReference:        "AcronymReference",
	KindTheoremDefinition:       "TheoremDefinition",
	KindColorReference:          "ColorReference",
	KindColorDefinition:         "ColorDefinition",
	KindColorSetDefinition:      "ColorSetDefinition",
	KindTikzLibraryImport:       "TikzLibraryImport",
	KindEnvironmentDefinition:   "EnvironmentDefinition",
	KindGraphicsPath:            "GraphicsPath",
	KindBlockComment:            "BlockComment",
	KindBibItem:                 "BibItem",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsSection reports whether the kind is one of the sectioning commands.
func (k NodeKind) IsSection() bool {
	return k >= KindPart && k <= KindSubparagraph
}

type Error struct {
	Message string
	Got     *Token
}

// Node is an element of the concrete syntax tree. Leaves have Kind KindToken
// and a non-nil Token; every other node derives its span from its children.
type Node struct {
	Kind     NodeKind
	Span     Span
	Children []*Node
	Parent   *Node
	Token    *Token
	Error    *Error
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

// FirstTokenOfKind returns the first direct token child of the given kind.
func (n *Node) FirstTokenOfKind(kind TokenKind) *Token {
	for _, child := range n.Children {
		if child.IsToken() && child.Token.Kind == kind {
			return child.Token
		}
	}
	return nil
}

func (n *Node) TokenLiteral() string {
	if n.Token != nil {
		return n.Token.Literal
	}
	return ""
}

// Leaves returns the token leaves below n in source order.
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

// Text concatenates the literal text of all leaves below n.
func (n *Node) Text() string {
	var sb strings.Builder
	for _, tok := range n.Leaves() {
		sb.WriteString(tok.Literal)
	}
	return sb.String()
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Descendants returns every node below n of the given kind, in source order.
func (n *Node) Descendants(kind NodeKind) []*Node {
	var result []*Node
	n.Walk(func(node *Node) bool {
		if node != n && node.Kind == kind {
			result = append(result, node)
		}
		return true
	})
	return result
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

// LeafAt returns the token leaves touching offset. A leaf strictly
// containing offset, or ending at it, is returned as left; a leaf starting at
// offset is returned as right.
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
	return n.stringIndent(0, false)
}

func (n *Node) StringWithPositions() string {
	return n.stringIndent(0, true)
}

func (n *Node) stringIndent(indent int, showPositions bool) string {
	prefix := strings.Repeat("  ", indent)

	result := prefix + n.Kind.String()
	if showPositions {
		result += " [" + n.Span.String() + "]"
	}
	if n.Token != nil {
		result += " " + n.Token.Kind.String() + " " + quote(n.Token.Literal)
	}
	if n.Error != nil {
		result += " ERROR: " + n.Error.Message
	}
	result += "\n"

	for _, child := range n.Children {
		result += child.stringIndent(indent+1, showPositions)
	}
	return result
}

func quote(s string) string {
	r := strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`)
	return "'" + r.Replace(s) + "'"
}
