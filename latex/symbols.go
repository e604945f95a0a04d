package latex

import (
	"github.com/dhamidi/texlyzer/latex/parser"
)

type SymbolKind int

const (
	SymbolCommand SymbolKind = iota
	SymbolCommandDefinition
	SymbolMathOperator
	SymbolEnvironment
	SymbolEnvironmentDefinition
	SymbolTheorem
	SymbolLabel
	SymbolColor
	SymbolGlossaryEntry
	SymbolAcronym
	SymbolBibItem
	SymbolPackage
	SymbolClass
	SymbolTikzLibrary
)

var symbolKindNames = map[SymbolKind]string{
	SymbolCommand:               "Command",
	SymbolCommandDefinition:     "CommandDefinition",
	SymbolMathOperator:          "MathOperator",
	SymbolEnvironment:           "Environment",
	SymbolEnvironmentDefinition: "EnvironmentDefinition",
	SymbolTheorem:               "Theorem",
	SymbolLabel:                 "Label",
	SymbolColor:                 "Color",
	SymbolGlossaryEntry:         "GlossaryEntry",
	SymbolAcronym:               "Acronym",
	SymbolBibItem:               "BibItem",
	SymbolPackage:               "Package",
	SymbolClass:                 "Class",
	SymbolTikzLibrary:           "TikzLibrary",
}

func (k SymbolKind) String() string {
	if name, ok := symbolKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Symbol is a name declared or used in a document.
type Symbol struct {
	Kind   SymbolKind
	Name   string
	Span   parser.Span
	Detail string
	Node   *parser.Node
}

// Symbols are the names a single document contributes. Together with the
// knowledge base they form the two tiers consulted by completion.
type Symbols struct {
	Commands     []Symbol
	Environments []Symbol
	Theorems     []Symbol
	Labels       []Symbol
	Colors       []Symbol
	Glossary     []Symbol
	Acronyms     []Symbol
	BibItems     []Symbol
	Packages     []Symbol
	Classes      []Symbol
	TikzLibs     []Symbol
	Includes     []Include
	GraphicsDirs []string
}

// CollectSymbols walks the tree once and records every declaration and
// every command or environment usage.
func CollectSymbols(root *parser.Node) *Symbols {
	s := &Symbols{}
	if root == nil {
		return s
	}
	root.Walk(func(n *parser.Node) bool {
		s.visit(n)
		return true
	})
	return s
}

func keySymbol(kind SymbolKind, key Key, n *parser.Node, detail string) Symbol {
	return Symbol{Kind: kind, Name: key.Text(), Span: key.Span(), Node: n, Detail: detail}
}

func (s *Symbols) visit(n *parser.Node) {
	switch n.Kind {
	case parser.KindToken:
		tok := n.Token
		if tok.Kind == parser.TokenCommandName && isUsageCandidate(tok) {
			s.Commands = append(s.Commands, Symbol{Kind: SymbolCommand, Name: tok.CommandName(), Span: tok.Span, Node: n})
		}

	case parser.KindEnvironment:
		if key, ok := (Environment{n}).Name(); ok && key.Text() != "" {
			s.Environments = append(s.Environments, keySymbol(SymbolEnvironment, key, n, ""))
		}

	case parser.KindNewCommandDefinition, parser.KindOldCommandDefinition, parser.KindMathOperator:
		def := CommandDefinition{n}
		if name := def.Name(); name != nil && name.CommandName() != "" {
			kind := SymbolCommandDefinition
			if n.Kind == parser.KindMathOperator {
				kind = SymbolMathOperator
			}
			s.Commands = append(s.Commands, Symbol{Kind: kind, Name: name.CommandName(), Span: name.Span, Node: n})
		}

	case parser.KindEnvironmentDefinition:
		if key, ok := (EnvironmentDefinition{n}).Name(); ok {
			s.Environments = append(s.Environments, keySymbol(SymbolEnvironmentDefinition, key, n, ""))
		}

	case parser.KindTheoremDefinition:
		def := TheoremDefinition{n}
		for _, key := range def.Names() {
			s.Theorems = append(s.Theorems, keySymbol(SymbolTheorem, key, n, def.Description()))
		}

	case parser.KindLabelDefinition:
		if key, ok := (LabelDefinition{n}).Name(); ok {
			s.Labels = append(s.Labels, keySymbol(SymbolLabel, key, n, ""))
		}

	case parser.KindColorDefinition:
		def := ColorDefinition{n}
		if key, ok := def.Name(); ok {
			detail := ""
			if model, ok := def.Model(); ok {
				detail = model.Text()
			}
			s.Colors = append(s.Colors, keySymbol(SymbolColor, key, n, detail))
		}

	case parser.KindColorSetDefinition:
		for _, name := range (ColorSetDefinition{n}).Names() {
			s.Colors = append(s.Colors, Symbol{Kind: SymbolColor, Name: name, Span: n.Span, Node: n})
		}

	case parser.KindGlossaryEntryDefinition:
		def := GlossaryEntryDefinition{n}
		if key, ok := def.Name(); ok {
			s.Glossary = append(s.Glossary, keySymbol(SymbolGlossaryEntry, key, n, def.Description()))
		}

	case parser.KindAcronymDefinition, parser.KindAcronymDeclaration:
		def := AcronymDefinition{n}
		if key, ok := def.Name(); ok {
			s.Acronyms = append(s.Acronyms, keySymbol(SymbolAcronym, key, n, def.Long()))
		}

	case parser.KindBibItem:
		if key, ok := (BibItem{n}).Name(); ok {
			s.BibItems = append(s.BibItems, keySymbol(SymbolBibItem, key, n, ""))
		}

	case parser.KindTikzLibraryImport:
		for _, key := range (TikzLibraryImport{n}).Names() {
			s.TikzLibs = append(s.TikzLibs, keySymbol(SymbolTikzLibrary, key, n, ""))
		}

	case parser.KindGraphicsPath:
		for _, path := range (GraphicsPath{n}).Paths() {
			s.GraphicsDirs = append(s.GraphicsDirs, path.Text())
		}
	}

	if include, ok := AsInclude(n); ok {
		s.Includes = append(s.Includes, include)
		kind := SymbolPackage
		switch n.Kind {
		case parser.KindClassInclude:
			kind = SymbolClass
		case parser.KindPackageInclude:
		default:
			return
		}
		for _, path := range include.Paths() {
			sym := Symbol{Kind: kind, Name: path.Text(), Span: path.Span(), Node: n}
			if kind == SymbolClass {
				s.Classes = append(s.Classes, sym)
			} else {
				s.Packages = append(s.Packages, sym)
			}
		}
	}
}

// isUsageCandidate filters command tokens that make sense as completion
// suggestions: named, generic commands.
func isUsageCandidate(tok *parser.Token) bool {
	if tok.Command != parser.CommandGeneric {
		return false
	}
	name := tok.CommandName()
	if name == "" {
		return false
	}
	c := name[0]
	return c == '@' || c >= 0x80 || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// DefinesTheorem reports whether any of the symbol sets declares name as a
// theorem-like environment, returning its description.
func DefinesTheorem(all []*Symbols, name string) (string, bool) {
	for _, s := range all {
		if s == nil {
			continue
		}
		for _, t := range s.Theorems {
			if t.Name == name {
				return t.Detail, true
			}
		}
	}
	return "", false
}
