package completion

import (
	"strings"

	"github.com/dhamidi/texlyzer/knowledge"
	"github.com/dhamidi/texlyzer/latex"
	"github.com/dhamidi/texlyzer/latex/parser"
)

const userDefined = "user-defined"

func addBeginSnippet(c *Context, b *Builder) {
	if _, ok := c.Command(); !ok {
		return
	}
	b.Add(c.Range, BeginSnippetPayload{}, false)
}

// cursorKeySpan is the span of the key being typed, used to keep the word
// under the cursor from suggesting itself.
func (c *Context) cursorKeySpan() (parser.Span, bool) {
	key, ok := c.Key()
	if !ok {
		return parser.Span{}, false
	}
	return key.Span(), true
}

func addEnvironments(c *Context, b *Builder) {
	group, _, ok := c.GroupOf(parser.KindBegin, parser.KindEnd)
	if !ok || group.Kind != parser.KindCurlyGroupWord {
		return
	}
	current, hasCurrent := c.cursorKeySpan()

	for _, component := range c.Components() {
		for _, name := range component.Environments {
			b.Add(c.Range, EnvironmentPayload{Name: name, Detail: component.Detail()}, name == c.Preselect)
		}
	}

	for _, doc := range c.Related {
		if doc.Symbols == nil {
			continue
		}
		for _, sym := range doc.Symbols.Environments {
			if doc == c.Document && hasCurrent && sym.Span == current {
				continue
			}
			b.Add(c.Range, EnvironmentPayload{Name: sym.Name, Detail: userDefined}, sym.Name == c.Preselect)
		}
	}

	for _, symbols := range c.Symbols() {
		for _, sym := range symbols.Theorems {
			detail := sym.Detail
			if detail == "" {
				detail = userDefined
			}
			b.Add(c.Range, EnvironmentPayload{Name: sym.Name, Detail: detail}, sym.Name == c.Preselect)
		}
	}
}

func addCommands(c *Context, b *Builder) {
	tok, ok := c.Command()
	if !ok {
		return
	}

	for _, component := range c.Components() {
		for _, cmd := range component.Commands {
			b.Add(c.Range, CommandPayload{
				Name:   cmd.Name,
				Glyph:  cmd.Glyph,
				Image:  cmd.Image,
				Detail: component.Detail(),
			}, false)
		}
	}

	for _, doc := range c.Related {
		if doc.Symbols == nil {
			continue
		}
		for _, sym := range doc.Symbols.Commands {
			if doc == c.Document && sym.Span == tok.Span {
				continue
			}
			b.Add(c.Range, CommandPayload{Name: sym.Name, Detail: userDefined}, false)
		}
	}
}

func addLabels(c *Context, b *Builder) {
	group, command, ok := c.GroupOf(parser.KindLabelReference, parser.KindLabelReferenceRange)
	if !ok || !isNameGroup(group) {
		return
	}
	prefix := ""
	if tok := latex.CommandName(command); tok != nil {
		prefix = c.Syntax.LabelReferencePrefixes[tok.CommandName()]
	}

	renderer := latex.NewLabelRenderer(c.Syntax, c.Trees())
	for _, symbols := range c.Symbols() {
		for _, sym := range symbols.Labels {
			name := sym.Name
			if tok := latex.CommandName(sym.Node); tok != nil {
				name = c.Syntax.LabelDefinitionPrefixes[tok.CommandName()] + name
			}
			if !strings.HasPrefix(name, prefix) {
				continue
			}
			rendered := renderer.Render(sym.Node)
			b.Add(c.Range, LabelPayload{Name: strings.TrimPrefix(name, prefix), Rendered: rendered}, false)
		}
	}
}

func addGlossaryEntries(c *Context, b *Builder) {
	if group, _, ok := c.GroupOf(parser.KindGlossaryEntryReference); !ok || !isNameGroup(group) {
		return
	}
	for _, symbols := range c.Symbols() {
		for _, sym := range symbols.Glossary {
			b.Add(c.Range, GlossaryPayload{Name: sym.Name, Description: sym.Detail}, false)
		}
	}
}

func addAcronyms(c *Context, b *Builder) {
	if group, _, ok := c.GroupOf(parser.KindGlossaryEntryReference, parser.KindAcronymReference); !ok || !isNameGroup(group) {
		return
	}
	for _, symbols := range c.Symbols() {
		for _, sym := range symbols.Acronyms {
			b.Add(c.Range, GlossaryPayload{Name: sym.Name, Acronym: true, Description: sym.Detail}, false)
		}
	}
}

func addColors(c *Context, b *Builder) {
	group, _, ok := c.GroupOf(parser.KindColorReference)
	if !ok || group.Kind != parser.KindCurlyGroupWord {
		return
	}
	for _, name := range c.Knowledge.Colors {
		b.Add(c.Range, NamePayload{ItemKind: KindColor, Name: name, Detail: "built-in"}, false)
	}
	for _, symbols := range c.Symbols() {
		for _, sym := range symbols.Colors {
			b.Add(c.Range, NamePayload{ItemKind: KindColor, Name: sym.Name, Detail: sym.Detail}, false)
		}
	}
}

// isNameGroup reports whether group holds names rather than options.
func isNameGroup(group *parser.Node) bool {
	return group.Kind == parser.KindCurlyGroupWord || group.Kind == parser.KindCurlyGroupWordList
}

func isPathGroup(group *parser.Node) bool {
	return group.Kind == parser.KindCurlyGroupPath || group.Kind == parser.KindCurlyGroupPathList
}

// isColorModelGroup reports whether group is the model argument of
// \definecolor{name}{model}, \definecolorset{models} or \color[model].
func isColorModelGroup(group, command *parser.Node) bool {
	switch command.Kind {
	case parser.KindColorDefinition:
		groups := command.ChildrenOfKind(parser.KindCurlyGroupWord)
		return len(groups) > 1 && groups[1] == group
	case parser.KindColorSetDefinition:
		return group.Kind == parser.KindCurlyGroupWordList
	case parser.KindColorReference:
		return group.Kind == parser.KindBrackGroupWord
	}
	return false
}

func addColorModels(c *Context, b *Builder) {
	group, command, ok := c.GroupOf(parser.KindColorDefinition, parser.KindColorSetDefinition, parser.KindColorReference)
	if !ok || !isColorModelGroup(group, command) {
		return
	}
	for _, name := range c.Knowledge.ColorModels {
		b.Add(c.Range, NamePayload{ItemKind: KindColorModel, Name: name}, false)
	}
}

func addTikzLibraries(c *Context, b *Builder) {
	_, command, ok := c.GroupOf(parser.KindTikzLibraryImport)
	if !ok {
		return
	}
	names, detail := c.Knowledge.TikzLibraries, "tikz"
	if tok := latex.CommandName(command); tok != nil && tok.CommandName() == "usepgflibrary" {
		names, detail = c.Knowledge.PgfLibraries, "pgf"
	}
	for _, name := range names {
		b.Add(c.Range, NamePayload{ItemKind: KindTikzLibrary, Name: name, Detail: detail}, false)
	}
}

func addPackagesAndClasses(c *Context, b *Builder) {
	group, command, ok := c.GroupOf(parser.KindPackageInclude, parser.KindClassInclude)
	if !ok || !isPathGroup(group) {
		return
	}
	kind, names := KindPackage, c.Knowledge.Packages()
	if command.Kind == parser.KindClassInclude {
		kind, names = KindClass, c.Knowledge.Classes()
	}
	for _, name := range names {
		b.Add(c.Range, NamePayload{ItemKind: kind, Name: name}, false)
	}
}

// addArguments suggests the accepted values of a generic command argument,
// e.g. the page styles of \pagestyle.
func addArguments(c *Context, b *Builder) {
	group, command, ok := c.GroupOf(parser.KindGenericCommand)
	if !ok || group.Kind != parser.KindCurlyGroup {
		return
	}
	tok := latex.CommandName(command)
	if tok == nil {
		return
	}
	index := 0
	for _, child := range command.ChildrenOfKind(parser.KindCurlyGroup) {
		if child == group {
			break
		}
		index++
	}
	name := tok.CommandName()
	for _, value := range knowledge.CommandParameters(c.Components(), name, index) {
		b.Add(c.Range, ArgumentPayload{Value: value, Command: name}, false)
	}
}
