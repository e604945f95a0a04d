package latex

import (
	"strings"

	"github.com/dhamidi/texlyzer/latex/parser"
)

type Environment struct{ Node *parser.Node }

func AsEnvironment(n *parser.Node) (Environment, bool) {
	if n == nil || n.Kind != parser.KindEnvironment {
		return Environment{}, false
	}
	return Environment{n}, true
}

func (e Environment) Begin() *parser.Node {
	if e.Node == nil {
		return nil
	}
	return e.Node.FirstChildOfKind(parser.KindBegin)
}

func (e Environment) End() *parser.Node {
	if e.Node == nil {
		return nil
	}
	return e.Node.FirstChildOfKind(parser.KindEnd)
}

// Name returns the name given to \begin.
func (e Environment) Name() (Key, bool) {
	return BeginName(e.Begin())
}

// BeginName returns the environment name of a Begin or End node.
func BeginName(n *parser.Node) (Key, bool) {
	if n == nil || (n.Kind != parser.KindBegin && n.Kind != parser.KindEnd) {
		return Key{}, false
	}
	return GroupKey(n.FirstChildOfKind(parser.KindCurlyGroupWord))
}

// Options returns the bracket group following \begin{...}.
func (e Environment) Options() *parser.Node {
	begin := e.Begin()
	if begin == nil {
		return nil
	}
	return begin.FirstChildOfKind(parser.KindBrackGroup)
}

// Section views any of the sectioning nodes from \part to \subparagraph.
type Section struct{ Node *parser.Node }

func AsSection(n *parser.Node) (Section, bool) {
	if n == nil || !n.Kind.IsSection() {
		return Section{}, false
	}
	return Section{n}, true
}

func (s Section) Title() string {
	if s.Node == nil {
		return ""
	}
	return Content(s.Node.FirstChildOfKind(parser.KindCurlyGroup))
}

func (s Section) ShortTitle() string {
	if s.Node == nil {
		return ""
	}
	return Content(s.Node.FirstChildOfKind(parser.KindBrackGroup))
}

var sectionNames = map[parser.NodeKind]string{
	parser.KindPart:          "Part",
	parser.KindChapter:       "Chapter",
	parser.KindSection:       "Section",
	parser.KindSubsection:    "Subsection",
	parser.KindSubsubsection: "Subsubsection",
	parser.KindParagraph:     "Paragraph",
	parser.KindSubparagraph:  "Subparagraph",
}

// Label returns the human readable name of the section level.
func (s Section) Label() string {
	if s.Node == nil {
		return ""
	}
	return sectionNames[s.Node.Kind]
}

type EnumItem struct{ Node *parser.Node }

func AsEnumItem(n *parser.Node) (EnumItem, bool) {
	if n == nil || n.Kind != parser.KindEnumItem {
		return EnumItem{}, false
	}
	return EnumItem{n}, true
}

// Label returns the content of \item[...], if any.
func (i EnumItem) Label() string {
	if i.Node == nil {
		return ""
	}
	return Content(i.Node.FirstChildOfKind(parser.KindBrackGroup))
}

type Caption struct{ Node *parser.Node }

func AsCaption(n *parser.Node) (Caption, bool) {
	if n == nil || n.Kind != parser.KindCaption {
		return Caption{}, false
	}
	return Caption{n}, true
}

func (c Caption) Short() string {
	if c.Node == nil {
		return ""
	}
	return Content(c.Node.FirstChildOfKind(parser.KindBrackGroup))
}

func (c Caption) Long() string {
	if c.Node == nil {
		return ""
	}
	return Content(c.Node.FirstChildOfKind(parser.KindCurlyGroup))
}

type Citation struct{ Node *parser.Node }

func AsCitation(n *parser.Node) (Citation, bool) {
	if n == nil || n.Kind != parser.KindCitation {
		return Citation{}, false
	}
	return Citation{n}, true
}

func (c Citation) KeyList() *parser.Node {
	if c.Node == nil {
		return nil
	}
	return c.Node.FirstChildOfKind(parser.KindCurlyGroupWordList)
}

func (c Citation) Keys() []Key {
	return GroupKeys(c.KeyList())
}

// Include views the package, class, file, bibliography and graphics
// include commands.
type Include struct{ Node *parser.Node }

var includeKinds = map[parser.NodeKind]bool{
	parser.KindPackageInclude:  true,
	parser.KindClassInclude:    true,
	parser.KindLatexInclude:    true,
	parser.KindBiblatexInclude: true,
	parser.KindBibtexInclude:   true,
	parser.KindGraphicsInclude: true,
	parser.KindSvgInclude:      true,
	parser.KindInkscapeInclude: true,
	parser.KindVerbatimInclude: true,
}

func AsInclude(n *parser.Node) (Include, bool) {
	if n == nil || !includeKinds[n.Kind] {
		return Include{}, false
	}
	return Include{n}, true
}

func (i Include) PathGroup() *parser.Node {
	if i.Node == nil {
		return nil
	}
	if g := i.Node.FirstChildOfKind(parser.KindCurlyGroupPathList); g != nil {
		return g
	}
	return i.Node.FirstChildOfKind(parser.KindCurlyGroupPath)
}

func (i Include) Paths() []Path {
	return GroupPaths(i.PathGroup())
}

func (i Include) Options() *parser.Node {
	if i.Node == nil {
		return nil
	}
	return i.Node.FirstChildOfKind(parser.KindBrackGroupKeyValue)
}

type Import struct{ Node *parser.Node }

func AsImport(n *parser.Node) (Import, bool) {
	if n == nil || n.Kind != parser.KindImport {
		return Import{}, false
	}
	return Import{n}, true
}

func (i Import) Directory() (Key, bool) {
	groups := i.groups()
	if len(groups) < 1 {
		return Key{}, false
	}
	return GroupKey(groups[0])
}

func (i Import) File() (Key, bool) {
	groups := i.groups()
	if len(groups) < 2 {
		return Key{}, false
	}
	return GroupKey(groups[1])
}

func (i Import) groups() []*parser.Node {
	if i.Node == nil {
		return nil
	}
	return i.Node.ChildrenOfKind(parser.KindCurlyGroupWord)
}

// LabelDefinition views \label{name}.
type LabelDefinition struct{ Node *parser.Node }

func AsLabelDefinition(n *parser.Node) (LabelDefinition, bool) {
	if n == nil || n.Kind != parser.KindLabelDefinition {
		return LabelDefinition{}, false
	}
	return LabelDefinition{n}, true
}

func (l LabelDefinition) Name() (Key, bool) {
	if l.Node == nil {
		return Key{}, false
	}
	return GroupKey(l.Node.FirstChildOfKind(parser.KindCurlyGroupWord))
}

type LabelReference struct{ Node *parser.Node }

func AsLabelReference(n *parser.Node) (LabelReference, bool) {
	if n == nil || n.Kind != parser.KindLabelReference {
		return LabelReference{}, false
	}
	return LabelReference{n}, true
}

func (l LabelReference) Names() []Key {
	if l.Node == nil {
		return nil
	}
	return GroupKeys(l.Node.FirstChildOfKind(parser.KindCurlyGroupWordList))
}

type LabelReferenceRange struct{ Node *parser.Node }

func AsLabelReferenceRange(n *parser.Node) (LabelReferenceRange, bool) {
	if n == nil || n.Kind != parser.KindLabelReferenceRange {
		return LabelReferenceRange{}, false
	}
	return LabelReferenceRange{n}, true
}

func (l LabelReferenceRange) From() (Key, bool) {
	return l.group(0)
}

func (l LabelReferenceRange) To() (Key, bool) {
	return l.group(1)
}

func (l LabelReferenceRange) group(i int) (Key, bool) {
	if l.Node == nil {
		return Key{}, false
	}
	groups := l.Node.ChildrenOfKind(parser.KindCurlyGroupWord)
	if i >= len(groups) {
		return Key{}, false
	}
	return GroupKey(groups[i])
}

// LabelNumber views the \newlabel{name}{{number}{page}...} entries written
// to .aux files.
type LabelNumber struct{ Node *parser.Node }

func AsLabelNumber(n *parser.Node) (LabelNumber, bool) {
	if n == nil || n.Kind != parser.KindLabelNumber {
		return LabelNumber{}, false
	}
	return LabelNumber{n}, true
}

func (l LabelNumber) Name() (Key, bool) {
	if l.Node == nil {
		return Key{}, false
	}
	return GroupKey(l.Node.FirstChildOfKind(parser.KindCurlyGroupWord))
}

func (l LabelNumber) Number() string {
	if l.Node == nil {
		return ""
	}
	outer := l.Node.FirstChildOfKind(parser.KindCurlyGroup)
	if outer == nil {
		return ""
	}
	return Content(outer.FirstChildOfKind(parser.KindCurlyGroup))
}

// CommandDefinition views \newcommand and \DeclareMathOperator.
type CommandDefinition struct{ Node *parser.Node }

func AsCommandDefinition(n *parser.Node) (CommandDefinition, bool) {
	if n == nil {
		return CommandDefinition{}, false
	}
	switch n.Kind {
	case parser.KindNewCommandDefinition, parser.KindMathOperator, parser.KindOldCommandDefinition:
		return CommandDefinition{n}, true
	}
	return CommandDefinition{}, false
}

// Name returns the defined command, either braced or bare.
func (d CommandDefinition) Name() *parser.Token {
	if d.Node == nil {
		return nil
	}
	if g := d.Node.FirstChildOfKind(parser.KindCurlyGroupCommand); g != nil {
		return g.FirstTokenOfKind(parser.TokenCommandName)
	}
	for i, child := range d.Node.Children {
		if i > 0 && child.IsToken() && child.Token.Kind == parser.TokenCommandName {
			return child.Token
		}
	}
	return nil
}

func (d CommandDefinition) Body() *parser.Node {
	if d.Node == nil {
		return nil
	}
	return d.Node.FirstChildOfKind(parser.KindCurlyGroup)
}

// EnvironmentDefinition views \newenvironment{name}...
type EnvironmentDefinition struct{ Node *parser.Node }

func AsEnvironmentDefinition(n *parser.Node) (EnvironmentDefinition, bool) {
	if n == nil || n.Kind != parser.KindEnvironmentDefinition {
		return EnvironmentDefinition{}, false
	}
	return EnvironmentDefinition{n}, true
}

func (d EnvironmentDefinition) Name() (Key, bool) {
	if d.Node == nil {
		return Key{}, false
	}
	return GroupKey(d.Node.FirstChildOfKind(parser.KindCurlyGroupWord))
}

// TheoremDefinition views \newtheorem and \declaretheorem.
type TheoremDefinition struct{ Node *parser.Node }

func AsTheoremDefinition(n *parser.Node) (TheoremDefinition, bool) {
	if n == nil || n.Kind != parser.KindTheoremDefinition {
		return TheoremDefinition{}, false
	}
	return TheoremDefinition{n}, true
}

// Names returns the defined environment names. \declaretheorem accepts a
// list of names.
func (d TheoremDefinition) Names() []Key {
	if d.Node == nil {
		return nil
	}
	if list := d.Node.FirstChildOfKind(parser.KindCurlyGroupWordList); list != nil {
		return GroupKeys(list)
	}
	if k, ok := GroupKey(d.Node.FirstChildOfKind(parser.KindCurlyGroupWord)); ok {
		return []Key{k}
	}
	return nil
}

// Description returns the printed theorem name, e.g. "Lemma".
func (d TheoremDefinition) Description() string {
	if d.Node == nil {
		return ""
	}
	if g := d.Node.FirstChildOfKind(parser.KindCurlyGroup); g != nil {
		return Content(g)
	}
	for _, options := range d.Node.ChildrenOfKind(parser.KindBrackGroupKeyValue) {
		for _, key := range []string{"name", "title"} {
			if v, ok := Lookup(options, key); ok && v != "" {
				return v
			}
		}
	}
	return ""
}

type ColorReference struct{ Node *parser.Node }

func AsColorReference(n *parser.Node) (ColorReference, bool) {
	if n == nil || n.Kind != parser.KindColorReference {
		return ColorReference{}, false
	}
	return ColorReference{n}, true
}

func (c ColorReference) Name() (Key, bool) {
	if c.Node == nil {
		return Key{}, false
	}
	return GroupKey(c.Node.FirstChildOfKind(parser.KindCurlyGroupWord))
}

// ColorDefinition views \definecolor{name}{model}{spec}.
type ColorDefinition struct{ Node *parser.Node }

func AsColorDefinition(n *parser.Node) (ColorDefinition, bool) {
	if n == nil || n.Kind != parser.KindColorDefinition {
		return ColorDefinition{}, false
	}
	return ColorDefinition{n}, true
}

func (c ColorDefinition) Name() (Key, bool) {
	return c.group(0)
}

func (c ColorDefinition) Model() (Key, bool) {
	return c.group(1)
}

func (c ColorDefinition) Spec() string {
	if c.Node == nil {
		return ""
	}
	return Content(c.Node.FirstChildOfKind(parser.KindCurlyGroup))
}

func (c ColorDefinition) group(i int) (Key, bool) {
	if c.Node == nil {
		return Key{}, false
	}
	groups := c.Node.ChildrenOfKind(parser.KindCurlyGroupWord)
	if i >= len(groups) {
		return Key{}, false
	}
	return GroupKey(groups[i])
}

type ColorSetDefinition struct{ Node *parser.Node }

func AsColorSetDefinition(n *parser.Node) (ColorSetDefinition, bool) {
	if n == nil || n.Kind != parser.KindColorSetDefinition {
		return ColorSetDefinition{}, false
	}
	return ColorSetDefinition{n}, true
}

func (c ColorSetDefinition) Models() []Key {
	if c.Node == nil {
		return nil
	}
	return GroupKeys(c.Node.FirstChildOfKind(parser.KindCurlyGroupWordList))
}

// Names returns the color names listed in the set specification
// "name1,spec1;name2,spec2".
func (c ColorSetDefinition) Names() []string {
	if c.Node == nil {
		return nil
	}
	spec := Content(c.Node.FirstChildOfKind(parser.KindCurlyGroup))
	var names []string
	for _, entry := range strings.Split(spec, ";") {
		name, _, _ := strings.Cut(entry, ",")
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

type TikzLibraryImport struct{ Node *parser.Node }

func AsTikzLibraryImport(n *parser.Node) (TikzLibraryImport, bool) {
	if n == nil || n.Kind != parser.KindTikzLibraryImport {
		return TikzLibraryImport{}, false
	}
	return TikzLibraryImport{n}, true
}

func (t TikzLibraryImport) Names() []Key {
	if t.Node == nil {
		return nil
	}
	return GroupKeys(t.Node.FirstChildOfKind(parser.KindCurlyGroupWordList))
}

// GlossaryEntryDefinition views \newglossaryentry{name}{options}.
type GlossaryEntryDefinition struct{ Node *parser.Node }

func AsGlossaryEntryDefinition(n *parser.Node) (GlossaryEntryDefinition, bool) {
	if n == nil || n.Kind != parser.KindGlossaryEntryDefinition {
		return GlossaryEntryDefinition{}, false
	}
	return GlossaryEntryDefinition{n}, true
}

func (g GlossaryEntryDefinition) Name() (Key, bool) {
	if g.Node == nil {
		return Key{}, false
	}
	return GroupKey(g.Node.FirstChildOfKind(parser.KindCurlyGroupWord))
}

func (g GlossaryEntryDefinition) Description() string {
	if g.Node == nil {
		return ""
	}
	v, _ := Lookup(g.Node.FirstChildOfKind(parser.KindCurlyGroupKeyValue), "description")
	return v
}

// AcronymDefinition views \newacronym{name}{short}{long} and
// \DeclareAcronym{name}{options}.
type AcronymDefinition struct{ Node *parser.Node }

func AsAcronymDefinition(n *parser.Node) (AcronymDefinition, bool) {
	if n == nil || (n.Kind != parser.KindAcronymDefinition && n.Kind != parser.KindAcronymDeclaration) {
		return AcronymDefinition{}, false
	}
	return AcronymDefinition{n}, true
}

func (a AcronymDefinition) Name() (Key, bool) {
	if a.Node == nil {
		return Key{}, false
	}
	return GroupKey(a.Node.FirstChildOfKind(parser.KindCurlyGroupWord))
}

func (a AcronymDefinition) Short() string {
	if a.Node == nil {
		return ""
	}
	if a.Node.Kind == parser.KindAcronymDeclaration {
		v, _ := Lookup(a.Node.FirstChildOfKind(parser.KindCurlyGroupKeyValue), "short")
		return v
	}
	groups := a.Node.ChildrenOfKind(parser.KindCurlyGroup)
	if len(groups) < 1 {
		return ""
	}
	return Content(groups[0])
}

func (a AcronymDefinition) Long() string {
	if a.Node == nil {
		return ""
	}
	if a.Node.Kind == parser.KindAcronymDeclaration {
		v, _ := Lookup(a.Node.FirstChildOfKind(parser.KindCurlyGroupKeyValue), "long")
		return v
	}
	groups := a.Node.ChildrenOfKind(parser.KindCurlyGroup)
	if len(groups) < 2 {
		return ""
	}
	return Content(groups[1])
}

// EntryReference views \gls{name} and \acrshort{name}.
type EntryReference struct{ Node *parser.Node }

func AsEntryReference(n *parser.Node) (EntryReference, bool) {
	if n == nil || (n.Kind != parser.KindGlossaryEntryReference && n.Kind != parser.KindAcronymReference) {
		return EntryReference{}, false
	}
	return EntryReference{n}, true
}

func (r EntryReference) Name() (Key, bool) {
	if r.Node == nil {
		return Key{}, false
	}
	return GroupKey(r.Node.FirstChildOfKind(parser.KindCurlyGroupWord))
}

type BibItem struct{ Node *parser.Node }

func AsBibItem(n *parser.Node) (BibItem, bool) {
	if n == nil || n.Kind != parser.KindBibItem {
		return BibItem{}, false
	}
	return BibItem{n}, true
}

func (b BibItem) Name() (Key, bool) {
	if b.Node == nil {
		return Key{}, false
	}
	return GroupKey(b.Node.FirstChildOfKind(parser.KindCurlyGroupWord))
}

// GraphicsPath views \graphicspath{{dir1/}{dir2/}}.
type GraphicsPath struct{ Node *parser.Node }

func AsGraphicsPath(n *parser.Node) (GraphicsPath, bool) {
	if n == nil || n.Kind != parser.KindGraphicsPath {
		return GraphicsPath{}, false
	}
	return GraphicsPath{n}, true
}

func (g GraphicsPath) Paths() []Path {
	if g.Node == nil {
		return nil
	}
	outer := g.Node.FirstChildOfKind(parser.KindCurlyGroup)
	if outer == nil {
		return nil
	}
	var result []Path
	for _, group := range outer.ChildrenOfKind(parser.KindCurlyGroupPath) {
		result = append(result, GroupPaths(group)...)
	}
	return result
}
