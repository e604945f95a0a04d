package completion

import (
	"github.com/dhamidi/texlyzer/knowledge"
	"github.com/dhamidi/texlyzer/latex"
)

// Range is a half-open byte range into the document being completed.
type Range struct {
	Start int
	End   int
}

func emptyRange(offset int) Range {
	return Range{Start: offset, End: offset}
}

// ItemKind classifies a candidate independently of the wire protocol.
type ItemKind int

const (
	KindCommand ItemKind = iota
	KindEnvironment
	KindBeginSnippet
	KindCitation
	KindLabel
	KindColor
	KindColorModel
	KindTikzLibrary
	KindPackage
	KindClass
	KindFile
	KindDirectory
	KindGlossaryEntry
	KindAcronym
	KindEntryType
	KindField
	KindString
	KindArgument
)

var itemKindNames = map[ItemKind]string{
	KindCommand:       "command",
	KindEnvironment:   "environment",
	KindBeginSnippet:  "snippet",
	KindCitation:      "citation",
	KindLabel:         "label",
	KindColor:         "color",
	KindColorModel:    "color model",
	KindTikzLibrary:   "tikz library",
	KindPackage:       "package",
	KindClass:         "class",
	KindFile:          "file",
	KindDirectory:     "directory",
	KindGlossaryEntry: "glossary entry",
	KindAcronym:       "acronym",
	KindEntryType:     "entry type",
	KindField:         "field",
	KindString:        "string",
	KindArgument:      "argument",
}

func (k ItemKind) String() string {
	if name, ok := itemKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Payload is what a candidate completes to.
type Payload interface {
	Kind() ItemKind
	Label() string
	// FilterText is matched against the typed pattern.
	FilterText() string
}

// Candidate is a registered, not yet ranked completion.
type Candidate struct {
	Range     Range
	Payload   Payload
	Preselect bool
	Score     int
}

type CommandPayload struct {
	Name  string
	Glyph string
	Image string
	// Detail names the files providing the command, "built-in" for the
	// kernel or "user-defined".
	Detail string
}

func (p CommandPayload) Kind() ItemKind     { return KindCommand }
func (p CommandPayload) Label() string      { return p.Name }
func (p CommandPayload) FilterText() string { return p.Name }

type EnvironmentPayload struct {
	Name   string
	Detail string
}

func (p EnvironmentPayload) Kind() ItemKind     { return KindEnvironment }
func (p EnvironmentPayload) Label() string      { return p.Name }
func (p EnvironmentPayload) FilterText() string { return p.Name }

// BeginSnippetPayload inserts a \begin ... \end pair.
type BeginSnippetPayload struct{}

func (BeginSnippetPayload) Kind() ItemKind     { return KindBeginSnippet }
func (BeginSnippetPayload) Label() string      { return "begin" }
func (BeginSnippetPayload) FilterText() string { return "begin" }

type CitationPayload struct {
	Key         string
	DocumentURI string
	EntryType   string
	Category    knowledge.EntryCategory
	// Text is the entry body without punctuation and with whitespace
	// collapsed.
	Text string
}

func (p CitationPayload) Kind() ItemKind { return KindCitation }
func (p CitationPayload) Label() string  { return p.Key }
func (p CitationPayload) FilterText() string {
	if p.Text == "" {
		return p.Key
	}
	return p.Key + " " + p.Text
}

type LabelPayload struct {
	Name     string
	Rendered latex.RenderedLabel
}

func (p LabelPayload) Kind() ItemKind { return KindLabel }
func (p LabelPayload) Label() string  { return p.Name }
func (p LabelPayload) FilterText() string {
	rendered := p.Rendered
	rendered.Name = p.Name
	return rendered.ReferenceText()
}

// NamePayload covers the vocabularies that are nothing but a name: colors,
// color models, TikZ libraries, packages, classes, files and directories.
type NamePayload struct {
	ItemKind ItemKind
	Name     string
	Detail   string
}

func (p NamePayload) Kind() ItemKind     { return p.ItemKind }
func (p NamePayload) Label() string      { return p.Name }
func (p NamePayload) FilterText() string { return p.Name }

type GlossaryPayload struct {
	Name        string
	Acronym     bool
	Description string
}

func (p GlossaryPayload) Kind() ItemKind {
	if p.Acronym {
		return KindAcronym
	}
	return KindGlossaryEntry
}
func (p GlossaryPayload) Label() string      { return p.Name }
func (p GlossaryPayload) FilterText() string { return p.Name }

type EntryTypePayload struct {
	Type *knowledge.EntryType
}

func (p EntryTypePayload) Kind() ItemKind     { return KindEntryType }
func (p EntryTypePayload) Label() string      { return p.Type.Name }
func (p EntryTypePayload) FilterText() string { return p.Type.Name }

type FieldPayload struct {
	Field *knowledge.Field
}

func (p FieldPayload) Kind() ItemKind     { return KindField }
func (p FieldPayload) Label() string      { return p.Field.Name }
func (p FieldPayload) FilterText() string { return p.Field.Name }

// StringPayload is a @string abbreviation with its expanded text.
type StringPayload struct {
	Name string
	Text string
}

func (p StringPayload) Kind() ItemKind     { return KindString }
func (p StringPayload) Label() string      { return p.Name }
func (p StringPayload) FilterText() string { return p.Name }

// ArgumentPayload is one of the accepted values of a command argument.
type ArgumentPayload struct {
	Value   string
	Command string
}

func (p ArgumentPayload) Kind() ItemKind     { return KindArgument }
func (p ArgumentPayload) Label() string      { return p.Value }
func (p ArgumentPayload) FilterText() string { return p.Value }
