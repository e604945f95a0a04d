package codebase

import (
	"path/filepath"
	"strings"

	bibparser "github.com/dhamidi/texlyzer/bibtex/parser"
	"github.com/dhamidi/texlyzer/latex"
	"github.com/dhamidi/texlyzer/latex/parser"
)

type Language int

const (
	LanguageUnknown Language = iota
	LanguageTeX
	LanguageBib
	LanguageAux
)

var languageNames = map[Language]string{
	LanguageUnknown: "unknown",
	LanguageTeX:     "latex",
	LanguageBib:     "bibtex",
	LanguageAux:     "aux",
}

func (l Language) String() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return "unknown"
}

// DetectLanguage derives the language from the file extension.
func DetectLanguage(path string) Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tex", ".sty", ".cls", ".def", ".lco", ".ltx", ".dtx":
		return LanguageTeX
	case ".bib", ".bibtex":
		return LanguageBib
	case ".aux":
		return LanguageAux
	}
	return LanguageUnknown
}

// LanguageFromID maps an LSP language identifier to a Language.
func LanguageFromID(id string) Language {
	switch id {
	case "latex", "tex", "plaintex", "context":
		return LanguageTeX
	case "bibtex", "bib":
		return LanguageBib
	}
	return LanguageUnknown
}

// Document is an immutable snapshot of one file. Every change produces a new
// Document, so a tree obtained from the codebase is never rebuilt under a
// reader.
type Document struct {
	URI      string
	Path     string
	Language Language
	Version  int32
	Text     string
	Lines    *LineIndex
	Open     bool

	// Tree is set for TeX and aux documents, Bib for BibTeX documents.
	Tree    *parser.Node
	Symbols *latex.Symbols
	Bib     *bibparser.Node
}

// NewDocument parses text according to the language.
func NewDocument(uri string, language Language, text string, syntax *parser.SyntaxConfig) *Document {
	path, _ := URIToPath(uri)
	doc := &Document{
		URI:      uri,
		Path:     path,
		Language: language,
		Text:     text,
		Lines:    NewLineIndex(text),
	}
	switch language {
	case LanguageTeX, LanguageAux:
		doc.Tree = parser.Parse(text, parser.WithConfig(syntax))
		doc.Symbols = latex.CollectSymbols(doc.Tree)
	case LanguageBib:
		doc.Bib = bibparser.Parse(text)
	}
	return doc
}

// Dir returns the directory containing the document, or "" for documents
// without a file path.
func (d *Document) Dir() string {
	if d.Path == "" {
		return ""
	}
	return filepath.Dir(d.Path)
}

// Stem returns the file name without directory and extension.
func (d *Document) Stem() string {
	if d.Path == "" {
		return ""
	}
	base := filepath.Base(d.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
