package completion

import (
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/texlyzer/codebase"
	"github.com/dhamidi/texlyzer/latex/parser"
)

// withCursor removes the "|" marker from text and returns its offset.
func withCursor(t *testing.T, text string) (string, int) {
	t.Helper()
	offset := strings.Index(text, "|")
	require.GreaterOrEqual(t, offset, 0, "no cursor marker in %q", text)
	return text[:offset] + text[offset+1:], offset
}

func texDoc(path, text string) *codebase.Document {
	return codebase.NewDocument(codebase.PathToURI(path), codebase.LanguageTeX, text, nil)
}

func bibDoc(path, text string) *codebase.Document {
	return codebase.NewDocument(codebase.PathToURI(path), codebase.LanguageBib, text, nil)
}

func complete(t *testing.T, text string, related []*codebase.Document, opts ...Option) List {
	t.Helper()
	text, offset := withCursor(t, text)
	doc := texDoc("/project/main.tex", text)
	ctx := NewContext(doc, append([]*codebase.Document{doc}, related...), offset, opts...)
	return Complete(ctx, DefaultOptions(), ClientProfile{})
}

func labels(list List) []string {
	result := make([]string, 0, len(list.Items))
	for _, item := range list.Items {
		result = append(result, item.Payload.Label())
	}
	return result
}

const references = `@misc{foo:2019,
  author = {Foo Bar},
  title = {Baz Qux},
  year = 2019
}

@misc{bar:2005,
}
`

func TestCitationRanking(t *testing.T) {
	bib := bibDoc("/project/refs.bib", references)
	list := complete(t, `\cite{|`, []*codebase.Document{bib})

	assert.Equal(t, []string{"bar:2005", "foo:2019"}, labels(list))
	assert.False(t, list.Incomplete)

	foo := list.Items[1]
	assert.Equal(t, "00001 foo:2019 misc Foo Bar Baz Qux 2019", foo.SortText)
}

func TestCitationMatchesEntryBody(t *testing.T) {
	bib := bibDoc("/project/refs.bib", references)
	list := complete(t, `\cite{qux|}`, []*codebase.Document{bib})
	assert.Equal(t, []string{"foo:2019"}, labels(list))
}

func TestBibItemCitations(t *testing.T) {
	list := complete(t, "\\begin{thebibliography}{9}\n\\bibitem{knuth} The Book\n\\end{thebibliography}\n\\cite{kn|}", nil)
	assert.Equal(t, []string{"knuth"}, labels(list))
}

func TestDeterminism(t *testing.T) {
	first := complete(t, `\s|`, nil)
	for i := 0; i < 5; i++ {
		assert.Equal(t, labels(first), labels(complete(t, `\s|`, nil)))
	}
}

func TestTruncation(t *testing.T) {
	b := NewBuilder(nil, DefaultOptions())
	for i := 0; i < 60; i++ {
		b.Add(Range{}, NamePayload{ItemKind: KindColor, Name: fmt.Sprintf("color%02d", i)}, false)
	}
	list := b.Finish(ClientProfile{})

	require.Len(t, list.Items, 50)
	assert.True(t, list.Incomplete)
	assert.Equal(t, "00000", list.Items[0].SortText)
	assert.Equal(t, "00049", list.Items[49].SortText)
	assert.Equal(t, "color49", list.Items[49].Payload.Label())
}

func TestAlwaysIncompleteClient(t *testing.T) {
	b := NewBuilder(nil, DefaultOptions())
	b.Add(Range{}, NamePayload{ItemKind: KindColor, Name: "red"}, false)
	list := b.Finish(ClientProfile{AlwaysIncomplete: ClientNeedsIncomplete("Visual Studio Code")})
	assert.True(t, list.Incomplete)
}

func TestDedupKeepsFirstRegistered(t *testing.T) {
	b := NewBuilder(nil, DefaultOptions())
	b.Add(Range{}, CommandPayload{Name: "lipsum", Detail: "built-in"}, false)
	b.Add(Range{}, CommandPayload{Name: "lipsum", Detail: "x.sty"}, false)
	list := b.Finish(ClientProfile{})

	require.Len(t, list.Items, 1)
	assert.Equal(t, "built-in", list.Items[0].Payload.(CommandPayload).Detail)
}

func TestDedupOfUserCommands(t *testing.T) {
	list := complete(t, "\\usepackage{lipsum}\n\\lipsum\n\\lips|", nil)

	var found []CommandPayload
	for _, item := range list.Items {
		if cmd, ok := item.Payload.(CommandPayload); ok && cmd.Name == "lipsum" {
			found = append(found, cmd)
		}
	}
	require.Len(t, found, 1)
	assert.Equal(t, "lipsum.sty", found[0].Detail)
}

func TestCursorCommandIsNotSuggested(t *testing.T) {
	list := complete(t, `\mycommandxyz|`, nil)
	assert.NotContains(t, labels(list), "mycommandxyz")
}

func TestUserCommands(t *testing.T) {
	list := complete(t, "\\newcommand{\\foobar}{x}\n\\foob|", nil)
	require.NotEmpty(t, list.Items)
	assert.Equal(t, "foobar", list.Items[0].Payload.Label())
	assert.Equal(t, userDefined, list.Items[0].Payload.(CommandPayload).Detail)
}

func TestCommandRanking(t *testing.T) {
	list := complete(t, `\sec|`, nil)
	require.NotEmpty(t, list.Items)
	assert.Equal(t, "section", list.Items[0].Payload.Label())
	assert.Equal(t, Range{Start: 1, End: 4}, list.Items[0].Range)
}

func TestLoneBackslash(t *testing.T) {
	list := complete(t, `\|`, nil)
	assert.Len(t, list.Items, DefaultLimit)
	assert.True(t, list.Incomplete)
	assert.Equal(t, Range{Start: 1, End: 1}, list.Items[0].Range)
}

func TestPreselection(t *testing.T) {
	list := complete(t, "\\newtheorem{lemma}{Lemma}\n\\begin{lemma}\nfoo\n\\end{lem|", nil)
	require.NotEmpty(t, list.Items)
	assert.Equal(t, "lemma", list.Items[0].Payload.Label())
	assert.True(t, list.Items[0].Preselect)
}

func TestEnvironments(t *testing.T) {
	list := complete(t, `\begin{itemi|}`, nil)
	require.NotEmpty(t, list.Items)
	assert.Equal(t, "itemize", list.Items[0].Payload.Label())
	assert.Equal(t, Range{Start: 7, End: 12}, list.Items[0].Range)
	assert.False(t, list.Items[0].Preselect)
}

func TestLabels(t *testing.T) {
	list := complete(t, "\\section{Intro}\n\\label{sec:intro}\n\\ref{|}", nil)
	require.Len(t, list.Items, 1)
	label := list.Items[0].Payload.(LabelPayload)
	assert.Equal(t, "sec:intro", label.Name)
	assert.Equal(t, "Section (Intro)", label.Rendered.Header)
	assert.Equal(t, "00000 sec:intro Section (Intro)", list.Items[0].SortText)
}

func TestLabelReferencePrefixes(t *testing.T) {
	syntax := parser.DefaultSyntaxConfig()
	syntax.LabelReferencePrefixes["eqref"] = "eq:"
	list := complete(t, "\\label{eq:one}\n\\label{sec:two}\n\\eqref{|}", nil, WithSyntax(syntax))
	assert.Equal(t, []string{"one"}, labels(list))
}

func TestGlossaryAndAcronyms(t *testing.T) {
	defs := "\\newglossaryentry{pi}{name=pi, description={ratio}}\n\\newacronym{cpu}{CPU}{central processing unit}\n"
	assert.Equal(t, []string{"cpu", "pi"}, labels(complete(t, defs+`\gls{|}`, nil)))
	assert.Equal(t, []string{"cpu"}, labels(complete(t, defs+`\acrshort{|}`, nil)))
}

func TestColors(t *testing.T) {
	list := complete(t, "\\definecolor{mine}{rgb}{1,0,0}\n\\color{mi|}", nil)
	assert.Contains(t, labels(list), "mine")

	models := complete(t, `\definecolor{mine}{rg|}`, nil)
	assert.Contains(t, labels(models), "rgb")
	assert.NotContains(t, labels(models), "red")
}

func TestTikzLibraries(t *testing.T) {
	assert.Contains(t, labels(complete(t, `\usetikzlibrary{posi|}`, nil)), "positioning")
}

func TestPackages(t *testing.T) {
	list := complete(t, `\usepackage{amsm|}`, nil)
	require.NotEmpty(t, list.Items)
	assert.Equal(t, "amsmath", list.Items[0].Payload.Label())
	assert.Equal(t, KindPackage, list.Items[0].Payload.Kind())
}

func TestArguments(t *testing.T) {
	list := complete(t, `\pagestyle{|`, nil)
	assert.Equal(t, []string{"empty", "headings", "myheadings", "plain"}, labels(list))
}

func TestIncludes(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, path := range []string{
		"/project/main.tex",
		"/project/chapters/intro.tex",
		"/project/chapters/notes.txt",
		"/project/chapters/figs/a.png",
	} {
		require.NoError(t, afero.WriteFile(fs, path, nil, 0o644))
	}

	list := complete(t, `\input{chapters/|}`, nil, WithFS(fs))
	assert.Equal(t, []string{"figs", "intro"}, labels(list))
	assert.Equal(t, KindDirectory, list.Items[0].Payload.Kind())
	assert.Equal(t, Range{Start: 16, End: 16}, list.Items[1].Range)

	list = complete(t, `\input{chapters/in|}`, nil, WithFS(fs))
	assert.Equal(t, []string{"intro"}, labels(list))
	assert.Equal(t, Range{Start: 16, End: 18}, list.Items[0].Range)

	list = complete(t, `\input{chapters/fi|}`, nil, WithFS(fs))
	assert.Equal(t, []string{"figs"}, labels(list))

	assert.Empty(t, complete(t, `\input{chapters/|}`, nil).Items)
}

func TestBibtexEntryTypes(t *testing.T) {
	text, offset := withCursor(t, "@arti|")
	doc := bibDoc("/project/refs.bib", text)
	list := Complete(NewContext(doc, nil, offset), DefaultOptions(), ClientProfile{})
	require.NotEmpty(t, list.Items)
	assert.Equal(t, "article", list.Items[0].Payload.Label())
	assert.Equal(t, Range{Start: 1, End: 5}, list.Items[0].Range)
}

func TestBibtexFields(t *testing.T) {
	text, offset := withCursor(t, "@article{key,\n  titl|\n}")
	doc := bibDoc("/project/refs.bib", text)
	list := Complete(NewContext(doc, nil, offset), DefaultOptions(), ClientProfile{})
	require.NotEmpty(t, list.Items)
	assert.Equal(t, "title", list.Items[0].Payload.Label())
}

func TestBibtexStrings(t *testing.T) {
	text, offset := withCursor(t, "@string{jphys = \"Journal of Physics\"}\n@article{key, journal = jp|}")
	doc := bibDoc("/project/refs.bib", text)
	list := Complete(NewContext(doc, nil, offset), DefaultOptions(), ClientProfile{})
	require.Len(t, list.Items, 1)
	assert.Equal(t, StringPayload{Name: "jphys", Text: "Journal of Physics"}, list.Items[0].Payload)
}

func TestEmptyContext(t *testing.T) {
	assert.Empty(t, complete(t, "Just some text|", nil).Items)
	assert.Empty(t, complete(t, "|", nil).Items)
}
