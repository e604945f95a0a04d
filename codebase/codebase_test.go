package codebase

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/texlyzer/latex/parser"
)

func newTestFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	return fs
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		path string
		want Language
	}{
		{"main.tex", LanguageTeX},
		{"pkg.STY", LanguageTeX},
		{"class.cls", LanguageTeX},
		{"refs.bib", LanguageBib},
		{"main.aux", LanguageAux},
		{"notes.txt", LanguageUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.path))
		})
	}
}

func TestScanAll(t *testing.T) {
	fs := newTestFS(t, map[string]string{
		"/project/main.tex":         `\documentclass{article}\input{chapters/one}`,
		"/project/chapters/one.tex": `\section{One}`,
		"/project/refs.bib":         `@article{a, title={A}}`,
		"/project/image.png":        "png",
		"/project/.git/config.tex":  "hidden",
	})
	cb := New("/project", fs, nil)
	require.NoError(t, cb.ScanAll())

	docs := cb.Documents()
	require.Len(t, docs, 3)
	assert.Equal(t, PathToURI("/project/chapters/one.tex"), docs[0].URI)

	bib := cb.Get(PathToURI("/project/refs.bib"))
	require.NotNil(t, bib)
	assert.Equal(t, LanguageBib, bib.Language)
	assert.NotNil(t, bib.Bib)
	assert.Nil(t, bib.Tree)

	main := cb.Get(PathToURI("/project/main.tex"))
	require.NotNil(t, main)
	assert.NotNil(t, main.Tree)
	assert.Len(t, main.Symbols.Includes, 2)
}

func TestOpenChangeClose(t *testing.T) {
	fs := newTestFS(t, map[string]string{
		"/project/main.tex": "on disk",
	})
	cb := New("/project", fs, nil)
	uri := PathToURI("/project/main.tex")

	doc := cb.Open(uri, "latex", "in editor", 1)
	assert.True(t, doc.Open)
	assert.Equal(t, "in editor", cb.Get(uri).Text)

	require.NoError(t, cb.ScanFile("/project/main.tex"))
	assert.Equal(t, "in editor", cb.Get(uri).Text, "scanning must not clobber an open document")

	changed := cb.Change(uri, "changed", 2)
	assert.Equal(t, int32(2), changed.Version)
	assert.Equal(t, "in editor", doc.Text, "old snapshots stay intact")

	cb.Close(uri)
	closed := cb.Get(uri)
	require.NotNil(t, closed)
	assert.False(t, closed.Open)
	assert.Equal(t, "on disk", closed.Text)

	untitled := "untitled:Untitled-1"
	cb.Open(untitled, "latex", "x", 1)
	cb.Close(untitled)
	assert.Nil(t, cb.Get(untitled))
}

func TestOpenFallsBackToExtension(t *testing.T) {
	cb := New("/", afero.NewMemMapFs(), nil)
	doc := cb.Open(PathToURI("/refs.bib"), "plaintext", "@misc{x}", 1)
	assert.Equal(t, LanguageBib, doc.Language)
}

func TestURIRoundTrip(t *testing.T) {
	uri := PathToURI("/home/user/my paper/main.tex")
	assert.Equal(t, "file:///home/user/my%20paper/main.tex", uri)

	path, err := URIToPath(uri)
	require.NoError(t, err)
	assert.Equal(t, "/home/user/my paper/main.tex", path)

	_, err = URIToPath("untitled:Untitled-1")
	assert.Error(t, err)
}

func TestDocumentPaths(t *testing.T) {
	doc := NewDocument(PathToURI("/project/chapters/one.tex"), LanguageTeX, "", nil)
	assert.Equal(t, "/project/chapters", doc.Dir())
	assert.Equal(t, "one", doc.Stem())

	untitled := NewDocument("untitled:1", LanguageTeX, "", nil)
	assert.Equal(t, "", untitled.Dir())
}

func TestNewCopiesSyntax(t *testing.T) {
	syntax := parser.DefaultSyntaxConfig()
	syntax.CitationCommands.Add("mycite")
	cb := New("/project", afero.NewMemMapFs(), syntax)
	syntax.CitationCommands.Add("othercite")

	assert.True(t, cb.Syntax().CitationCommands.Has("mycite"))
	assert.False(t, cb.Syntax().CitationCommands.Has("othercite"))
	assert.True(t, New("/project", afero.NewMemMapFs(), nil).Syntax().MathEnvironments.Has("align"))
}
