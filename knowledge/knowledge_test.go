package knowledge

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLoads(t *testing.T) {
	base := Default()
	require.NotNil(t, base)
	assert.Same(t, base, Default())

	assert.NotEmpty(t, base.Components)
	assert.Contains(t, base.Colors, "red")
	assert.Contains(t, base.ColorModels, "rgb")
	assert.Contains(t, base.TikzLibraries, "positioning")
}

func TestPackagesAndClasses(t *testing.T) {
	base := Default()
	assert.Contains(t, base.Packages(), "amsmath")
	assert.Contains(t, base.Packages(), "lipsum")
	assert.NotContains(t, base.Packages(), "article")
	assert.Contains(t, base.Classes(), "article")
	assert.Contains(t, base.Classes(), "beamer")
}

func TestComponentsFor(t *testing.T) {
	base := Default()

	kernelOnly := base.ComponentsFor(nil)
	require.Len(t, kernelOnly, 1)
	assert.True(t, kernelOnly[0].IsKernel())
	assert.Equal(t, "built-in", kernelOnly[0].Detail())

	withMath := base.ComponentsFor([]string{"amsmath.sty"})
	require.Len(t, withMath, 2)
	assert.Equal(t, "amsmath.sty", withMath[1].Detail())
	assert.Contains(t, withMath[1].Environments, "align")
}

func TestFindEntryTypeAndField(t *testing.T) {
	base := Default()

	article, ok := base.FindEntryType("ARTICLE")
	require.True(t, ok)
	assert.Equal(t, CategoryArticle, article.Category)

	_, ok = base.FindEntryType("nosuchtype")
	assert.False(t, ok)

	author, ok := base.FindField("Author")
	require.True(t, ok)
	assert.NotEmpty(t, author.Documentation)
}

func TestCommandParameters(t *testing.T) {
	base := Default()
	values := CommandParameters(base.ComponentsFor(nil), "pagenumbering", 0)
	assert.Contains(t, values, "roman")
	assert.Nil(t, CommandParameters(base.ComponentsFor(nil), "pagenumbering", 1))
	assert.Nil(t, CommandParameters(base.ComponentsFor(nil), "section", 0))
}

func TestLoadMergesDocuments(t *testing.T) {
	base, err := Load(
		[]byte("colors: [red]\nfields:\n  - name: title\n"),
		[]byte("colors: [blue]\n"),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"red", "blue"}, base.Colors)
	_, ok := base.FindField("title")
	assert.True(t, ok)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "colors: [red"},
		{"unnamed field", "fields:\n  - documentation: x\n"},
		{"unnamed command", "components:\n  - files: []\n    commands:\n      - glyph: x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadFSSkipsOtherFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"kb/a.yaml":   {Data: []byte("colors: [red]\n")},
		"kb/notes.md": {Data: []byte("not yaml: [")},
	}
	base, err := LoadFS(fsys, "kb")
	require.NoError(t, err)
	assert.Equal(t, []string{"red"}, base.Colors)

	_, err = LoadFS(fsys, "missing")
	assert.Error(t, err)
}
