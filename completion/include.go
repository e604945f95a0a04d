package completion

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/dhamidi/texlyzer/latex/parser"
)

type includeRule struct {
	glob string
	// strip drops the extension from suggested file names, since the
	// command appends it itself.
	strip bool
}

var includeRules = map[parser.NodeKind]includeRule{
	parser.KindLatexInclude:    {glob: "*.tex", strip: true},
	parser.KindPackageInclude:  {glob: "*.sty", strip: true},
	parser.KindClassInclude:    {glob: "*.cls", strip: true},
	parser.KindBibtexInclude:   {glob: "*.bib", strip: true},
	parser.KindBiblatexInclude: {glob: "*.bib"},
	parser.KindGraphicsInclude: {glob: "*.{pdf,png,jpg,jpeg,bmp,eps}"},
	parser.KindSvgInclude:      {glob: "*.svg"},
	parser.KindInkscapeInclude: {glob: "*.{pdf_tex,svg}"},
	parser.KindVerbatimInclude: {glob: "*"},
}

func includeKinds() []parser.NodeKind {
	kinds := make([]parser.NodeKind, 0, len(includeRules))
	for kind := range includeRules {
		kinds = append(kinds, kind)
	}
	return kinds
}

// addIncludes lists the files and directories next to the path being typed.
func addIncludes(c *Context, b *Builder) {
	if c.FS == nil || c.Document.Path == "" {
		return
	}
	group, command, ok := c.GroupOf(includeKinds()...)
	if !ok || !isPathGroup(group) {
		return
	}
	rule := includeRules[command.Kind]

	typedDir := ""
	if slash := strings.LastIndex(c.Pattern, "/"); slash >= 0 {
		typedDir = c.Pattern[:slash+1]
	}

	bases := []string{c.Document.Dir()}
	if command.Kind == parser.KindGraphicsInclude {
		for _, symbols := range c.Symbols() {
			for _, dir := range symbols.GraphicsDirs {
				bases = append(bases, filepath.Join(c.Document.Dir(), filepath.FromSlash(dir)))
			}
		}
	}

	for _, base := range bases {
		dir := filepath.Join(base, filepath.FromSlash(typedDir))
		if filepath.IsAbs(filepath.FromSlash(typedDir)) {
			dir = filepath.FromSlash(typedDir)
		}
		entries, err := afero.ReadDir(c.FS, dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name := entry.Name()
			if strings.HasPrefix(name, ".") {
				continue
			}
			if entry.IsDir() {
				b.Add(c.FragmentRange, NamePayload{ItemKind: KindDirectory, Name: name}, false)
				continue
			}
			if matched, _ := doublestar.Match(rule.glob, name); !matched {
				continue
			}
			if rule.strip {
				name = strings.TrimSuffix(name, path.Ext(name))
			}
			b.Add(c.FragmentRange, NamePayload{ItemKind: KindFile, Name: name}, false)
		}
	}
}
