// Package knowledge holds the static tables consulted by completion: the
// commands and environments provided by the LaTeX kernel and by common
// packages and classes, color names, TikZ libraries, and the BibTeX entry
// types and fields.
//
// The tables are embedded YAML, decoded once and never modified.
package knowledge

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

type Command struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph,omitempty"`
	Image string `yaml:"image,omitempty"`
	// Parameters lists, per argument, the accepted values. An empty list
	// means the argument is free-form.
	Parameters [][]string `yaml:"parameters,omitempty"`
}

// Component is a package or class file and what it provides. The kernel is
// the component with no files.
type Component struct {
	Files        []string  `yaml:"files"`
	Commands     []Command `yaml:"commands"`
	Environments []string  `yaml:"environments"`
}

// IsKernel reports whether the component is always available.
func (c *Component) IsKernel() bool {
	return len(c.Files) == 0
}

// Detail describes where a command or environment comes from.
func (c *Component) Detail() string {
	if c.IsKernel() {
		return "built-in"
	}
	return strings.Join(c.Files, ", ")
}

type EntryCategory string

const (
	CategoryArticle    EntryCategory = "article"
	CategoryBook       EntryCategory = "book"
	CategoryCollection EntryCategory = "collection"
	CategoryPart       EntryCategory = "part"
	CategoryThesis     EntryCategory = "thesis"
	CategoryMisc       EntryCategory = "misc"
	CategoryString     EntryCategory = "string"
)

type EntryType struct {
	Name          string        `yaml:"name"`
	Category      EntryCategory `yaml:"category"`
	Documentation string        `yaml:"documentation"`
}

type Field struct {
	Name          string `yaml:"name"`
	Documentation string `yaml:"documentation"`
}

// Base is the decoded knowledge base.
type Base struct {
	Components    []Component `yaml:"components"`
	Colors        []string    `yaml:"colors"`
	ColorModels   []string    `yaml:"colorModels"`
	TikzLibraries []string    `yaml:"tikzLibraries"`
	PgfLibraries  []string    `yaml:"pgfLibraries"`
	EntryTypes    []EntryType `yaml:"entryTypes"`
	Fields        []Field     `yaml:"fields"`

	entryTypes map[string]*EntryType
	fields     map[string]*Field
}

var (
	defaultOnce sync.Once
	defaultBase *Base
)

// Default returns the embedded knowledge base. It panics if the embedded
// data cannot be decoded.
func Default() *Base {
	defaultOnce.Do(func() {
		base, err := LoadFS(dataFS, "data")
		if err != nil {
			panic(err)
		}
		defaultBase = base
	})
	return defaultBase
}

// LoadFS decodes every .yaml file in dir into one Base. Later files extend
// the lists of earlier ones.
func LoadFS(fsys fs.FS, dir string) (*Base, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Errorf("reading knowledge directory %s: %w", dir, err)
	}
	var docs [][]byte
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Errorf("reading %s: %w", entry.Name(), err)
		}
		docs = append(docs, data)
	}
	return Load(docs...)
}

// Load decodes and merges YAML documents.
func Load(docs ...[]byte) (*Base, error) {
	base := &Base{}
	for i, data := range docs {
		var part Base
		if err := yaml.Unmarshal(data, &part); err != nil {
			return nil, errors.Errorf("decoding knowledge document %d: %w", i, err)
		}
		base.Components = append(base.Components, part.Components...)
		base.Colors = append(base.Colors, part.Colors...)
		base.ColorModels = append(base.ColorModels, part.ColorModels...)
		base.TikzLibraries = append(base.TikzLibraries, part.TikzLibraries...)
		base.PgfLibraries = append(base.PgfLibraries, part.PgfLibraries...)
		base.EntryTypes = append(base.EntryTypes, part.EntryTypes...)
		base.Fields = append(base.Fields, part.Fields...)
	}
	if err := base.index(); err != nil {
		return nil, err
	}
	return base, nil
}

func (b *Base) index() error {
	b.entryTypes = make(map[string]*EntryType, len(b.EntryTypes))
	for i := range b.EntryTypes {
		t := &b.EntryTypes[i]
		if t.Name == "" {
			return errors.Errorf("entry type %d has no name", i)
		}
		b.entryTypes[strings.ToLower(t.Name)] = t
	}
	b.fields = make(map[string]*Field, len(b.Fields))
	for i := range b.Fields {
		f := &b.Fields[i]
		if f.Name == "" {
			return errors.Errorf("field %d has no name", i)
		}
		b.fields[strings.ToLower(f.Name)] = f
	}
	for i := range b.Components {
		for j, cmd := range b.Components[i].Commands {
			if cmd.Name == "" {
				return errors.Errorf("component %d: command %d has no name", i, j)
			}
		}
	}
	return nil
}

// FindEntryType looks up a BibTeX entry type case-insensitively.
func (b *Base) FindEntryType(name string) (*EntryType, bool) {
	t, ok := b.entryTypes[strings.ToLower(name)]
	return t, ok
}

// FindField looks up a BibTeX field case-insensitively.
func (b *Base) FindField(name string) (*Field, bool) {
	f, ok := b.fields[strings.ToLower(name)]
	return f, ok
}

func (b *Base) filesWithExtension(ext string) []string {
	seen := map[string]bool{}
	var names []string
	for _, c := range b.Components {
		for _, file := range c.Files {
			if path.Ext(file) != ext {
				continue
			}
			name := strings.TrimSuffix(file, ext)
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// Packages returns the names of the known packages, without extension.
func (b *Base) Packages() []string {
	return b.filesWithExtension(".sty")
}

// Classes returns the names of the known document classes.
func (b *Base) Classes() []string {
	return b.filesWithExtension(".cls")
}

// ComponentsFor returns the kernel followed by every component providing
// one of the given files. File names include their extension.
func (b *Base) ComponentsFor(files []string) []*Component {
	wanted := make(map[string]bool, len(files))
	for _, f := range files {
		wanted[f] = true
	}
	var result []*Component
	for i := range b.Components {
		c := &b.Components[i]
		if c.IsKernel() {
			result = append(result, c)
			continue
		}
		for _, f := range c.Files {
			if wanted[f] {
				result = append(result, c)
				break
			}
		}
	}
	return result
}

// CommandParameters returns the accepted values for argument index of the
// named command, searching the given components.
func CommandParameters(components []*Component, name string, index int) []string {
	for _, c := range components {
		for _, cmd := range c.Commands {
			if cmd.Name == name && index < len(cmd.Parameters) {
				return cmd.Parameters[index]
			}
		}
	}
	return nil
}
