// Package project links the documents of a workspace into an include graph.
// Two documents are related when one reaches the other by following
// includes in either direction; completion consults every related document.
package project

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/dhamidi/texlyzer/codebase"
	"github.com/dhamidi/texlyzer/latex"
	"github.com/dhamidi/texlyzer/latex/parser"
)

type LinkKind int

const (
	LinkInput LinkKind = iota
	LinkPackage
	LinkClass
	LinkBibliography
	LinkAux
)

var linkKindNames = map[LinkKind]string{
	LinkInput:        "input",
	LinkPackage:      "package",
	LinkClass:        "class",
	LinkBibliography: "bibliography",
	LinkAux:          "aux",
}

func (k LinkKind) String() string {
	if name, ok := linkKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Link is a resolved include from one document to another.
type Link struct {
	Kind   LinkKind
	Source string
	Target string
}

// Graph is built from a snapshot of documents and never changes.
type Graph struct {
	rootDir   string
	documents map[string]*codebase.Document
	order     []string
	links     map[string][]Link
	backlinks map[string][]Link
}

// New resolves the includes of every document. Paths are tried relative to
// the including document and then relative to rootDir.
func New(rootDir string, docs []*codebase.Document) *Graph {
	g := &Graph{
		rootDir:   rootDir,
		documents: make(map[string]*codebase.Document, len(docs)),
		links:     make(map[string][]Link),
		backlinks: make(map[string][]Link),
	}
	for _, doc := range docs {
		if _, seen := g.documents[doc.URI]; !seen {
			g.order = append(g.order, doc.URI)
		}
		g.documents[doc.URI] = doc
	}
	sort.Strings(g.order)

	for _, uri := range g.order {
		for _, link := range g.resolve(g.documents[uri]) {
			g.links[link.Source] = append(g.links[link.Source], link)
			g.backlinks[link.Target] = append(g.backlinks[link.Target], link)
		}
	}
	return g
}

func (g *Graph) Document(uri string) *codebase.Document {
	return g.documents[uri]
}

// Links returns the outgoing links of a document.
func (g *Graph) Links(uri string) []Link {
	return g.links[uri]
}

var includeLinks = map[parser.NodeKind]struct {
	kind      LinkKind
	extension string
}{
	parser.KindLatexInclude:    {LinkInput, ".tex"},
	parser.KindPackageInclude:  {LinkPackage, ".sty"},
	parser.KindClassInclude:    {LinkClass, ".cls"},
	parser.KindBibtexInclude:   {LinkBibliography, ".bib"},
	parser.KindBiblatexInclude: {LinkBibliography, ".bib"},
}

func (g *Graph) resolve(doc *codebase.Document) []Link {
	if doc.Symbols == nil || doc.Path == "" {
		return nil
	}
	var links []Link
	add := func(kind LinkKind, path string) {
		if target, ok := g.lookup(doc, path); ok && target != doc.URI {
			links = append(links, Link{Kind: kind, Source: doc.URI, Target: target})
		}
	}

	for _, include := range doc.Symbols.Includes {
		spec, ok := includeLinks[include.Node.Kind]
		if !ok {
			continue
		}
		for _, path := range include.Paths() {
			name := path.Text()
			if name == "" {
				continue
			}
			if filepath.Ext(name) != spec.extension {
				if _, ok := g.lookup(doc, name); !ok {
					name += spec.extension
				}
			}
			add(spec.kind, name)
		}
	}

	for _, n := range doc.Tree.Descendants(parser.KindImport) {
		imp := latex.Import{Node: n}
		dir, okDir := imp.Directory()
		file, okFile := imp.File()
		if !okDir || !okFile {
			continue
		}
		name := filepath.Join(dir.Text(), file.Text())
		if filepath.Ext(name) == "" {
			name += ".tex"
		}
		add(LinkInput, name)
	}

	if doc.Language == codebase.LanguageTeX {
		add(LinkAux, doc.Stem()+".aux")
	}
	return links
}

func (g *Graph) lookup(from *codebase.Document, name string) (string, bool) {
	name = filepath.FromSlash(strings.TrimSpace(name))
	var candidates []string
	if filepath.IsAbs(name) {
		candidates = append(candidates, name)
	} else {
		candidates = append(candidates, filepath.Join(from.Dir(), name))
		if g.rootDir != "" {
			candidates = append(candidates, filepath.Join(g.rootDir, name))
		}
	}
	for _, path := range candidates {
		uri := codebase.PathToURI(path)
		if _, ok := g.documents[uri]; ok {
			return uri, true
		}
	}
	return "", false
}

// Related returns the documents connected to uri, the document itself
// first and the rest ordered by URI.
func (g *Graph) Related(uri string) []*codebase.Document {
	start, ok := g.documents[uri]
	if !ok {
		return nil
	}
	seen := map[string]bool{uri: true}
	queue := []string{uri}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, link := range g.links[current] {
			if !seen[link.Target] {
				seen[link.Target] = true
				queue = append(queue, link.Target)
			}
		}
		for _, link := range g.backlinks[current] {
			if !seen[link.Source] {
				seen[link.Source] = true
				queue = append(queue, link.Source)
			}
		}
	}

	result := []*codebase.Document{start}
	for _, other := range g.order {
		if other != uri && seen[other] {
			result = append(result, g.documents[other])
		}
	}
	return result
}

// Roots returns the documents that declare a document class.
func (g *Graph) Roots() []*codebase.Document {
	var roots []*codebase.Document
	for _, uri := range g.order {
		doc := g.documents[uri]
		if doc.Language != codebase.LanguageTeX || doc.Symbols == nil {
			continue
		}
		for _, include := range doc.Symbols.Includes {
			if include.Node.Kind == parser.KindClassInclude {
				roots = append(roots, doc)
				break
			}
		}
	}
	return roots
}

// InOrder returns the documents sorted so that included documents come
// before the documents including them. When the includes form a cycle the
// documents are returned ordered by URI.
func (g *Graph) InOrder() []*codebase.Document {
	inDegree := make(map[string]int, len(g.order))
	for _, uri := range g.order {
		inDegree[uri] = 0
	}
	for _, uri := range g.order {
		for _, link := range g.links[uri] {
			if link.Target != uri {
				inDegree[uri]++
			}
		}
	}

	var queue []string
	for _, uri := range g.order {
		if inDegree[uri] == 0 {
			queue = append(queue, uri)
		}
	}

	var result []*codebase.Document
	for len(queue) > 0 {
		uri := queue[0]
		queue = queue[1:]
		result = append(result, g.documents[uri])

		for _, link := range g.backlinks[uri] {
			inDegree[link.Source]--
			if inDegree[link.Source] == 0 {
				queue = append(queue, link.Source)
			}
		}
	}

	if len(result) != len(g.order) {
		result = result[:0]
		for _, uri := range g.order {
			result = append(result, g.documents[uri])
		}
	}
	return result
}
