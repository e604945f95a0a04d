// Package codebase keeps the documents of a workspace: their text, syntax
// trees and line indexes. Documents are replaced, never mutated, so readers
// can hold on to a snapshot while the store is updated.
package codebase

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"github.com/tliron/commonlog"
	"gitlab.com/tozd/go/errors"

	"github.com/dhamidi/texlyzer/latex/parser"
)

var log = commonlog.GetLogger("texlyzer.codebase")

// SourcePattern matches the files picked up by ScanAll.
const SourcePattern = "**/*.{tex,sty,cls,bib,aux}"

type Codebase struct {
	mu        sync.RWMutex
	rootDir   string
	fs        afero.Fs
	syntax    *parser.SyntaxConfig
	documents map[string]*Document
}

func New(rootDir string, fs afero.Fs, syntax *parser.SyntaxConfig) *Codebase {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Codebase{
		rootDir:   rootDir,
		fs:        fs,
		syntax:    syntax.Clone(),
		documents: make(map[string]*Document),
	}
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

func (c *Codebase) FS() afero.Fs {
	return c.fs
}

func (c *Codebase) Syntax() *parser.SyntaxConfig {
	return c.syntax
}

// ScanAll loads every source file below the root directory that is not
// already open in the editor. Hidden directories are skipped.
func (c *Codebase) ScanAll() error {
	count := 0
	err := afero.Walk(c.fs, c.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != c.rootDir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(c.rootDir, path)
		if err != nil {
			return nil
		}
		if ok, _ := doublestar.Match(SourcePattern, filepath.ToSlash(rel)); !ok {
			return nil
		}
		if err := c.ScanFile(path); err != nil {
			log.Warningf("skipping %s: %s", path, err)
			return nil
		}
		count++
		return nil
	})
	if err != nil {
		return errors.Errorf("scanning %s: %w", c.rootDir, err)
	}
	log.Infof("scanned %d files in %s", count, c.rootDir)
	return nil
}

// ScanFile reads path from the file system unless the editor owns it.
func (c *Codebase) ScanFile(path string) error {
	uri := PathToURI(path)
	if doc := c.Get(uri); doc != nil && doc.Open {
		return nil
	}
	content, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return errors.Errorf("reading %s: %w", path, err)
	}
	c.update(uri, DetectLanguage(path), string(content), 0, false)
	return nil
}

// Open records a document opened in the editor. An unknown language id
// falls back to the file extension.
func (c *Codebase) Open(uri, languageID, text string, version int32) *Document {
	language := LanguageFromID(languageID)
	if language == LanguageUnknown {
		language = DetectLanguage(uri)
	}
	return c.update(uri, language, text, version, true)
}

// Change replaces the text of an open document.
func (c *Codebase) Change(uri, text string, version int32) *Document {
	language := DetectLanguage(uri)
	if old := c.Get(uri); old != nil {
		language = old.Language
	}
	return c.update(uri, language, text, version, true)
}

// Close hands the document back to the file system: it is reloaded from
// disk, or dropped when it does not exist there.
func (c *Codebase) Close(uri string) {
	path, err := URIToPath(uri)
	if err == nil {
		if content, err := afero.ReadFile(c.fs, path); err == nil {
			c.update(uri, DetectLanguage(path), string(content), 0, false)
			return
		}
	}
	c.Remove(uri)
}

func (c *Codebase) update(uri string, language Language, text string, version int32, open bool) *Document {
	doc := NewDocument(uri, language, text, c.syntax)
	doc.Version = version
	doc.Open = open

	c.mu.Lock()
	defer c.mu.Unlock()
	c.documents[uri] = doc
	log.Debugf("updated %s (%s, version %d)", uri, language, version)
	return doc
}

func (c *Codebase) Remove(uri string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.documents, uri)
}

func (c *Codebase) Get(uri string) *Document {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.documents[uri]
}

// Documents returns a snapshot of every document, ordered by URI.
func (c *Codebase) Documents() []*Document {
	c.mu.RLock()
	docs := make([]*Document, 0, len(c.documents))
	for _, doc := range c.documents {
		docs = append(docs, doc)
	}
	c.mu.RUnlock()

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].URI < docs[j].URI
	})
	return docs
}
