package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"

	"github.com/dhamidi/texlyzer/codebase"
	"github.com/dhamidi/texlyzer/config"
)

// workspace is a codebase loaded for a single command line invocation.
type workspace struct {
	fs       afero.Fs
	options  config.Options
	codebase *codebase.Codebase
}

// loadWorkspace reads the options found in root. When scan is set every
// source file below root is parsed as well.
func loadWorkspace(root string, scan bool) (*workspace, error) {
	fs := afero.NewOsFs()
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Errorf("resolving %s: %w", root, err)
	}
	options, err := config.Load(fs, root, os.LookupEnv)
	if err != nil {
		return nil, err
	}
	w := &workspace{
		fs:       fs,
		options:  options,
		codebase: codebase.New(root, fs, options.SyntaxConfig()),
	}
	if scan {
		if err := w.codebase.ScanAll(); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// document parses path, which need not lie below the workspace root.
func (w *workspace) document(path string) (*codebase.Document, error) {
	if err := w.codebase.ScanFile(path); err != nil {
		return nil, err
	}
	doc := w.codebase.Get(codebase.PathToURI(path))
	if doc == nil {
		return nil, errors.Errorf("%s was not loaded", path)
	}
	if doc.Language == codebase.LanguageUnknown {
		return nil, errors.Errorf("unsupported file extension: %s (expected .tex, .sty, .cls, .bib or .aux)", filepath.Ext(path))
	}
	return doc, nil
}

func rootFor(root, file string) string {
	if root != "" {
		return root
	}
	return filepath.Dir(file)
}
