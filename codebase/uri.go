package codebase

import (
	"net/url"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// URIToPath returns the file system path of a file:// URI. Other schemes
// have no path.
func URIToPath(uri string) (string, error) {
	if !strings.HasPrefix(uri, "file://") {
		return "", errors.Errorf("not a file URI: %s", uri)
	}
	parsed, err := url.Parse(uri)
	if err != nil {
		return "", errors.Errorf("parsing URI %s: %w", uri, err)
	}
	return filepath.Clean(filepath.FromSlash(parsed.Path)), nil
}

// PathToURI returns the file:// URI of an absolute or relative path.
func PathToURI(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}
