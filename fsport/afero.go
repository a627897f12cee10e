// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package fsport

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// AferoFS adapts an afero.Fs into the fsport.FS port. The default,
// OS-backed implementation wraps afero.NewOsFs(); tests typically wrap
// afero.NewMemMapFs() instead so fixtures never touch a real disk.
type AferoFS struct {
	afs afero.Fs
}

// New returns an FS backed by afs.
func New(afs afero.Fs) *AferoFS {
	return &AferoFS{afs: afs}
}

// NewOS returns the default, real-disk filesystem port.
func NewOS() *AferoFS {
	return New(afero.NewOsFs())
}

func (a *AferoFS) Read(uri string) ([]byte, error) {
	b, err := afero.ReadFile(a.afs, uri)
	if err != nil {
		return nil, &IoError{URI: uri, Cause: err}
	}
	return b, nil
}

func (a *AferoFS) Stat(uri string) (Info, bool) {
	fi, err := a.afs.Stat(uri)
	if err != nil {
		return Info{}, false
	}
	t := EntryFile
	if fi.IsDir() {
		t = EntryDir
	}
	return Info{Type: t, Size: fi.Size(), ModTime: fi.ModTime()}, true
}

func (a *AferoFS) ReadDirectory(uri string) ([]DirEntry, error) {
	infos, err := afero.ReadDir(a.afs, uri)
	if err != nil {
		return nil, &IoError{URI: uri, Cause: err}
	}
	entries := make([]DirEntry, 0, len(infos))
	for _, fi := range infos {
		t := EntryFile
		if fi.IsDir() {
			t = EntryDir
		}
		entries = append(entries, DirEntry{Name: fi.Name(), Type: t})
	}
	return entries, nil
}

// Glob expands patterns against the filesystem. Patterns beginning with
// "!" exclude paths matched by the rest of the pattern rather than
// adding to the result. Matching walks the whole tree once and tests
// every file against every pattern with doublestar.Match, rather than
// relying on a glob-aware fs.FS walk, since afero's io/fs adapter makes
// no guarantee about leading-slash path conventions.
func (a *AferoFS) Glob(patterns []string) ([]string, error) {
	var includes, excludes []string
	for _, p := range patterns {
		if strings.HasPrefix(p, "!") {
			excludes = append(excludes, strings.TrimPrefix(p, "!"))
		} else {
			includes = append(includes, p)
		}
	}

	var result []string
	err := afero.Walk(a.afs, "/", func(path string, info os.FileInfo, err error) error {
		if err != nil || info == nil || info.IsDir() {
			return nil
		}
		candidates := []string{path, strings.TrimPrefix(path, "/")}
		for _, pattern := range includes {
			matched := false
			for _, c := range candidates {
				if ok, _ := doublestar.Match(normalizePattern(pattern), c); ok {
					matched = true
					break
				}
			}
			if matched && !excluded(excludes, candidates) {
				result = append(result, path)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func normalizePattern(p string) string {
	return strings.TrimPrefix(filepath.ToSlash(p), "/")
}

func excluded(excludes []string, candidates []string) bool {
	for _, ex := range excludes {
		pattern := normalizePattern(ex)
		for _, c := range candidates {
			if ok, _ := doublestar.Match(pattern, c); ok {
				return true
			}
		}
	}
	return false
}
