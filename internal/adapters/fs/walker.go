// Package fs provides file system adapters for walking, resolving and hashing files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"

	"go.trai.ch/importa/internal/core/ports"
)

var _ ports.SourceWalker = (*Walker)(nil)

// interfaceExtensions are the file extensions of module interface units.
var interfaceExtensions = []string{".ixx", ".cppm"}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files below root, skipping .git and ignored directories.
// Yielded paths start with root, as filepath.WalkDir produces them.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if skip, action := w.shouldSkip(d, ignores); skip {
				return action
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// WalkInterfaces yields the module interface units below root in lexical order.
func (w *Walker) WalkInterfaces(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for path := range w.WalkFiles(root, ignores) {
			if !isInterfaceUnit(path) {
				continue
			}
			if !yield(path) {
				return
			}
		}
	}
}

// shouldSkip reports whether an entry is excluded and what WalkDir should do about it.
func (w *Walker) shouldSkip(d fs.DirEntry, ignores []string) (bool, error) {
	name := d.Name()

	if d.IsDir() && (name == ".git" || name == ".jj") {
		return true, filepath.SkipDir
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			if d.IsDir() {
				return true, filepath.SkipDir
			}
			return true, nil
		}
	}
	return false, nil
}

func isInterfaceUnit(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range interfaceExtensions {
		if ext == want {
			return true
		}
	}
	return false
}
