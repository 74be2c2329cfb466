// Package manifest persists the record of built modules as a JSON file in the build directory.
package manifest

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/importa/internal/core/domain"
	"go.trai.ch/importa/internal/core/ports"
	"go.trai.ch/zerr"
)

// Filename is the name of the manifest inside the build directory.
const Filename = "manifest.json"

var _ ports.ManifestStore = (*Store)(nil)

// Store implements ports.ManifestStore using a flat JSON file.
type Store struct {
	mu sync.RWMutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Path returns the manifest location for a build directory.
func Path(buildDir string) string {
	return filepath.Join(filepath.Clean(buildDir), Filename)
}

// Load reads the manifest of buildDir. A missing or empty file yields an empty manifest.
func (s *Store) Load(buildDir string) (*domain.Manifest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := Path(buildDir)
	manifest := &domain.Manifest{}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return manifest, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read build manifest"), "path", path)
	}

	if len(data) == 0 {
		return manifest, nil
	}

	if err := json.Unmarshal(data, manifest); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal build manifest"), "path", path)
	}
	return manifest, nil
}

// Save writes the manifest of buildDir, creating the directory when needed.
func (s *Store) Save(buildDir string, manifest *domain.Manifest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := Path(buildDir)

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal build manifest")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for build manifest"), "path", path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write build manifest"), "path", path)
	}
	return nil
}
