package ports

import "go.trai.ch/importa/internal/core/domain"

// ManifestStore persists the record of built modules.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ManifestStore interface {
	// Load reads the manifest below the build directory.
	// A missing manifest yields an empty one.
	Load(buildDir string) (*domain.Manifest, error)

	// Save writes the manifest below the build directory.
	Save(buildDir string, manifest *domain.Manifest) error
}
