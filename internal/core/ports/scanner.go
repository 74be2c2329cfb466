package ports

import (
	"iter"

	"go.trai.ch/importa/internal/core/domain"
)

// SourceScanner reads module declarations from source files.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type SourceScanner interface {
	// Scan returns the declared module name and imported module names of a source file.
	Scan(path string) (domain.SourceInfo, error)
}

// SourceWalker finds module interface units below a directory.
type SourceWalker interface {
	// WalkInterfaces yields interface unit paths below root, skipping ignored directories.
	WalkInterfaces(root string, ignores []string) iter.Seq[string]
}
