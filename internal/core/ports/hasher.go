package ports

import "go.trai.ch/importa/internal/core/domain"

// Hasher defines the interface for computing fingerprints.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashPlan fingerprints every command and output of a module plan.
	HashPlan(plan *domain.ModuleBuildPlan) string
	// HashFile fingerprints the content of a file.
	HashFile(path string) (string, error)
}
