package ports

// Verifier checks that build outputs exist after their command succeeded.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type Verifier interface {
	// MissingOutputs returns the outputs below root that do not exist.
	MissingOutputs(root string, outputs []string) ([]string, error)
}
