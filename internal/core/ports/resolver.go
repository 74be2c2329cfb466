package ports

// InputResolver expands source patterns of a module into concrete paths.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type InputResolver interface {
	// ResolveInputs expands glob patterns relative to root. Literal paths are returned unchanged.
	ResolveInputs(inputs []string, root string) ([]string, error)
}
