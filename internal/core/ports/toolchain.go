package ports

import "go.trai.ch/importa/internal/core/domain"

// Toolchain translates build intents into compiler and linker command lines.
// Each method returns domain.ErrUnsupportedIntent when the intent cannot be expressed.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// Kind names the toolchain variant.
	Kind() domain.ToolchainKind
	// EmitInterface compiles a primary module interface unit into an interface artifact.
	EmitInterface(args domain.EmitInterfaceArgs) (domain.Command, error)
	// InterfaceOutputs returns the files EmitInterface writes when asked for the interface path requested:
	// the interface artifact and, if the toolchain produces one alongside it, an object file. obj is empty otherwise.
	InterfaceOutputs(requested string) (ifc, obj string)
	// CompileObject compiles a partition or implementation unit into an object file.
	CompileObject(args domain.CompileObjectArgs) (domain.Command, error)
	// Link links object files into the final target.
	Link(args domain.LinkArgs) (domain.Command, error)
}

// ToolchainFactory builds a toolchain for the given settings and configuration snapshot.
type ToolchainFactory interface {
	New(settings domain.ToolchainSettings, cfg domain.BuildConfiguration) (Toolchain, error)
}
