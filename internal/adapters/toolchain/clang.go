package toolchain

import (
	"go.trai.ch/importa/internal/core/domain"
	"go.trai.ch/importa/internal/core/ports"
)

var _ ports.Toolchain = (*Clang)(nil)

// pcmExt is the extension clang uses for precompiled module interfaces.
const pcmExt = ".pcm"

// Clang drives a single clang driver for compiling and linking.
// Interface artifacts requested with any extension are written as .pcm files.
type Clang struct {
	driver string
	cfg    domain.BuildConfiguration
}

// NewClang creates a Clang toolchain. The configuration is copied.
func NewClang(driver string, cfg domain.BuildConfiguration) *Clang {
	return &Clang{
		driver: driver,
		cfg:    cfg.Clone(),
	}
}

// Kind returns domain.ToolchainClang.
func (t *Clang) Kind() domain.ToolchainKind {
	return domain.ToolchainClang
}

// EmitInterface precompiles an interface unit into a .pcm file.
func (t *Clang) EmitInterface(args domain.EmitInterfaceArgs) (domain.Command, error) {
	if args.InterfaceSource == "" {
		return domain.Command{}, unsupported("interface source is empty", "output", args.OutputInterface)
	}
	if args.OutputInterface == "" {
		return domain.Command{}, unsupported("interface output is empty", "source", args.InterfaceSource)
	}

	flags, err := ClangCompileFlags(t.cfg)
	if err != nil {
		return domain.Command{}, err
	}

	pcm, _ := t.InterfaceOutputs(args.OutputInterface)

	cmd := domain.Command{Executable: t.driver, Arguments: flags}
	cmd.Arguments = append(cmd.Arguments,
		"--precompile", "-x", "c++-module", args.InterfaceSource,
		"-o", pcm,
	)
	cmd.Arguments = appendClangModuleFiles(cmd.Arguments, args.Dependencies)
	return cmd, nil
}

// InterfaceOutputs returns the .pcm written for the requested path. Precompiling writes no object.
func (t *Clang) InterfaceOutputs(requested string) (ifc, obj string) {
	return withExtension(requested, pcmExt), ""
}

// CompileObject compiles a partition or implementation unit.
func (t *Clang) CompileObject(args domain.CompileObjectArgs) (domain.Command, error) {
	if args.Source == "" {
		return domain.Command{}, unsupported("source is empty", "output", args.OutputObject)
	}
	if args.OutputObject == "" {
		return domain.Command{}, unsupported("object output is empty", "source", args.Source)
	}

	flags, err := ClangCompileFlags(t.cfg)
	if err != nil {
		return domain.Command{}, err
	}

	cmd := domain.Command{Executable: t.driver, Arguments: flags}
	cmd.Arguments = append(cmd.Arguments, "-c", args.Source, "-o", args.OutputObject)
	cmd.Arguments = appendClangModuleFiles(cmd.Arguments, args.Dependencies)
	return cmd, nil
}

// Link links the objects with the clang driver. Library names are passed through unchanged.
func (t *Clang) Link(args domain.LinkArgs) (domain.Command, error) {
	if args.Output == "" {
		return domain.Command{}, unsupported("link output is empty", "driver", t.driver)
	}

	cmd := domain.Command{Executable: t.driver}
	cmd.Arguments = append(cmd.Arguments, "-o", args.Output)
	if t.cfg.DebugInfo == domain.DebugInfoFull {
		cmd.Arguments = append(cmd.Arguments, "-g")
	}
	for _, dir := range t.cfg.LibraryDirs {
		cmd.Arguments = append(cmd.Arguments, "-L"+dir)
	}
	cmd.Arguments = append(cmd.Arguments, args.Objects...)
	cmd.Arguments = append(cmd.Arguments, args.Libraries...)
	return cmd, nil
}

func appendClangModuleFiles(args []string, deps []domain.ModuleReference) []string {
	for _, dep := range deps {
		args = append(args, "-fmodule-file="+dep.Name+"="+withExtension(dep.InterfacePath, pcmExt))
	}
	return args
}
