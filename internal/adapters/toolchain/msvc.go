package toolchain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/importa/internal/core/domain"
	"go.trai.ch/importa/internal/core/ports"
)

var _ ports.Toolchain = (*MSVC)(nil)

// MSVC drives cl.exe for compiling and link.exe for linking.
type MSVC struct {
	compiler string
	linker   string
	cfg      domain.BuildConfiguration
}

// NewMSVC creates an MSVC toolchain. The configuration is copied.
func NewMSVC(compiler, linker string, cfg domain.BuildConfiguration) *MSVC {
	return &MSVC{
		compiler: compiler,
		linker:   linker,
		cfg:      cfg.Clone(),
	}
}

// Kind returns domain.ToolchainMSVC.
func (t *MSVC) Kind() domain.ToolchainKind {
	return domain.ToolchainMSVC
}

// EmitInterface compiles an interface unit with /interface and writes the object next to the ifc.
func (t *MSVC) EmitInterface(args domain.EmitInterfaceArgs) (domain.Command, error) {
	if args.InterfaceSource == "" {
		return domain.Command{}, unsupported("interface source is empty", "output", args.OutputInterface)
	}
	if args.OutputInterface == "" {
		return domain.Command{}, unsupported("interface output is empty", "source", args.InterfaceSource)
	}

	flags, err := MSVCCompileFlags(t.cfg)
	if err != nil {
		return domain.Command{}, err
	}

	ifc, obj := t.InterfaceOutputs(args.OutputInterface)

	cmd := domain.Command{Executable: t.compiler, Arguments: flags}
	cmd.Arguments = append(cmd.Arguments,
		"/interface", args.InterfaceSource,
		"/ifcOutput", ifc,
		"/Fo:"+obj,
	)
	cmd.Arguments = appendMSVCReferences(cmd.Arguments, args.Dependencies)
	return cmd, nil
}

// InterfaceOutputs returns the requested ifc path and the object cl.exe writes next to it.
func (t *MSVC) InterfaceOutputs(requested string) (ifc, obj string) {
	return requested, filepath.Join(filepath.Dir(requested), stem(requested)+".obj")
}

// CompileObject compiles a partition or implementation unit.
func (t *MSVC) CompileObject(args domain.CompileObjectArgs) (domain.Command, error) {
	if args.Source == "" {
		return domain.Command{}, unsupported("source is empty", "output", args.OutputObject)
	}
	if args.OutputObject == "" {
		return domain.Command{}, unsupported("object output is empty", "source", args.Source)
	}

	flags, err := MSVCCompileFlags(t.cfg)
	if err != nil {
		return domain.Command{}, err
	}

	cmd := domain.Command{Executable: t.compiler, Arguments: flags}
	cmd.Arguments = append(cmd.Arguments, args.Source, "/Fo:"+args.OutputObject)
	cmd.Arguments = appendMSVCReferences(cmd.Arguments, args.Dependencies)
	return cmd, nil
}

// Link runs link.exe over the objects.
func (t *MSVC) Link(args domain.LinkArgs) (domain.Command, error) {
	if t.linker == "" {
		return domain.Command{}, unsupported("no linker configured", "output", args.Output)
	}
	if args.Output == "" {
		return domain.Command{}, unsupported("link output is empty", "linker", t.linker)
	}

	cmd := domain.Command{Executable: t.linker}
	cmd.Arguments = append(cmd.Arguments, "/nologo", "/OUT:"+args.Output)
	if t.cfg.DebugInfo == domain.DebugInfoFull {
		cmd.Arguments = append(cmd.Arguments, "/DEBUG:FULL")
	}
	if t.cfg.Mode == domain.BuildModeRelease && t.cfg.DebugInfo == domain.DebugInfoFull {
		cmd.Arguments = append(cmd.Arguments, "/OPT:REF", "/OPT:ICF")
	}
	for _, dir := range t.cfg.LibraryDirs {
		cmd.Arguments = append(cmd.Arguments, `/LIBPATH:"`+dir+`"`)
	}
	cmd.Arguments = append(cmd.Arguments, args.Objects...)
	cmd.Arguments = append(cmd.Arguments, args.Libraries...)
	return cmd, nil
}

func appendMSVCReferences(args []string, deps []domain.ModuleReference) []string {
	for _, dep := range deps {
		args = append(args, "/reference", dep.Name+"="+dep.InterfacePath)
	}
	return args
}

// stem returns the file name without its extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// withExtension replaces the extension of path, adding one when it has none.
func withExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
