package domain

// ToolchainKind names one of the supported toolchain variants.
type ToolchainKind string

const (
	// ToolchainMSVC drives cl.exe and link.exe.
	ToolchainMSVC ToolchainKind = "msvc"
	// ToolchainClang drives a single clang driver for compiling and linking.
	ToolchainClang ToolchainKind = "clang"
)

// ToolchainSettings locate the compiler and linker executables.
type ToolchainSettings struct {
	Kind     ToolchainKind
	Compiler string
	// Linker is only used by toolchains with a separate link executable.
	Linker string
}

// LinkTarget describes the optional final link step.
type LinkTarget struct {
	Output    string
	Libraries []string
}

// Project is the loaded description of everything one build invocation needs.
type Project struct {
	// Root is the directory the project file was loaded from.
	Root          string
	BuildDir      string
	Toolchain     ToolchainSettings
	Configuration BuildConfiguration
	Modules       []ModuleUnit
	// Prebuilt maps externally built module names to their interface artifacts.
	Prebuilt map[string]string
	// Discover lists directories scanned for additional module interface units.
	Discover []string
	Link     LinkTarget
}

// Module returns the module with the given name.
func (p *Project) Module(name string) (ModuleUnit, bool) {
	for _, m := range p.Modules {
		if m.Name == name {
			return m, true
		}
	}
	return ModuleUnit{}, false
}

// Graph builds the module dependency graph of the project.
func (p *Project) Graph() (*ModuleGraph, error) {
	g := NewModuleGraph()
	for name := range p.Prebuilt {
		g.AddExternal(name)
	}
	for _, m := range p.Modules {
		if err := g.AddModule(m.Name, m.Dependencies); err != nil {
			return nil, err
		}
	}
	return g, nil
}
