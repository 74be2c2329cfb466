package domain

import "slices"

// ModuleUnit describes the sources of one named C++ module.
type ModuleUnit struct {
	Name string
	// PrimaryInterface is the source exporting the module. Empty when the module has none.
	PrimaryInterface string
	Partitions       []string
	Implementations  []string
	// Dependencies are the names of the modules this module imports.
	Dependencies []string
	// ScanImports asks for Dependencies to be read from the sources instead of being declared.
	ScanImports bool
}

// HasInterface reports whether the module declares a primary interface unit.
func (m ModuleUnit) HasInterface() bool {
	return m.PrimaryInterface != ""
}

// Sources returns every source of the module in planning order.
func (m ModuleUnit) Sources() []string {
	out := make([]string, 0, len(m.Partitions)+len(m.Implementations)+1)
	out = append(out, m.Partitions...)
	if m.HasInterface() {
		out = append(out, m.PrimaryInterface)
	}
	return append(out, m.Implementations...)
}

// ModuleReference makes an already-built interface visible under its module name.
type ModuleReference struct {
	Name          string
	InterfacePath string
}

// BuildAction pairs a command with the artifact it is expected to produce.
type BuildAction struct {
	Command Command
	Output  string
}

// ModuleBuildPlan is the ordered list of actions that builds one module.
type ModuleBuildPlan struct {
	Module  string
	Actions []BuildAction
	// ObjectPaths lists every object file the plan produces, for the linker.
	ObjectPaths []string
	// InterfacePath is the module's interface artifact. Empty when the module has no primary interface.
	InterfacePath string
}

// HasInterface reports whether the plan produces an interface artifact.
func (p *ModuleBuildPlan) HasInterface() bool {
	return p.InterfacePath != ""
}

// EmitInterfaceArgs is the intent to compile a primary interface unit.
type EmitInterfaceArgs struct {
	InterfaceSource string
	OutputInterface string
	Dependencies    []ModuleReference
}

// CompileObjectArgs is the intent to compile a partition or implementation unit.
type CompileObjectArgs struct {
	Source       string
	OutputObject string
	Dependencies []ModuleReference
}

// LinkArgs is the intent to link a final binary.
type LinkArgs struct {
	Objects   []string
	Output    string
	Libraries []string
}

// SourceInfo is what a scanner reports about one source file.
type SourceInfo struct {
	Path string
	// Module is the declared module name. Empty when the file exports no module.
	Module  string
	Imports []string
}

// uniqueStrings drops duplicates while keeping the first occurrence of each value.
func uniqueStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" || slices.Contains(out, s) {
			continue
		}
		out = append(out, s)
	}
	return out
}
