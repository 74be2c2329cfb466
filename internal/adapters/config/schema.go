package config

// Projectfile represents the structure of the importa.yaml project file.
type Projectfile struct {
	Version       string            `yaml:"version"`
	BuildDir      string            `yaml:"build_dir"`
	Toolchain     ToolchainDTO      `yaml:"toolchain"`
	Configuration ConfigurationDTO  `yaml:"configuration"`
	Modules       []ModuleDTO       `yaml:"modules"`
	Prebuilt      map[string]string `yaml:"prebuilt"`
	Discover      []string          `yaml:"discover"`
	Link          LinkDTO           `yaml:"link"`
}

// ToolchainDTO selects the toolchain. Empty fields fall back to user settings and defaults.
type ToolchainDTO struct {
	Kind     string `yaml:"kind"`
	Compiler string `yaml:"compiler"`
	Linker   string `yaml:"linker"`
}

// ConfigurationDTO starts from a preset and overrides individual fields.
type ConfigurationDTO struct {
	Preset       string   `yaml:"preset"`
	Mode         string   `yaml:"mode"`
	Standard     string   `yaml:"standard"`
	Optimization string   `yaml:"optimization"`
	DebugInfo    string   `yaml:"debug_info"`
	Runtime      string   `yaml:"runtime"`
	Defines      []string `yaml:"defines"`
	IncludeDirs  []string `yaml:"include_dirs"`
	LibraryDirs  []string `yaml:"library_dirs"`
}

// ModuleDTO represents a module definition in the project file.
// Leaving out dependencies asks for them to be scanned from the sources.
type ModuleDTO struct {
	Name            string   `yaml:"name"`
	Interface       string   `yaml:"interface"`
	Partitions      []string `yaml:"partitions"`
	Implementations []string `yaml:"implementations"`
	Dependencies    []string `yaml:"dependencies"`
}

// LinkDTO describes the optional final link step.
type LinkDTO struct {
	Output    string   `yaml:"output"`
	Libraries []string `yaml:"libraries"`
}
