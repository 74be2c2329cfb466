// Package config provides the project file loader for importa.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/importa/internal/core/domain"
	"go.trai.ch/importa/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// Filename is the name of the project file looked up in the working directory.
	Filename = "importa.yaml"
	// DefaultBuildDir is used when the project file names no build directory.
	DefaultBuildDir = "build"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// NewLoader creates a loader for the default project file name.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{Filename: Filename}
}

// Load reads the project file from the given working directory.
func (l *FileConfigLoader) Load(cwd string) (*domain.Project, error) {
	return Load(filepath.Join(cwd, l.Filename))
}

// Load reads a project file from the given path and returns a domain.Project.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Load(path string) (*domain.Project, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read project file"), "path", path)
	}

	var file Projectfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse project file"), "path", path)
	}

	project, err := file.toDomain()
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	project.Root = filepath.Dir(path)
	return project, nil
}

func (f *Projectfile) toDomain() (*domain.Project, error) {
	cfg, err := f.Configuration.toDomain()
	if err != nil {
		return nil, err
	}

	buildDir := f.BuildDir
	if buildDir == "" {
		buildDir = DefaultBuildDir
	}

	project := &domain.Project{
		BuildDir: filepath.Clean(buildDir),
		Toolchain: domain.ToolchainSettings{
			Kind:     domain.ToolchainKind(f.Toolchain.Kind),
			Compiler: f.Toolchain.Compiler,
			Linker:   f.Toolchain.Linker,
		},
		Configuration: cfg,
		Prebuilt:      f.Prebuilt,
		Discover:      f.Discover,
		Link: domain.LinkTarget{
			Output:    f.Link.Output,
			Libraries: f.Link.Libraries,
		},
	}

	seen := make(map[string]bool, len(f.Modules))
	for i, dto := range f.Modules {
		if dto.Name == "" {
			return nil, zerr.With(zerr.New("module name is required"), "index", i)
		}
		if seen[dto.Name] {
			return nil, zerr.With(zerr.Wrap(domain.ErrModuleAlreadyExists, "duplicate module in project file"), "module", dto.Name)
		}
		if _, ok := f.Prebuilt[dto.Name]; ok {
			return nil, zerr.With(zerr.New("module is also declared as prebuilt"), "module", dto.Name)
		}
		if dto.Interface == "" && len(dto.Partitions) == 0 && len(dto.Implementations) == 0 {
			return nil, zerr.With(zerr.New("module has no sources"), "module", dto.Name)
		}
		seen[dto.Name] = true

		project.Modules = append(project.Modules, domain.ModuleUnit{
			Name:             dto.Name,
			PrimaryInterface: dto.Interface,
			Partitions:       dto.Partitions,
			Implementations:  dto.Implementations,
			Dependencies:     dto.Dependencies,
			ScanImports:      dto.Dependencies == nil,
		})
	}

	if len(project.Modules) == 0 && len(project.Discover) == 0 {
		return nil, zerr.Wrap(domain.ErrNoModules, "project declares neither modules nor discover directories")
	}

	return project, nil
}

func (c *ConfigurationDTO) toDomain() (domain.BuildConfiguration, error) {
	cfg, err := domain.ConfigurationPreset(c.Preset)
	if err != nil {
		return cfg, err
	}

	if c.Mode != "" {
		if cfg.Mode, err = domain.ParseBuildMode(c.Mode); err != nil {
			return cfg, err
		}
	}
	if c.Standard != "" {
		if cfg.Standard, err = domain.ParseCppStandard(c.Standard); err != nil {
			return cfg, err
		}
	}
	if c.Optimization != "" {
		if cfg.Optimization, err = domain.ParseOptimizationLevel(c.Optimization); err != nil {
			return cfg, err
		}
	}
	if c.DebugInfo != "" {
		if cfg.DebugInfo, err = domain.ParseDebugInfo(c.DebugInfo); err != nil {
			return cfg, err
		}
	}
	if c.Runtime != "" {
		if cfg.Runtime, err = domain.ParseRuntime(c.Runtime); err != nil {
			return cfg, err
		}
	}

	// Listed defines replace the preset's, so a project can drop _DEBUG or NDEBUG.
	if c.Defines != nil {
		cfg.Defines = c.Defines
	}
	cfg.IncludeDirs = c.IncludeDirs
	cfg.LibraryDirs = c.LibraryDirs

	return cfg, cfg.Validate()
}
