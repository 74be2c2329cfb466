// Package discovery completes a loaded project before it is ordered and built.
package discovery

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/importa/internal/core/domain"
	"go.trai.ch/importa/internal/core/ports"
	"go.trai.ch/zerr"
)

// Discoverer expands source patterns, reads imports of modules that do not declare them,
// and adds the modules found in discovery directories.
type Discoverer struct {
	resolver ports.InputResolver
	scanner  ports.SourceScanner
	walker   ports.SourceWalker
	logger   ports.Logger
}

// New creates a new Discoverer.
func New(
	resolver ports.InputResolver,
	scanner ports.SourceScanner,
	walker ports.SourceWalker,
	logger ports.Logger,
) *Discoverer {
	return &Discoverer{
		resolver: resolver,
		scanner:  scanner,
		walker:   walker,
		logger:   logger,
	}
}

// Resolve returns a copy of project with every module ready for planning.
// The given project is not modified.
func (d *Discoverer) Resolve(project *domain.Project) (*domain.Project, error) {
	out := *project
	out.Modules = make([]domain.ModuleUnit, 0, len(project.Modules))

	for _, m := range project.Modules {
		resolved, err := d.resolveModule(project.Root, m)
		if err != nil {
			return nil, err
		}
		out.Modules = append(out.Modules, resolved)
	}

	for _, dir := range project.Discover {
		found, err := d.discover(project.Root, dir)
		if err != nil {
			return nil, err
		}
		for _, m := range found {
			if _, exists := out.Module(m.Name); exists {
				d.logger.Warn(fmt.Sprintf("discovered module %s in %s is already declared, skipping", m.Name, m.PrimaryInterface))
				continue
			}
			if _, prebuilt := project.Prebuilt[m.Name]; prebuilt {
				d.logger.Warn(fmt.Sprintf("discovered module %s in %s is prebuilt, skipping", m.Name, m.PrimaryInterface))
				continue
			}
			out.Modules = append(out.Modules, m)
		}
	}

	if len(out.Modules) == 0 {
		return nil, domain.ErrNoModules
	}

	return &out, nil
}

func (d *Discoverer) resolveModule(root string, m domain.ModuleUnit) (domain.ModuleUnit, error) {
	var err error
	if m.Partitions, err = d.expand(root, m.Name, m.Partitions); err != nil {
		return m, err
	}
	if m.Implementations, err = d.expand(root, m.Name, m.Implementations); err != nil {
		return m, err
	}
	m.Dependencies = slices.Clone(m.Dependencies)

	if !m.ScanImports {
		return m, nil
	}

	var imports []string
	for _, src := range m.Sources() {
		info, err := d.scanner.Scan(absolute(root, src))
		if err != nil {
			return m, zerr.With(zerr.With(zerr.Wrap(err, "failed to scan imports"), "module", m.Name), "source", src)
		}
		imports = append(imports, info.Imports...)
	}
	m.Dependencies = ModuleDependencies(m.Name, imports)

	return m, nil
}

func (d *Discoverer) expand(root, module string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	paths, err := d.resolver.ResolveInputs(patterns, root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve sources"), "module", module)
	}
	return paths, nil
}

// discover builds modules from the interface units below dir.
// A file exporting a partition joins the module it belongs to when that module is found too.
func (d *Discoverer) discover(root, dir string) ([]domain.ModuleUnit, error) {
	var (
		modules    []domain.ModuleUnit
		partitions = make(map[string][]domain.SourceInfo)
		imports    = make(map[string][]string)
	)

	for path := range d.walker.WalkInterfaces(absolute(root, dir), nil) {
		info, err := d.scanner.Scan(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to scan interface"), "path", path)
		}
		rel := relative(root, path)

		if info.Module == "" {
			d.logger.Warn(fmt.Sprintf("no module declaration in %s, skipping", rel))
			continue
		}

		if owner, _, ok := strings.Cut(info.Module, ":"); ok {
			info.Path = rel
			partitions[owner] = append(partitions[owner], info)
			continue
		}

		if slices.ContainsFunc(modules, func(m domain.ModuleUnit) bool { return m.Name == info.Module }) {
			d.logger.Warn(fmt.Sprintf("module %s is exported again by %s, skipping", info.Module, rel))
			continue
		}
		modules = append(modules, domain.ModuleUnit{Name: info.Module, PrimaryInterface: rel})
		imports[info.Module] = info.Imports
	}

	for i := range modules {
		m := &modules[i]
		all := slices.Clone(imports[m.Name])
		for _, part := range partitions[m.Name] {
			m.Partitions = append(m.Partitions, part.Path)
			all = append(all, part.Imports...)
		}
		delete(partitions, m.Name)
		m.Dependencies = ModuleDependencies(m.Name, all)
	}

	for _, owner := range slices.Sorted(maps.Keys(partitions)) {
		for _, part := range partitions[owner] {
			d.logger.Warn(fmt.Sprintf("partition %s in %s has no discovered module %s, skipping", part.Module, part.Path, owner))
		}
	}

	return modules, nil
}

// ModuleDependencies turns the imports found in the units of module into its dependency list.
// Imports of the module itself and of its own partitions are dropped, and a partition of another
// module counts as that module. The first occurrence of each name keeps its position.
func ModuleDependencies(module string, imports []string) []string {
	var deps []string
	for _, name := range imports {
		if strings.HasPrefix(name, ":") {
			continue
		}
		name, _, _ = strings.Cut(name, ":")
		if name == "" || name == module || slices.Contains(deps, name) {
			continue
		}
		deps = append(deps, name)
	}
	return deps
}

func absolute(root, path string) string {
	if filepath.IsAbs(path) || root == "" {
		return path
	}
	return filepath.Join(root, path)
}

func relative(root, path string) string {
	if root == "" {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
