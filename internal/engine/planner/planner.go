// Package planner turns one module unit into the ordered actions that build it.
package planner

import (
	"maps"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/importa/internal/core/domain"
	"go.trai.ch/importa/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	objectExt    = ".obj"
	interfaceExt = ".ifc"
)

// Planner plans the build of a single module.
type Planner struct {
	unit        domain.ModuleUnit
	toolchain   ports.Toolchain
	artifactDir string
	interfaces  map[string]string
}

// New creates a planner for unit and creates its artifact directory <buildRoot>/<module>.
// interfaces maps dependency module names to their built interface artifacts; it is copied.
func New(unit domain.ModuleUnit, toolchain ports.Toolchain, buildRoot string, interfaces map[string]string) (*Planner, error) {
	dir := ArtifactDir(buildRoot, unit.Name)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrArtifactDirectory, err.Error()), "path", dir)
	}

	return &Planner{
		unit:        unit,
		toolchain:   toolchain,
		artifactDir: dir,
		interfaces:  maps.Clone(interfaces),
	}, nil
}

// ArtifactDir returns the directory holding the artifacts of a module.
func ArtifactDir(buildRoot, module string) string {
	return filepath.Join(buildRoot, module)
}

// InterfacePath returns the interface path requested from the toolchain for a module.
// The toolchain may write the artifact under a different extension.
func InterfacePath(buildRoot, module string) string {
	return filepath.Join(ArtifactDir(buildRoot, module), module+interfaceExt)
}

// ArtifactDir returns the module's artifact directory.
func (p *Planner) ArtifactDir() string {
	return p.artifactDir
}

// GeneratePlan returns the actions building the module: partitions first, then the primary interface,
// then implementation units, each group in declaration order.
//
// The recorded interface path and interface object are the files the toolchain reports it writes.
// Every declared dependency must have an interface artifact. When one is missing, or the toolchain rejects
// any unit, no plan is returned.
// Sources sharing a base name map to the same object file.
func (p *Planner) GeneratePlan() (*domain.ModuleBuildPlan, error) {
	refs, err := p.references()
	if err != nil {
		return nil, err
	}

	plan := &domain.ModuleBuildPlan{Module: p.unit.Name}

	for _, src := range p.unit.Partitions {
		if err := p.compile(plan, src, refs); err != nil {
			return nil, err
		}
	}

	if p.unit.HasInterface() {
		requested := filepath.Join(p.artifactDir, p.unit.Name+interfaceExt)
		cmd, err := p.toolchain.EmitInterface(domain.EmitInterfaceArgs{
			InterfaceSource: p.unit.PrimaryInterface,
			OutputInterface: requested,
			Dependencies:    refs,
		})
		if err != nil {
			return nil, p.unitError(err, p.unit.PrimaryInterface)
		}
		ifc, obj := p.toolchain.InterfaceOutputs(requested)
		plan.Actions = append(plan.Actions, domain.BuildAction{Command: cmd, Output: ifc})
		plan.InterfacePath = ifc
		if obj != "" {
			plan.ObjectPaths = append(plan.ObjectPaths, obj)
		}
	}

	for _, src := range p.unit.Implementations {
		if err := p.compile(plan, src, refs); err != nil {
			return nil, err
		}
	}

	return plan, nil
}

func (p *Planner) references() ([]domain.ModuleReference, error) {
	var refs []domain.ModuleReference
	for _, dep := range p.unit.Dependencies {
		path, ok := p.interfaces[dep]
		if !ok {
			err := zerr.With(zerr.Wrap(domain.ErrMissingDependency, "cannot plan module"), "module", p.unit.Name)
			return nil, zerr.With(err, "dependency", dep)
		}
		refs = append(refs, domain.ModuleReference{Name: dep, InterfacePath: path})
	}
	return refs, nil
}

func (p *Planner) compile(plan *domain.ModuleBuildPlan, src string, refs []domain.ModuleReference) error {
	obj := filepath.Join(p.artifactDir, stem(src)+objectExt)
	cmd, err := p.toolchain.CompileObject(domain.CompileObjectArgs{
		Source:       src,
		OutputObject: obj,
		Dependencies: refs,
	})
	if err != nil {
		return p.unitError(err, src)
	}
	plan.Actions = append(plan.Actions, domain.BuildAction{Command: cmd, Output: obj})
	plan.ObjectPaths = append(plan.ObjectPaths, obj)
	return nil
}

func (p *Planner) unitError(err error, src string) error {
	wrapped := zerr.With(zerr.Wrap(err, "failed to plan unit"), "module", p.unit.Name)
	return zerr.With(wrapped, "source", src)
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
