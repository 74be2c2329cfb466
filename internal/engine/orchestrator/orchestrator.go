// Package orchestrator drives a project build: it orders the modules, plans each one and runs the plans.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/importa/internal/core/domain"
	"go.trai.ch/importa/internal/core/ports"
	"go.trai.ch/importa/internal/engine/planner"
	"go.trai.ch/zerr"
)

// maxOutputMetadata bounds the command output attached to a failure.
const maxOutputMetadata = 4096

// Options control a build run.
type Options struct {
	// KeepGoing continues with modules that do not depend on a failed module.
	KeepGoing bool
	// DryRun skips everything that needs the commands to have really run:
	// output verification, interface hashing and saving the manifest.
	DryRun bool
}

// Orchestrator builds projects module by module in dependency order.
type Orchestrator struct {
	executor ports.Executor
	store    ports.ManifestStore
	hasher   ports.Hasher
	verifier ports.Verifier
	tracer   ports.Tracer
	logger   ports.Logger

	status map[string]domain.ModuleStatus
}

// New creates a new Orchestrator.
func New(
	executor ports.Executor,
	store ports.ManifestStore,
	hasher ports.Hasher,
	verifier ports.Verifier,
	tracer ports.Tracer,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		executor: executor,
		store:    store,
		hasher:   hasher,
		verifier: verifier,
		tracer:   tracer,
		logger:   logger,
		status:   make(map[string]domain.ModuleStatus),
	}
}

// Order returns the modules of project in compilation order.
func Order(project *domain.Project) ([]string, error) {
	g, err := project.Graph()
	if err != nil {
		return nil, err
	}
	return g.TopologicalOrder()
}

// Status returns the status a module reached in the last build.
func (o *Orchestrator) Status(module string) domain.ModuleStatus {
	return o.status[module]
}

// Build builds every module of project and links the result when a link target is configured.
//
// Modules are built one after the other. Each module sees the interfaces of everything built before
// it, seeded with the prebuilt interfaces of the project. Without KeepGoing the first failing module
// stops the build. Every failure is logged when it happens and all of them are joined with
// domain.ErrBuildExecutionFailed.
func (o *Orchestrator) Build(ctx context.Context, project *domain.Project, toolchain ports.Toolchain, opts Options) error {
	order, err := Order(project)
	if err != nil {
		return err
	}
	for _, name := range order {
		o.status[name] = domain.ModuleStatusPending
	}

	ctx, span := o.tracer.Start(ctx, "build", ports.WithSummary())
	defer span.End()
	span.SetAttribute("importa.modules", len(order))
	o.tracer.EmitPlan(ctx, order)

	interfaces := make(map[string]string, len(project.Prebuilt)+len(order))
	maps.Copy(interfaces, project.Prebuilt)

	manifest := &domain.Manifest{}
	var errs error
	fail := func(err error) {
		o.logger.Error(err)
		errs = errors.Join(errs, err)
	}

	for _, name := range order {
		if ctx.Err() != nil {
			fail(ctx.Err())
			break
		}

		module, _ := project.Module(name)
		if blocker := o.failedDependency(module); blocker != "" {
			o.status[name] = domain.ModuleStatusSkipped
			o.logger.Warn(fmt.Sprintf("skipping %s: dependency %s did not build", name, blocker))
			continue
		}

		o.status[name] = domain.ModuleStatusRunning
		rec, err := o.buildModule(ctx, project, module, toolchain, interfaces, opts)
		if err != nil {
			o.status[name] = domain.ModuleStatusFailed
			fail(zerr.With(zerr.Wrap(err, "module build failed"), "module", name))
			if !opts.KeepGoing {
				break
			}
			continue
		}

		o.status[name] = domain.ModuleStatusCompleted
		if rec.InterfacePath != "" {
			interfaces[name] = rec.InterfacePath
		}
		manifest.Put(rec)
	}

	if !opts.DryRun {
		if err := o.store.Save(project.BuildDir, manifest); err != nil {
			fail(err)
		}
	}

	if errs == nil && project.Link.Output != "" {
		if err := o.link(ctx, toolchain, manifest.Objects(), project.Link); err != nil {
			fail(err)
		}
	}

	if errs != nil {
		span.RecordError(errs)
		return errors.Join(domain.ErrBuildExecutionFailed, errs)
	}
	return nil
}

// Plan returns the build plan of every module in compilation order without running anything.
// Interfaces of project modules are predicted from their artifact directories.
func (o *Orchestrator) Plan(project *domain.Project, toolchain ports.Toolchain) ([]*domain.ModuleBuildPlan, error) {
	order, err := Order(project)
	if err != nil {
		return nil, err
	}

	interfaces := make(map[string]string, len(project.Prebuilt)+len(order))
	maps.Copy(interfaces, project.Prebuilt)

	plans := make([]*domain.ModuleBuildPlan, 0, len(order))
	for _, name := range order {
		module, _ := project.Module(name)
		plan, err := generatePlan(module, toolchain, project.BuildDir, interfaces)
		if err != nil {
			return nil, err
		}
		if plan.HasInterface() {
			interfaces[name] = plan.InterfacePath
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

// Link links the objects recorded by the last build into the project's link target.
func (o *Orchestrator) Link(ctx context.Context, project *domain.Project, toolchain ports.Toolchain) error {
	if project.Link.Output == "" {
		return domain.ErrNoLinkTarget
	}

	manifest, err := o.store.Load(project.BuildDir)
	if err != nil {
		return err
	}
	objects := manifest.Objects()
	if len(objects) == 0 {
		return zerr.With(zerr.Wrap(domain.ErrManifestEmpty, "nothing to link"), "build_dir", project.BuildDir)
	}

	return o.link(ctx, toolchain, objects, project.Link)
}

func (o *Orchestrator) failedDependency(module domain.ModuleUnit) string {
	for _, dep := range module.Dependencies {
		if o.status[dep].BlocksDependents() {
			return dep
		}
	}
	return ""
}

func (o *Orchestrator) buildModule(
	ctx context.Context,
	project *domain.Project,
	module domain.ModuleUnit,
	toolchain ports.Toolchain,
	interfaces map[string]string,
	opts Options,
) (domain.ModuleRecord, error) {
	ctx, span := o.tracer.Start(ctx, module.Name, ports.WithSummary())
	defer span.End()

	plan, err := generatePlan(module, toolchain, project.BuildDir, interfaces)
	if err != nil {
		span.RecordError(err)
		return domain.ModuleRecord{}, err
	}
	span.SetAttribute("importa.actions", len(plan.Actions))

	outputs := make([]string, 0, len(plan.Actions))
	for _, action := range plan.Actions {
		if err := o.run(ctx, span, action.Command); err != nil {
			span.RecordError(err)
			return domain.ModuleRecord{}, err
		}
		outputs = append(outputs, action.Output)
	}

	rec := domain.ModuleRecord{
		Module:        module.Name,
		InterfacePath: plan.InterfacePath,
		ObjectPaths:   plan.ObjectPaths,
		Fingerprint:   o.hasher.HashPlan(plan),
	}

	if opts.DryRun {
		return rec, nil
	}

	o.verify(project.Root, module.Name, outputs)

	if plan.HasInterface() {
		hash, err := o.hasher.HashFile(plan.InterfacePath)
		if err != nil {
			o.logger.Warn(fmt.Sprintf("cannot fingerprint interface of %s: %v", module.Name, err))
		}
		rec.InterfaceHash = hash
	}

	return rec, nil
}

func generatePlan(
	module domain.ModuleUnit,
	toolchain ports.Toolchain,
	buildDir string,
	interfaces map[string]string,
) (*domain.ModuleBuildPlan, error) {
	p, err := planner.New(module, toolchain, buildDir, interfaces)
	if err != nil {
		return nil, err
	}
	return p.GeneratePlan()
}

// run executes one command and turns a non-zero exit into domain.ErrCommandFailed.
func (o *Orchestrator) run(ctx context.Context, span ports.Span, cmd domain.Command) error {
	res, err := o.executor.Execute(ctx, cmd)
	if err != nil {
		return err
	}

	for _, out := range [][]byte{res.Stdout, res.Stderr} {
		if len(out) > 0 {
			_, _ = span.Write(out)
		}
	}

	if res.Success() {
		return nil
	}

	err = zerr.With(zerr.Wrap(domain.ErrCommandFailed, cmd.Executable), "exit_code", res.ExitCode)
	if output := commandOutput(res); output != "" {
		err = zerr.With(err, "output", output)
	}
	return zerr.With(err, "command", cmd.Render())
}

// verify warns about outputs a successful command did not produce.
func (o *Orchestrator) verify(root, module string, outputs []string) {
	missing, err := o.verifier.MissingOutputs(root, outputs)
	if err != nil {
		o.logger.Warn(fmt.Sprintf("cannot verify outputs of %s: %v", module, err))
		return
	}
	for _, path := range missing {
		o.logger.Warn(fmt.Sprintf("%s: expected output %s was not produced", module, path))
	}
}

func (o *Orchestrator) link(ctx context.Context, toolchain ports.Toolchain, objects []string, target domain.LinkTarget) error {
	ctx, span := o.tracer.Start(ctx, "link", ports.WithSummary())
	defer span.End()
	span.SetAttribute("importa.objects", len(objects))

	cmd, err := toolchain.Link(domain.LinkArgs{
		Objects:   slices.Clone(objects),
		Output:    target.Output,
		Libraries: target.Libraries,
	})
	if err != nil {
		span.RecordError(err)
		return zerr.With(zerr.Wrap(err, "failed to plan link"), "output", target.Output)
	}

	if err := o.run(ctx, span, cmd); err != nil {
		span.RecordError(err)
		return zerr.With(zerr.Wrap(err, "link failed"), "output", target.Output)
	}
	return nil
}

func commandOutput(res domain.ExecutionResult) string {
	out := strings.TrimSpace(string(res.Stdout) + string(res.Stderr))
	if len(out) > maxOutputMetadata {
		out = "..." + out[len(out)-maxOutputMetadata:]
	}
	return out
}
