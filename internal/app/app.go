// Package app implements the application layer for importa.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/importa/internal/adapters/process"
	"go.trai.ch/importa/internal/core/domain"
	"go.trai.ch/importa/internal/core/ports"
	"go.trai.ch/importa/internal/engine/discovery"
	"go.trai.ch/importa/internal/engine/orchestrator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	settings     ports.SettingsResolver
	toolchains   ports.ToolchainFactory
	executor     ports.Executor
	store        ports.ManifestStore
	hasher       ports.Hasher
	verifier     ports.Verifier
	resolver     ports.InputResolver
	scanner      ports.SourceScanner
	walker       ports.SourceWalker
	tracer       ports.Tracer
	logger       ports.Logger
	stdout       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	settings ports.SettingsResolver,
	toolchains ports.ToolchainFactory,
	executor ports.Executor,
	store ports.ManifestStore,
	hasher ports.Hasher,
	verifier ports.Verifier,
	resolver ports.InputResolver,
	scanner ports.SourceScanner,
	walker ports.SourceWalker,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		settings:     settings,
		toolchains:   toolchains,
		executor:     executor,
		store:        store,
		hasher:       hasher,
		verifier:     verifier,
		resolver:     resolver,
		scanner:      scanner,
		walker:       walker,
		tracer:       tracer,
		logger:       log,
		stdout:       os.Stdout,
	}
}

// WithOutput redirects what the App prints for the user, including dry-run commands.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// Output returns the writer the App prints to.
func (a *App) Output() io.Writer {
	return a.stdout
}

// SetJSONLogs switches the logger to JSON lines when it supports it.
func (a *App) SetJSONLogs(enabled bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enabled)
	}
}

// BuildOptions configuration for the Build, Plan and Link methods.
type BuildOptions struct {
	// DryRun prints commands instead of running them.
	DryRun    bool
	KeepGoing bool
	// Toolchain holds command line overrides. Empty fields keep the configured values.
	Toolchain domain.ToolchainSettings
}

// PlannedModule is a module plan together with its fingerprint.
type PlannedModule struct {
	Plan        *domain.ModuleBuildPlan
	Fingerprint string
}

// Build builds every module of the project in the working directory.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	project, toolchain, err := a.prepare(opts.Toolchain)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("building %d modules with %s", len(project.Modules), toolchain.Kind()))

	return a.orchestrator(opts.DryRun).Build(ctx, project, toolchain, orchestrator.Options{
		KeepGoing: opts.KeepGoing,
		DryRun:    opts.DryRun,
	})
}

// Plan returns the build plan of every module in compilation order without running anything.
func (a *App) Plan(_ context.Context, opts BuildOptions) ([]PlannedModule, error) {
	project, toolchain, err := a.prepare(opts.Toolchain)
	if err != nil {
		return nil, err
	}

	plans, err := a.orchestrator(true).Plan(project, toolchain)
	if err != nil {
		return nil, err
	}

	out := make([]PlannedModule, 0, len(plans))
	for _, p := range plans {
		out = append(out, PlannedModule{Plan: p, Fingerprint: a.hasher.HashPlan(p)})
	}
	return out, nil
}

// Order returns the module compilation order.
func (a *App) Order(_ context.Context) ([]string, error) {
	project, err := a.loadProject()
	if err != nil {
		return nil, err
	}
	return orchestrator.Order(project)
}

// Link links the objects recorded by the last build.
func (a *App) Link(ctx context.Context, opts BuildOptions) error {
	project, toolchain, err := a.prepare(opts.Toolchain)
	if err != nil {
		return err
	}
	return a.orchestrator(opts.DryRun).Link(ctx, project, toolchain)
}

// Scan reports the module declaration and imports of each source file.
func (a *App) Scan(_ context.Context, paths []string) ([]domain.SourceInfo, error) {
	out := make([]domain.SourceInfo, 0, len(paths))
	for _, path := range paths {
		info, err := a.scanner.Scan(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to scan source"), "path", path)
		}
		out = append(out, info)
	}
	return out, nil
}

func (a *App) loadProject() (*domain.Project, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to get working directory")
	}

	project, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	return discovery.New(a.resolver, a.scanner, a.walker, a.logger).Resolve(project)
}

func (a *App) prepare(overrides domain.ToolchainSettings) (*domain.Project, ports.Toolchain, error) {
	project, err := a.loadProject()
	if err != nil {
		return nil, nil, err
	}

	settings, err := a.settings.Resolve(project.Toolchain, overrides)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to resolve toolchain settings")
	}
	project.Toolchain = settings

	toolchain, err := a.toolchains.New(settings, project.Configuration)
	if err != nil {
		return nil, nil, err
	}
	return project, toolchain, nil
}

func (a *App) orchestrator(dryRun bool) *orchestrator.Orchestrator {
	executor := a.executor
	if dryRun {
		executor = process.NewDryRun(a.stdout)
	}
	return orchestrator.New(executor, a.store, a.hasher, a.verifier, a.tracer, a.logger)
}
