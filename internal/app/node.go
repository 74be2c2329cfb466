package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/importa/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/importa/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/importa/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/importa/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"go.trai.ch/importa/internal/adapters/process"   //nolint:depguard // Wired in app layer
	"go.trai.ch/importa/internal/adapters/scanner"   //nolint:depguard // Wired in app layer
	"go.trai.ch/importa/internal/adapters/settings"  //nolint:depguard // Wired in app layer
	"go.trai.ch/importa/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/importa/internal/adapters/toolchain" //nolint:depguard // Wired in app layer
	"go.trai.ch/importa/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			settings.NodeID,
			toolchain.NodeID,
			process.NodeID,
			manifest.NodeID,
			fs.HasherNodeID,
			fs.VerifierNodeID,
			fs.ResolverNodeID,
			fs.WalkerNodeID,
			scanner.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.SettingsResolver](ctx)
	if err != nil {
		return nil, err
	}

	factory, err := graft.Dep[ports.ToolchainFactory](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ManifestStore](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[ports.Verifier](ctx)
	if err != nil {
		return nil, err
	}

	inputs, err := graft.Dep[ports.InputResolver](ctx)
	if err != nil {
		return nil, err
	}

	walker, err := graft.Dep[ports.SourceWalker](ctx)
	if err != nil {
		return nil, err
	}

	sourceScanner, err := graft.Dep[ports.SourceScanner](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(
		loader,
		resolver,
		factory,
		executor,
		store,
		hasher,
		verifier,
		inputs,
		sourceScanner,
		walker,
		tracer,
		log,
	), nil
}
