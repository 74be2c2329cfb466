// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/importa/internal/adapters/config"
	_ "go.trai.ch/importa/internal/adapters/fs"
	_ "go.trai.ch/importa/internal/adapters/logger"
	_ "go.trai.ch/importa/internal/adapters/manifest"
	_ "go.trai.ch/importa/internal/adapters/process"
	_ "go.trai.ch/importa/internal/adapters/scanner"
	_ "go.trai.ch/importa/internal/adapters/settings"
	_ "go.trai.ch/importa/internal/adapters/telemetry"
	_ "go.trai.ch/importa/internal/adapters/toolchain"
	// Register app nodes.
	_ "go.trai.ch/importa/internal/app"
)
