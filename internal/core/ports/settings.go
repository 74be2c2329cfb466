package ports

import "go.trai.ch/importa/internal/core/domain"

// SettingsResolver layers toolchain settings from every configuration source.
//
//go:generate go run go.uber.org/mock/mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks
type SettingsResolver interface {
	// Resolve merges the project's settings with user configuration, environment and the given overrides.
	// Non-empty override fields win over every other source.
	Resolve(project, overrides domain.ToolchainSettings) (domain.ToolchainSettings, error)
}
