package toolchain

import (
	"go.trai.ch/importa/internal/core/domain"
	"go.trai.ch/importa/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ToolchainFactory = (*Factory)(nil)

// Factory creates toolchains from settings.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// New returns the toolchain variant named by settings.Kind.
func (f *Factory) New(settings domain.ToolchainSettings, cfg domain.BuildConfiguration) (ports.Toolchain, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch settings.Kind {
	case domain.ToolchainMSVC:
		return NewMSVC(settings.Compiler, settings.Linker, cfg), nil
	case domain.ToolchainClang:
		return NewClang(settings.Compiler, cfg), nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownToolchain, "cannot create toolchain"), "kind", string(settings.Kind))
	}
}
