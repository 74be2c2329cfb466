package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/importa/internal/core/domain"
)

func TestModuleUnit_Sources(t *testing.T) {
	m := domain.ModuleUnit{
		Name:             "TestGfx",
		PrimaryInterface: "gfx/graphics.ixx",
		Partitions:       []string{"gfx/renderer.ixx", "gfx/shader.cpp"},
		Implementations:  []string{"gfx/utils.cpp"},
	}

	assert.True(t, m.HasInterface())
	assert.Equal(t, []string{
		"gfx/renderer.ixx",
		"gfx/shader.cpp",
		"gfx/graphics.ixx",
		"gfx/utils.cpp",
	}, m.Sources())

	noInterface := domain.ModuleUnit{Name: "Impl", Implementations: []string{"impl.cpp"}}
	assert.False(t, noInterface.HasInterface())
	assert.Equal(t, []string{"impl.cpp"}, noInterface.Sources())
}

func TestModuleBuildPlan_HasInterface(t *testing.T) {
	assert.False(t, (&domain.ModuleBuildPlan{}).HasInterface())
	assert.True(t, (&domain.ModuleBuildPlan{InterfacePath: "build/Core/Core.ifc"}).HasInterface())
}
