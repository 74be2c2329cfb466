package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/importa/internal/core/domain"
)

func TestManifest_PutGet(t *testing.T) {
	m := &domain.Manifest{}
	m.Put(domain.ModuleRecord{Module: "Core", InterfacePath: "build/Core/Core.ifc", ObjectPaths: []string{"build/Core/Core.obj"}})
	m.Put(domain.ModuleRecord{Module: "App", ObjectPaths: []string{"build/App/main.obj"}})

	rec, ok := m.Get("Core")
	require.True(t, ok)
	assert.Equal(t, "build/Core/Core.ifc", rec.InterfacePath)

	_, ok = m.Get("Gfx")
	assert.False(t, ok)

	m.Put(domain.ModuleRecord{Module: "Core", InterfacePath: "build/Core/Core.ifc", ObjectPaths: []string{"build/Core/a.obj", "build/Core/Core.obj"}})
	require.Len(t, m.Modules, 2)
	assert.Equal(t, "Core", m.Modules[0].Module)

	assert.Equal(t, []string{"build/Core/a.obj", "build/Core/Core.obj", "build/App/main.obj"}, m.Objects())
	assert.Equal(t, map[string]string{"Core": "build/Core/Core.ifc"}, m.Interfaces())
}
