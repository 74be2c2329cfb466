package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/importa/internal/adapters/manifest"
	"go.trai.ch/importa/internal/core/domain"
)

func TestStore_LoadMissing(t *testing.T) {
	m, err := manifest.NewStore().Load(filepath.Join(t.TempDir(), "build"))
	require.NoError(t, err)
	assert.Empty(t, m.Modules)
}

func TestStore_Persistence(t *testing.T) {
	buildDir := filepath.Join(t.TempDir(), "nested", "build")
	store := manifest.NewStore()

	want := &domain.Manifest{}
	want.Put(domain.ModuleRecord{
		Module:        "Core",
		InterfacePath: "build/Core/Core.ifc",
		InterfaceHash: "00000000deadbeef",
		ObjectPaths:   []string{"build/Core/Core.obj"},
		Fingerprint:   "0123456789abcdef",
	})
	want.Put(domain.ModuleRecord{
		Module:      "App",
		ObjectPaths: []string{"build/App/main.obj"},
	})

	require.NoError(t, store.Save(buildDir, want))
	assert.FileExists(t, filepath.Join(buildDir, manifest.Filename))

	got, err := manifest.NewStore().Load(buildDir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, []string{"build/Core/Core.obj", "build/App/main.obj"}, got.Objects())
}

func TestStore_OmitsEmptyFields(t *testing.T) {
	buildDir := t.TempDir()
	m := &domain.Manifest{}
	m.Put(domain.ModuleRecord{Module: "App", ObjectPaths: []string{"main.obj"}})

	require.NoError(t, manifest.NewStore().Save(buildDir, m))

	data, err := os.ReadFile(manifest.Path(buildDir))
	require.NoError(t, err)
	assert.JSONEq(t, `{"modules": [{"module": "App", "object_paths": ["main.obj"]}]}`, string(data))
}

func TestStore_LoadEmptyFile(t *testing.T) {
	buildDir := t.TempDir()
	require.NoError(t, os.WriteFile(manifest.Path(buildDir), nil, 0o600))

	m, err := manifest.NewStore().Load(buildDir)
	require.NoError(t, err)
	assert.Empty(t, m.Modules)
}

func TestStore_LoadCorrupt(t *testing.T) {
	buildDir := t.TempDir()
	require.NoError(t, os.WriteFile(manifest.Path(buildDir), []byte("{not json"), 0o600))

	_, err := manifest.NewStore().Load(buildDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal build manifest")
}
