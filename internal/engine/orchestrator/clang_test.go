package orchestrator_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/importa/internal/adapters/fs"
	"go.trai.ch/importa/internal/adapters/manifest"
	"go.trai.ch/importa/internal/adapters/process"
	"go.trai.ch/importa/internal/adapters/telemetry"
	"go.trai.ch/importa/internal/adapters/toolchain"
	"go.trai.ch/importa/internal/core/domain"
	"go.trai.ch/importa/internal/core/ports/mocks"
	"go.trai.ch/importa/internal/engine/orchestrator"
	"go.uber.org/mock/gomock"
)

// fakeDriver touches every file named after -o, like a compiler that always succeeds.
const fakeDriver = `#!/bin/sh
while [ $# -gt 0 ]; do
	if [ "$1" = "-o" ]; then
		shift
		mkdir -p "$(dirname "$1")"
		echo artifact > "$1"
	fi
	shift
done
`

func TestBuild_ClangRecordsWrittenArtifacts(t *testing.T) {
	root := t.TempDir()
	driver := filepath.Join(t.TempDir(), "clang++")
	require.NoError(t, os.WriteFile(driver, []byte(fakeDriver), 0o755)) //nolint:gosec // test driver must be executable

	buildDir := filepath.Join(root, "build")
	project := &domain.Project{
		Root:     root,
		BuildDir: buildDir,
		Modules: []domain.ModuleUnit{
			{Name: "App", Implementations: []string{"app/main.cpp"}, Dependencies: []string{"Core"}},
			{Name: "Core", PrimaryInterface: "core/core.cppm"},
		},
		Link: domain.LinkTarget{Output: filepath.Join(root, "bin", "app")},
	}

	// Any warning about a missing output or an unreadable interface fails the mock.
	logger := mocks.NewMockLogger(gomock.NewController(t))
	store := manifest.NewStore()

	o := orchestrator.New(
		process.NewLocal(), store, fs.NewHasher(), fs.NewVerifier(), telemetry.NewNoOpTracer(), logger,
	)
	clang := toolchain.NewClang(driver, domain.DebugDefault())
	require.NoError(t, o.Build(context.Background(), project, clang, orchestrator.Options{}))

	pcm := filepath.Join(buildDir, "Core", "Core.pcm")
	assert.FileExists(t, pcm)
	assert.NoFileExists(t, filepath.Join(buildDir, "Core", "Core.ifc"))
	assert.FileExists(t, filepath.Join(root, "bin", "app"))

	saved, err := store.Load(buildDir)
	require.NoError(t, err)

	core, ok := saved.Get("Core")
	require.True(t, ok)
	assert.Equal(t, pcm, core.InterfacePath)
	assert.NotEmpty(t, core.InterfaceHash)
	assert.Empty(t, core.ObjectPaths)

	assert.Equal(t, []string{filepath.Join(buildDir, "App", "main.obj")}, saved.Objects())
}
