package planner_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/importa/internal/adapters/toolchain"
	"go.trai.ch/importa/internal/core/domain"
	"go.trai.ch/importa/internal/core/ports/mocks"
	"go.trai.ch/importa/internal/engine/planner"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func testGfx() domain.ModuleUnit {
	return domain.ModuleUnit{
		Name:             "TestGfx",
		PrimaryInterface: "gfx/graphics.ixx",
		Partitions:       []string{"gfx/renderer.ixx", "gfx/shader.cpp"},
		Implementations:  []string{"gfx/utils.cpp"},
		Dependencies:     []string{"Core"},
	}
}

func TestNew_CreatesArtifactDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	buildRoot := filepath.Join(t.TempDir(), "build")

	p, err := planner.New(testGfx(), mocks.NewMockToolchain(ctrl), buildRoot, nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(buildRoot, "TestGfx"), p.ArtifactDir())
	assert.DirExists(t, p.ArtifactDir())
}

func TestNew_ArtifactDirectoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	blocker := filepath.Join(t.TempDir(), "build")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o600))

	_, err := planner.New(testGfx(), mocks.NewMockToolchain(ctrl), blocker, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrArtifactDirectory))
}

func TestGeneratePlan_Ordering(t *testing.T) {
	ctrl := gomock.NewController(t)
	tc := mocks.NewMockToolchain(ctrl)

	buildRoot := filepath.Join(t.TempDir(), "build")
	artDir := filepath.Join(buildRoot, "TestGfx")
	refs := []domain.ModuleReference{{Name: "Core", InterfacePath: "build/Core/Core.ifc"}}

	cmd := func(name string) domain.Command {
		return domain.Command{Executable: "cc", Arguments: []string{name}}
	}

	gomock.InOrder(
		tc.EXPECT().CompileObject(domain.CompileObjectArgs{
			Source: "gfx/renderer.ixx", OutputObject: filepath.Join(artDir, "renderer.obj"), Dependencies: refs,
		}).Return(cmd("P1"), nil),
		tc.EXPECT().CompileObject(domain.CompileObjectArgs{
			Source: "gfx/shader.cpp", OutputObject: filepath.Join(artDir, "shader.obj"), Dependencies: refs,
		}).Return(cmd("P2"), nil),
		tc.EXPECT().EmitInterface(domain.EmitInterfaceArgs{
			InterfaceSource: "gfx/graphics.ixx", OutputInterface: filepath.Join(artDir, "TestGfx.ifc"), Dependencies: refs,
		}).Return(cmd("I"), nil),
		tc.EXPECT().CompileObject(domain.CompileObjectArgs{
			Source: "gfx/utils.cpp", OutputObject: filepath.Join(artDir, "utils.obj"), Dependencies: refs,
		}).Return(cmd("M1"), nil),
	)
	tc.EXPECT().InterfaceOutputs(filepath.Join(artDir, "TestGfx.ifc")).
		Return(filepath.Join(artDir, "TestGfx.ifc"), filepath.Join(artDir, "TestGfx.obj"))

	p, err := planner.New(testGfx(), tc, buildRoot, map[string]string{"Core": "build/Core/Core.ifc"})
	require.NoError(t, err)

	plan, err := p.GeneratePlan()
	require.NoError(t, err)

	assert.Equal(t, "TestGfx", plan.Module)
	require.Len(t, plan.Actions, 4)
	for i, want := range []string{"P1", "P2", "I", "M1"} {
		assert.Equal(t, cmd(want), plan.Actions[i].Command)
	}
	assert.Equal(t, filepath.Join(artDir, "TestGfx.ifc"), plan.InterfacePath)
	assert.Equal(t, planner.InterfacePath(buildRoot, "TestGfx"), plan.InterfacePath)
	assert.True(t, plan.HasInterface())
	assert.Equal(t, plan.InterfacePath, plan.Actions[2].Output)
	assert.Equal(t, []string{
		filepath.Join(artDir, "renderer.obj"),
		filepath.Join(artDir, "shader.obj"),
		filepath.Join(artDir, "TestGfx.obj"),
		filepath.Join(artDir, "utils.obj"),
	}, plan.ObjectPaths)
}

func TestGeneratePlan_MissingDependency(t *testing.T) {
	ctrl := gomock.NewController(t)
	tc := mocks.NewMockToolchain(ctrl)

	p, err := planner.New(testGfx(), tc, t.TempDir(), map[string]string{})
	require.NoError(t, err)

	plan, err := p.GeneratePlan()
	require.Error(t, err)
	assert.Nil(t, plan)
	assert.True(t, errors.Is(err, domain.ErrMissingDependency))

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "TestGfx", zErr.Metadata()["module"])
	assert.Equal(t, "Core", zErr.Metadata()["dependency"])
}

func TestGeneratePlan_InterfacesAreSnapshotted(t *testing.T) {
	ctrl := gomock.NewController(t)
	tc := mocks.NewMockToolchain(ctrl)

	interfaces := map[string]string{"Core": "build/Core/Core.ifc"}
	p, err := planner.New(testGfx(), tc, t.TempDir(), interfaces)
	require.NoError(t, err)
	delete(interfaces, "Core")

	tc.EXPECT().CompileObject(gomock.Any()).Return(domain.Command{Executable: "cc"}, nil).Times(3)
	tc.EXPECT().EmitInterface(gomock.Any()).Return(domain.Command{Executable: "cc"}, nil)
	tc.EXPECT().InterfaceOutputs(gomock.Any()).Return("TestGfx.ifc", "TestGfx.obj")

	_, err = p.GeneratePlan()
	require.NoError(t, err)
}

func TestGeneratePlan_ToolchainFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	tc := mocks.NewMockToolchain(ctrl)

	unsupported := zerr.Wrap(domain.ErrUnsupportedIntent, "interface output is empty")
	tc.EXPECT().CompileObject(gomock.Any()).Return(domain.Command{Executable: "cc"}, nil).Times(2)
	tc.EXPECT().EmitInterface(gomock.Any()).Return(domain.Command{}, unsupported)

	p, err := planner.New(testGfx(), tc, t.TempDir(), map[string]string{"Core": "core.ifc"})
	require.NoError(t, err)

	plan, err := p.GeneratePlan()
	require.Error(t, err)
	assert.Nil(t, plan)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedIntent))

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "TestGfx", zErr.Metadata()["module"])
	assert.Equal(t, "gfx/graphics.ixx", zErr.Metadata()["source"])
}

func TestGeneratePlan_NoInterface(t *testing.T) {
	ctrl := gomock.NewController(t)
	tc := mocks.NewMockToolchain(ctrl)
	buildRoot := t.TempDir()

	unit := domain.ModuleUnit{Name: "App", Implementations: []string{"app/main.cpp", "other/main.cpp"}}
	tc.EXPECT().CompileObject(gomock.Any()).Return(domain.Command{Executable: "cc"}, nil).Times(2)

	p, err := planner.New(unit, tc, buildRoot, nil)
	require.NoError(t, err)

	plan, err := p.GeneratePlan()
	require.NoError(t, err)
	assert.False(t, plan.HasInterface())
	assert.Empty(t, plan.InterfacePath)

	// Same base names collide on one object path.
	obj := filepath.Join(buildRoot, "App", "main.obj")
	assert.Equal(t, []string{obj, obj}, plan.ObjectPaths)
}

func TestGeneratePlan_RecordsToolchainArtifacts(t *testing.T) {
	buildRoot := filepath.Join(t.TempDir(), "build")
	artDir := filepath.Join(buildRoot, "TestGfx")
	clang := toolchain.NewClang("clang++", domain.DebugDefault())

	p, err := planner.New(testGfx(), clang, buildRoot, map[string]string{"Core": "build/Core/Core.pcm"})
	require.NoError(t, err)

	plan, err := p.GeneratePlan()
	require.NoError(t, err)

	pcm := filepath.Join(artDir, "TestGfx.pcm")
	assert.Equal(t, pcm, plan.InterfacePath)
	assert.Equal(t, pcm, plan.Actions[2].Output)
	assert.Contains(t, plan.Actions[2].Command.Arguments, pcm)
	assert.Equal(t, []string{
		filepath.Join(artDir, "renderer.obj"),
		filepath.Join(artDir, "shader.obj"),
		filepath.Join(artDir, "utils.obj"),
	}, plan.ObjectPaths)
}
