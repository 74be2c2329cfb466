package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/importa/internal/adapters/fs"
	"go.trai.ch/importa/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestWalker_WalkFiles(t *testing.T) {
	// tmp/
	//   .git/config
	//   ignored/file
	//   src/main.cpp
	//   README.md
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".git", "config"), "git config")
	writeFile(t, filepath.Join(tmpDir, "ignored", "file"), "ignored content")
	writeFile(t, filepath.Join(tmpDir, "src", "main.cpp"), "int main() {}")
	writeFile(t, filepath.Join(tmpDir, "README.md"), "# Readme")

	walker := fs.NewWalker()

	files := make(map[string]bool)
	for path := range walker.WalkFiles(tmpDir, []string{"ignored"}) {
		rel, err := filepath.Rel(tmpDir, path)
		if err != nil {
			t.Fatal(err)
		}
		files[filepath.ToSlash(rel)] = true
	}

	if files[".git/config"] {
		t.Error("expected .git/config to be skipped")
	}
	if files["ignored/file"] {
		t.Error("expected ignored/file to be skipped")
	}
	if !files["src/main.cpp"] {
		t.Error("expected src/main.cpp to be found")
	}
	if !files["README.md"] {
		t.Error("expected README.md to be found")
	}
}

func TestWalker_WalkInterfaces(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "core", "core.ixx"), "export module Core;")
	writeFile(t, filepath.Join(tmpDir, "core", "core.cpp"), "module Core;")
	writeFile(t, filepath.Join(tmpDir, "math", "Math.CPPM"), "export module Math;")
	writeFile(t, filepath.Join(tmpDir, "third_party", "vendored.ixx"), "export module Vendored;")
	writeFile(t, filepath.Join(tmpDir, ".git", "hooks.ixx"), "")

	var got []string
	for path := range fs.NewWalker().WalkInterfaces(tmpDir, []string{"third_party"}) {
		rel, err := filepath.Rel(tmpDir, path)
		require.NoError(t, err)
		got = append(got, filepath.ToSlash(rel))
	}

	assert.Equal(t, []string{"core/core.ixx", "math/Math.CPPM"}, got)
}

func TestWalker_WalkInterfaces_StopsEarly(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a.ixx"), "")
	writeFile(t, filepath.Join(tmpDir, "b.ixx"), "")

	var count int
	for range fs.NewWalker().WalkInterfaces(tmpDir, nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestHasher_ComputeFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "core.ifc")
	writeFile(t, path, "hello world")

	hasher := fs.NewHasher()

	hash1, err := hasher.ComputeFileHash(path)
	require.NoError(t, err)
	assert.NotZero(t, hash1)

	hash2, err := hasher.ComputeFileHash(path)
	require.NoError(t, err)
	assert.Equal(t, hash1, hash2, "expected deterministic hash")

	hex, err := hasher.HashFile(path)
	require.NoError(t, err)
	assert.Len(t, hex, 16)

	writeFile(t, path, "hello there")
	changed, err := hasher.HashFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, hex, changed)

	_, err = hasher.HashFile(filepath.Join(t.TempDir(), "missing.ifc"))
	require.Error(t, err)
}

func TestHasher_HashPlan(t *testing.T) {
	plan := func() *domain.ModuleBuildPlan {
		return &domain.ModuleBuildPlan{
			Module: "Core",
			Actions: []domain.BuildAction{
				{
					Command: domain.Command{Executable: "cl.exe", Arguments: []string{"/c", "core.cpp"}},
					Output:  "build/Core/core.obj",
				},
			},
			ObjectPaths:   []string{"build/Core/core.obj"},
			InterfacePath: "build/Core/Core.ifc",
		}
	}

	hasher := fs.NewHasher()
	base := hasher.HashPlan(plan())
	assert.Len(t, base, 16)
	assert.Equal(t, base, hasher.HashPlan(plan()))

	renamed := plan()
	renamed.Module = "Gfx"
	assert.NotEqual(t, base, hasher.HashPlan(renamed))

	flagged := plan()
	flagged.Actions[0].Command.Arguments = append(flagged.Actions[0].Command.Arguments, "/DNDEBUG")
	assert.NotEqual(t, base, hasher.HashPlan(flagged))

	// Argument boundaries are part of the fingerprint.
	merged := plan()
	merged.Actions[0].Command.Arguments = []string{"/ccore.cpp"}
	assert.NotEqual(t, base, hasher.HashPlan(merged))

	reordered := plan()
	reordered.Actions = append(reordered.Actions, domain.BuildAction{
		Command: domain.Command{Executable: "cl.exe", Arguments: []string{"/c", "util.cpp"}},
		Output:  "build/Core/util.obj",
	})
	swapped := plan()
	swapped.Actions = append([]domain.BuildAction{reordered.Actions[1]}, swapped.Actions...)
	assert.NotEqual(t, hasher.HashPlan(reordered), hasher.HashPlan(swapped))
}
