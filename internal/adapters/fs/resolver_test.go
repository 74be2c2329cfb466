package fs_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/importa/internal/adapters/fs"
	"go.trai.ch/importa/internal/core/domain"
)

func TestResolver_ResolveInputs_Glob(t *testing.T) {
	tmpDir := t.TempDir()
	for _, f := range []string{"src/b.cpp", "src/a.cpp", "src/c.h"} {
		writeFile(t, filepath.Join(tmpDir, f), "content")
	}

	resolved, err := fs.NewResolver().ResolveInputs([]string{"src/*.cpp"}, tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/a.cpp", "src/b.cpp"}, resolved)
}

func TestResolver_ResolveInputs_LiteralsKeepOrder(t *testing.T) {
	resolved, err := fs.NewResolver().ResolveInputs([]string{"z.cpp", "missing/a.cpp", "z.cpp"}, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, []string{"z.cpp", "missing/a.cpp"}, resolved)
}

func TestResolver_ResolveInputs_MixedAndDeduplicated(t *testing.T) {
	tmpDir := t.TempDir()
	for _, f := range []string{"impl/x.cpp", "impl/y.cpp"} {
		writeFile(t, filepath.Join(tmpDir, f), "content")
	}

	resolved, err := fs.NewResolver().ResolveInputs([]string{"impl/y.cpp", "impl/*.cpp"}, tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"impl/y.cpp", "impl/x.cpp"}, resolved)
}

func TestResolver_ResolveInputs_NoMatches(t *testing.T) {
	_, err := fs.NewResolver().ResolveInputs([]string{"*.nonexistent"}, t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSourceNotFound))
}

func TestResolver_ResolveInputs_GlobError(t *testing.T) {
	_, err := fs.NewResolver().ResolveInputs([]string{"["}, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to glob path")
}
