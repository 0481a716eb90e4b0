package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsum/pkg/config"
)

func TestResolveInputsSingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))

	paths, dirMode, err := resolveInputs(path)
	require.NoError(t, err)
	assert.False(t, dirMode)
	assert.Equal(t, []string{path}, paths)
}

func TestResolveInputsDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.md"), []byte("b"), 0o644))

	paths, dirMode, err := resolveInputs(root)
	require.NoError(t, err)
	assert.True(t, dirMode)
	assert.Len(t, paths, 2)
}

func TestResolveInputsEmptyDirectory(t *testing.T) {
	_, _, err := resolveInputs(t.TempDir())
	assert.Error(t, err)
}

func TestResolveInputsMissingPath(t *testing.T) {
	_, _, err := resolveInputs(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestAnalyzeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("The cat sat. The cat ran. Dogs bark."), 0o644))

	analyzeTop = 5
	t.Cleanup(func() { analyzeTop = 0 })

	report, err := analyzeFile(path, config.Load())
	require.NoError(t, err)
	assert.Equal(t, path, report.Path)
	assert.Equal(t, 8, report.WordCount)
	assert.Equal(t, 3, report.SentenceCount)
}
