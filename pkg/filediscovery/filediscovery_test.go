package filediscovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "notes.txt", "hello")
	writeFile(t, root, "sub/report.docx", "zip bytes")
	writeFile(t, root, "sub/slides.pptx", "zip bytes")
	writeFile(t, root, "image.png", "binary")
	writeFile(t, root, "node_modules/pkg/readme.md", "skipped")
	writeFile(t, root, ".git/config", "skipped")

	files, err := Discover(root)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "notes.txt"),
		filepath.Join(root, "sub", "report.docx"),
		filepath.Join(root, "sub", "slides.pptx"),
	}, files)
}

func TestDiscoverHonorsGitignore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".gitignore", "drafts/\nsecret.txt\n")
	writeFile(t, root, "kept.txt", "kept")
	writeFile(t, root, "secret.txt", "hidden")
	writeFile(t, root, "drafts/wip.md", "hidden")

	files, err := Discover(root)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "kept.txt")}, files)
}

func TestDiscoverNotADirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "file.txt", "content")

	_, err := Discover(filepath.Join(root, "file.txt"))
	assert.Error(t, err)
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
