package site

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, body := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestCopyTree(t *testing.T) {
	t.Parallel()
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")
	writeTree(t, src, map[string]string{
		"index.css":         "body{}",
		"images/logo.svg":   "<svg/>",
		"images/deep/x.txt": "x",
	})
	require.NoError(t, os.MkdirAll(filepath.Join(src, "empty"), 0o755))
	require.NoError(t, os.MkdirAll(dst, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dst, "index.css"), []byte("stale"), 0o644))

	n, err := CopyTree(context.Background(), src, dst)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "body{}", readFile(t, filepath.Join(dst, "index.css")))
	assert.Equal(t, "<svg/>", readFile(t, filepath.Join(dst, "images", "logo.svg")))
	assert.Equal(t, "x", readFile(t, filepath.Join(dst, "images", "deep", "x.txt")))
	assert.DirExists(t, filepath.Join(dst, "empty"))
}

func TestCopyTreeMissingSource(t *testing.T) {
	t.Parallel()
	_, err := CopyTree(context.Background(), filepath.Join(t.TempDir(), "nope"), t.TempDir())
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestCopyTreeCanceled(t *testing.T) {
	t.Parallel()
	src := t.TempDir()
	writeTree(t, src, map[string]string{"a.txt": "a"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := CopyTree(ctx, src, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}
