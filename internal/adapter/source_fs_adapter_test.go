package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	a := NewLocalSourceFSAdapter()

	t.Run("reads existing file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "main.frag")
		require.NoError(t, os.WriteFile(path, []byte("void main() {}"), 0o644))

		content, err := a.LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "void main() {}", content)
	})

	t.Run("follows symlinks", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "real.glsl")
		require.NoError(t, os.WriteFile(target, []byte("float a;"), 0o644))

		link := filepath.Join(dir, "alias.glsl")
		require.NoError(t, os.Symlink(target, link))

		content, err := a.LoadFile(link)
		require.NoError(t, err)
		assert.Equal(t, "float a;", content)
	})

	t.Run("missing file names the path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.frag")

		_, err := a.LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
	})
}

func TestWriteFile(t *testing.T) {
	a := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "out", "deep", "main.fused.frag")
	require.NoError(t, a.WriteFile(path, []byte("fused"), 0o644))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fused", string(content))
}

func TestDirLoader(t *testing.T) {
	a := NewLocalSourceFSAdapter()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "lib"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib", "util.glsl"), []byte("float a;"), 0o644))

	load := a.DirLoader(dir)

	content, err := load("lib/util.glsl")
	require.NoError(t, err)
	assert.Equal(t, "float a;", content)

	_, err = load("lib/missing.glsl")
	require.Error(t, err)
}
