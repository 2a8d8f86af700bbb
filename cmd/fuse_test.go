package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeShaderTree(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	return dir
}

func TestFuseCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	dir := writeShaderTree(t, map[string]string{
		"main.frag":     "void main() {\n#include_once \"lib/util.glsl\"\n}",
		"lib/util.glsl": "float a;",
	})
	outDir := filepath.Join(dir, "out")

	output, err := executeCommand(t,
		"fuse", filepath.Join(dir, "main.frag"),
		"-o", outDir, "--manifest=false")
	require.NoError(t, err)

	fused, err := os.ReadFile(filepath.Join(outDir, "main.fused.frag"))
	require.NoError(t, err)
	assert.Equal(t, "void main() {\nfloat a;\n}", string(fused))

	assert.Contains(t, output, "main.fused.frag")
	assert.Contains(t, output, "Total Entries 1")
}

func TestFuseCommandManifest(t *testing.T) {
	t.Chdir(t.TempDir())

	dir := writeShaderTree(t, map[string]string{
		"main.frag": "#include_once \"util.glsl\"\nvoid main() {}",
		"util.glsl": "float a;",
	})
	outDir := filepath.Join(dir, "out")

	_, err := executeCommand(t,
		"fuse", filepath.Join(dir, "main.frag"),
		"-o", outDir, "--manifest=true")
	require.NoError(t, err)

	manifest, err := manifestStore.LoadManifest(
		filepath.Join(outDir, "main.fused.frag.provenance.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 2, manifest.Lines)
	assert.Len(t, manifest.Files, 2)
}

func TestFuseCommandMount(t *testing.T) {
	t.Chdir(t.TempDir())

	shared := writeShaderTree(t, map[string]string{
		"constants.glsl": "const int N = 4;",
	})
	dir := writeShaderTree(t, map[string]string{
		"main.frag": "#include_once \"shared://constants.glsl\"\nvoid main() {}",
	})
	outDir := filepath.Join(dir, "out")

	_, err := executeCommand(t,
		"fuse", filepath.Join(dir, "main.frag"),
		"-o", outDir, "--manifest=false",
		"-m", "shared="+shared)
	require.NoError(t, err)

	fused, err := os.ReadFile(filepath.Join(outDir, "main.fused.frag"))
	require.NoError(t, err)
	assert.Equal(t, "const int N = 4;\nvoid main() {}", string(fused))
}

func TestFuseCommandRequiresArgs(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := executeCommand(t, "fuse")
	require.Error(t, err)
}
