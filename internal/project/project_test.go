package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lumen-lang/lumen/internal/config"
)

func TestScaffold(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Scaffold(dir, "shop"))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "shop", cfg.Name)

	data, err := os.ReadFile(filepath.Join(dir, "src", "main.lm"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "pure function add")
}

func TestBuildScaffoldedProject(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Scaffold(dir, "shop"))

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	results, err := Build(dir, cfg, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)

	output, err := os.ReadFile(results[0].Output)
	require.NoError(t, err)
	assert.Contains(t, string(output), "public static int add(int a, int b)")
	assert.Contains(t, string(output), "/// Pure function (no side effects).")
}

func TestBuildIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Scaffold(dir, "shop"))

	broken := filepath.Join(dir, "src", "broken.lm")
	require.NoError(t, os.WriteFile(broken, []byte("function oops( -> int { return 1 }"), 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	results, err := Build(dir, cfg, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, results, 2)

	var failed, succeeded int
	for _, res := range results {
		if res.Err != nil {
			failed++
			assert.Contains(t, res.Err.Error(), "parsing failed")
		} else {
			succeeded++
			assert.FileExists(t, res.Output)
		}
	}
	assert.Equal(t, 1, failed)
	assert.Equal(t, 1, succeeded)
}

func TestCompileFileWritesOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "math.lm")
	require.NoError(t, os.WriteFile(src, []byte("pure function sq(x: int) -> int {\n    return x * x\n}\n"), 0o644))

	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(outDir, 0o755))

	outPath, err := CompileFile(src, outDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "math.cs"), outPath)
	assert.FileExists(t, outPath)
}
