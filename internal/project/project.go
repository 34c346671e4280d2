// Package project implements scaffolding and build orchestration. It is a
// consumer of the compiler core: every source file is compiled through
// transpile.Compile independently, so a failure in one unit never affects
// the others.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/lumen-lang/lumen/internal/config"
	"github.com/lumen-lang/lumen/internal/transpile"
)

// SourceExt is the Lumen source file extension.
const SourceExt = ".lm"

const helloSource = `// Entry point generated by lumen init.
pure function add(a: int, b: int) -> int {
    return a + b
}
`

// Scaffold creates a new project directory with a default lumen.yaml and a
// hello-world source file.
func Scaffold(dir, name string) error {
	if err := os.MkdirAll(filepath.Join(dir, "src"), 0o755); err != nil {
		return fmt.Errorf("creating project layout: %w", err)
	}

	cfg := config.Default()
	cfg.Name = name
	if err := cfg.Save(dir); err != nil {
		return err
	}

	mainPath := filepath.Join(dir, "src", "main"+SourceExt)
	if err := os.WriteFile(mainPath, []byte(helloSource), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", mainPath, err)
	}

	return nil
}

// FileResult is the outcome of compiling one source file.
type FileResult struct {
	Source string
	Output string
	Err    error
}

// Build compiles every *.lm file under the project's source directory and
// writes the generated C# next to it in the output directory. Files compile
// concurrently; each compile call owns fresh compiler components.
func Build(root string, cfg *config.Config, logger *zap.Logger) ([]FileResult, error) {
	sources, err := listSources(filepath.Join(root, cfg.SourceDir))
	if err != nil {
		return nil, err
	}

	outDir := filepath.Join(root, cfg.OutputDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	results := make([]FileResult, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src string) {
			defer wg.Done()
			results[i] = compileOne(src, outDir)
		}(i, src)
	}
	wg.Wait()

	for _, res := range results {
		if res.Err != nil {
			logger.Warn("compile failed",
				zap.String("source", res.Source),
				zap.Error(res.Err))
			continue
		}
		logger.Info("compiled",
			zap.String("source", res.Source),
			zap.String("output", res.Output))
	}

	return results, nil
}

// CompileFile compiles a single source file and writes its output into
// outDir, returning the output path.
func CompileFile(src, outDir string) (string, error) {
	res := compileOne(src, outDir)
	return res.Output, res.Err
}

func compileOne(src, outDir string) FileResult {
	data, err := os.ReadFile(src)
	if err != nil {
		return FileResult{Source: src, Err: fmt.Errorf("reading %s: %w", src, err)}
	}

	output, err := transpile.Compile(string(data), transpile.WithFilename(src))
	if err != nil {
		return FileResult{Source: src, Err: err}
	}

	base := strings.TrimSuffix(filepath.Base(src), SourceExt)
	outPath := filepath.Join(outDir, base+".cs")
	if err := os.WriteFile(outPath, []byte(output), 0o644); err != nil {
		return FileResult{Source: src, Err: fmt.Errorf("writing %s: %w", outPath, err)}
	}

	return FileResult{Source: src, Output: outPath}
}

// listSources returns the project's source files in stable order.
func listSources(dir string) ([]string, error) {
	var sources []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			sources = append(sources, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	return sources, nil
}
