package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lumen-lang/lumen/internal/diag"
	"github.com/lumen-lang/lumen/internal/transpile"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Compile files without writing output, reporting diagnostics",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatter := diag.NewFormatter()
		failed := 0

		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			source := string(data)

			_, err = transpile.Compile(source, transpile.WithFilename(path))
			if err == nil {
				continue
			}

			failed++
			if d, ok := transpile.AsDiagnostic(err); ok {
				formatter.AddSource(path, source)
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.Format(d))
			} else {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d files failed to check", failed, len(args))
		}
		return nil
	},
}
