package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumen-lang/lumen/internal/config"
	"github.com/lumen-lang/lumen/internal/project"
)

var buildCmd = &cobra.Command{
	Use:   "build [dir]",
	Short: "Compile every source file in the project",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		cfg, err := config.Load(root)
		if err != nil {
			return err
		}

		results, err := project.Build(root, cfg, logger)
		if err != nil {
			return err
		}

		failed := 0
		for _, res := range results {
			if res.Err != nil {
				failed++
				fmt.Fprintln(cmd.ErrOrStderr(), res.Err)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed to compile", failed, len(results))
		}

		return nil
	},
}
