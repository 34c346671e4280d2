package main

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lumen-lang/lumen/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init <dir>",
	Short: "Scaffold a new Lumen project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		name := filepath.Base(dir)

		if err := project.Scaffold(dir, name); err != nil {
			return err
		}

		logger.Info("project created",
			zap.String("dir", dir),
			zap.String("name", name))
		return nil
	},
}
