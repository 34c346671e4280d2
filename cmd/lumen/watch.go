package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lumen-lang/lumen/internal/config"
	"github.com/lumen-lang/lumen/internal/project"
	"github.com/lumen-lang/lumen/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Rebuild source files as they change",
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

		// Initial full build so the output directory starts consistent.
		if _, err := project.Build(root, cfg, logger); err != nil {
			return err
		}

		w, err := watch.New(root, cfg, logger)
		if err != nil {
			return err
		}
		w.Start()
		defer w.Stop()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh

		return nil
	},
}
