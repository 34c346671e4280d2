package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lumen-lang/lumen/internal/config"
	"github.com/lumen-lang/lumen/internal/devserver"
	"github.com/lumen-lang/lumen/internal/project"
	"github.com/lumen-lang/lumen/internal/watch"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve [dir]",
	Short: "Watch for changes and push rebuild results over WebSocket",
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

		if _, err := project.Build(root, cfg, logger); err != nil {
			return err
		}

		w, err := watch.New(root, cfg, logger)
		if err != nil {
			return err
		}
		w.Start()
		defer w.Stop()

		srv := devserver.New(serveAddr, logger)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			for {
				select {
				case ev := <-w.Events():
					msg := devserver.Message{
						Source: ev.Source,
						Output: ev.Output,
						OK:     ev.Err == nil,
					}
					if ev.Err != nil {
						msg.Error = ev.Err.Error()
					}
					srv.Broadcast(msg)
				case <-ctx.Done():
					return
				}
			}
		}()

		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:7878", "dev server listen address")
}
