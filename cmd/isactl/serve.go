package main

import (
	"github.com/fxnlabs/kfd-isa/internal/server"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
)

func serveCommand(state *appState) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve kernel payloads and metrics over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "listen",
				Usage: "Override server.listenAddress",
			},
		},
		Action: func(c *cli.Context) error {
			if v := c.String("listen"); v != "" {
				state.cfg.Server.ListenAddress = v
			}
			app := fx.New(
				fx.Supply(state.cfg),
				fx.Supply(state.log),
				server.Module,
			)
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
}
