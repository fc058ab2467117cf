package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/fxnlabs/kfd-isa/internal/bundle"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func exportCommand(state *appState) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Write the catalog to a bundle file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "Bundle path",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "compression",
				Usage: "Override bundle.compression (none, zstd, lz4)",
			},
		},
		Action: func(c *cli.Context) error {
			compression := state.cfg.Bundle.Compression
			if v := c.String("compression"); v != "" {
				compression = v
			}
			codec, err := bundle.ParseCodec(compression)
			if err != nil {
				return err
			}
			sources, err := selectedSources(state.cfg)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			n, err := bundle.Write(&buf, codec, sources...)
			if err != nil {
				return err
			}
			path := c.String("output")
			if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
				return err
			}
			state.log.Info("bundle exported",
				zap.String("path", path),
				zap.String("compression", codec.String()),
				zap.Int("kernels", n),
				zap.Int("bytes", buf.Len()),
			)
			return nil
		},
	}
}

func verifyCommand(state *appState) *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "Check a bundle against the in-process catalog",
		ArgsUsage: "<bundle>",
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return fmt.Errorf("bundle path required")
			}
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			entries, err := bundle.Read(f)
			if err != nil {
				return err
			}
			sources, err := selectedSources(state.cfg)
			if err != nil {
				return err
			}
			if err := bundle.Verify(entries, sources...); err != nil {
				return err
			}
			state.log.Info("bundle verified", zap.String("path", path), zap.Int("kernels", len(entries)))
			return nil
		},
	}
}
