package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/fxnlabs/kfd-isa/fixtures"
	"github.com/fxnlabs/kfd-isa/internal/isa"
	"github.com/urfave/cli/v2"
)

func infoCommand(state *appState) *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "Print a summary of the catalog and the active configuration",
		Action: func(c *cli.Context) error {
			myFigure := figure.NewFigure("kfd-isa", "", true)
			myFigure.Print()
			fmt.Println("")

			sources, err := selectedSources(state.cfg)
			if err != nil {
				return err
			}
			for _, src := range sources {
				total := 0
				for _, name := range src.Kernels() {
					k, err := src.Kernel(name)
					if err != nil {
						return err
					}
					total += k.Size()
				}
				fmt.Printf("%-10s %2d kernels, %6d bytes\n", src.ArchitectureName(), len(src.Kernels()), total)
			}
			fmt.Println("-----------------------------------------------")
			fmt.Printf("Architecture: %s\n", state.cfg.Catalog.Architecture)
			fmt.Printf("Empty GEMM kernels: %t\n", state.cfg.Catalog.EmptyGEMMKernels)
			fmt.Printf("Bundle compression: %s\n", state.cfg.Bundle.Compression)
			fmt.Printf("Known kernel names: %d\n", len(isa.KernelNames()))
			return nil
		},
	}
}

func initCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a default config file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "config.yaml",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing file",
			},
		},
		Action: func(c *cli.Context) error {
			path := c.String("output")
			if _, err := os.Stat(path); err == nil && !c.Bool("force") {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := os.WriteFile(path, fixtures.ConfigTemplate, 0o644); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	}
}
