package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fxnlabs/kfd-isa/internal/config"
	"github.com/fxnlabs/kfd-isa/internal/gemm"
	"github.com/fxnlabs/kfd-isa/internal/gpu"
	"github.com/fxnlabs/kfd-isa/internal/isa"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// selectedSources returns every catalog, or only the configured one when
// catalog.architecture names a specific target.
func selectedSources(cfg *config.Config) ([]isa.KernelSource, error) {
	opt := isa.WithEmptyGEMMKernels(cfg.Catalog.EmptyGEMMKernels)
	if strings.EqualFold(cfg.Catalog.Architecture, config.ArchitectureAuto) {
		return isa.Catalogs(opt)
	}
	arch, err := isa.ParseArchitecture(cfg.Catalog.Architecture)
	if err != nil {
		return nil, err
	}
	c, err := isa.New(arch, opt)
	if err != nil {
		return nil, err
	}
	return []isa.KernelSource{c}, nil
}

func listCommand(state *appState) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the kernels of each architecture",
		Action: func(c *cli.Context) error {
			sources, err := selectedSources(state.cfg)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ARCH\tKERNEL\tWORDS\tBYTES\tSHAPE")
			for _, src := range sources {
				for _, name := range src.Kernels() {
					k, err := src.Kernel(name)
					if err != nil {
						return err
					}
					shape := "-"
					if s, ok := gemm.ShapeOf(name); ok {
						shape = s.String()
					}
					fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", src.ArchitectureName(), name, k.Len(), k.Size(), shape)
				}
			}
			return tw.Flush()
		},
	}
}

func dumpCommand(state *appState) *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "Load one kernel into a fresh buffer and print or write it",
		ArgsUsage: "<kernel>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Value: "hex",
				Usage: "hex or raw",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write to this file instead of stdout",
			},
		},
		Action: func(c *cli.Context) error {
			name, ok := isa.ParseKernelName(c.Args().First())
			if !ok {
				return fmt.Errorf("unknown kernel %q, run 'isactl list'", c.Args().First())
			}

			manager, err := gpu.NewManager(state.cfg.Catalog, state.log)
			if err != nil {
				return err
			}
			buf, err := manager.LoadKernel(name)
			if err != nil {
				return err
			}
			defer buf.Release()

			var out []byte
			switch c.String("format") {
			case "raw":
				out = buf.Bytes()
			case "hex":
				words, err := buf.Words()
				if err != nil {
					return err
				}
				var sb strings.Builder
				for i, w := range words {
					fmt.Fprintf(&sb, "%08x: 0x%08x\n", i*isa.WordSize, w)
				}
				out = []byte(sb.String())
			default:
				return fmt.Errorf("unsupported format %q", c.String("format"))
			}

			if path := c.String("output"); path != "" {
				if err := os.WriteFile(path, out, 0o644); err != nil {
					return err
				}
				state.log.Info("kernel written",
					zap.String("kernel", string(name)),
					zap.String("architecture", manager.Architecture().String()),
					zap.String("path", path),
					zap.Int("bytes", buf.Size()),
				)
				return nil
			}
			_, err = os.Stdout.Write(out)
			return err
		},
	}
}
