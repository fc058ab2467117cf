package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fxnlabs/kfd-isa/internal/gpu"
	"github.com/urfave/cli/v2"
)

func detectCommand(state *appState) *cli.Command {
	return &cli.Command{
		Name:  "detect",
		Usage: "Show GPU nodes from the KFD topology and the catalog each maps to",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "topology",
				Usage: "Override catalog.topologyPath",
			},
		},
		Action: func(c *cli.Context) error {
			root := state.cfg.Catalog.TopologyPath
			if v := c.String("topology"); v != "" {
				root = v
			}
			nodes, err := gpu.ReadTopology(root)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NODE\tTARGET\tVERSION\tCATALOG")
			for _, n := range nodes {
				catalog := "unsupported"
				if n.Arch.Valid() {
					catalog = n.Arch.String()
				}
				fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", n.ID, n.Target, n.GFXTargetVersion, catalog)
			}
			return tw.Flush()
		},
	}
}
