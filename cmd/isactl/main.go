package main

import (
	"fmt"
	"os"

	"github.com/fxnlabs/kfd-isa/internal/config"
	"github.com/fxnlabs/kfd-isa/internal/logger"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// appState is filled in by Before and read by every command action.
type appState struct {
	cfg *config.Config
	log *zap.Logger
}

func main() {
	var configPath, verbosity, arch string
	state := &appState{}

	app := &cli.App{
		Name:  "isactl",
		Usage: "Inspect, export and serve precompiled GPU ISA test payloads",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "Path to the YAML config file",
				EnvVars:     []string{"ISACTL_CONFIG"},
				Destination: &configPath,
			},
			&cli.StringFlag{
				Name:        "verbosity",
				Usage:       "Override logger.verbosity",
				Destination: &verbosity,
			},
			&cli.StringFlag{
				Name:        "arch",
				Usage:       "Override catalog.architecture (auto, ALDEBARAN, GFX9, gfx90a, ...)",
				EnvVars:     []string{"ISACTL_ARCH"},
				Destination: &arch,
			},
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if verbosity != "" {
				cfg.Logger.Verbosity = verbosity
			}
			if arch != "" {
				cfg.Catalog.Architecture = arch
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			zapLogger, err := logger.New(cfg.Logger.Verbosity, cfg.Logger.Encoding)
			if err != nil {
				return err
			}
			state.cfg = cfg
			state.log = zapLogger.Named("isactl")
			return nil
		},
		After: func(c *cli.Context) error {
			if state.log != nil {
				_ = state.log.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			initCommand(),
			listCommand(state),
			dumpCommand(state),
			exportCommand(state),
			verifyCommand(state),
			checkCommand(state),
			detectCommand(state),
			serveCommand(state),
			infoCommand(state),
		},
	}

	if err := app.Run(os.Args); err != nil {
		if state.log != nil {
			state.log.Fatal("failed to run app", zap.Error(err))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}
