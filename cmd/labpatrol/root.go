package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/labpatrol/internal/config"
	"github.com/katalvlaran/labpatrol/internal/logging"
	"github.com/katalvlaran/labpatrol/lab"
)

// Version is stamped at build time with -ldflags "-X main.Version=...".
var Version = "dev"

// app carries state shared by subcommands once the root pre-run is done.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "labpatrol",
		Short: "Simulate a lab guard's patrol and find loop-inducing obstructions",
		Long: `labpatrol reads a lab map ('.' open, '#' wall, '^' guard facing north),
walks the guard until it leaves the map, and counts the cells where a single
extra obstruction would trap it in a loop forever.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if a.verbose {
				cfg.LogLevel = "debug"
			}
			logger, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSolveCmd(a), newWalkCmd(a), newVersionCmd())
	return root
}

// readLab parses the map named by args: a file path, "-" or nothing for stdin.
func readLab(cmd *cobra.Command, args []string) (*lab.Lab, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	l, err := lab.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	return l, nil
}
