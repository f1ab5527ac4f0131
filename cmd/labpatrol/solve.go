package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/labpatrol/obstruction"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		workers    int
		exhaustive bool
	)
	cmd := &cobra.Command{
		Use:   "solve [file|-]",
		Short: "Print the visited-cell count and the loop-inducing obstruction count",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := readLab(cmd, args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Workers
			}
			if !cmd.Flags().Changed("exhaustive") {
				exhaustive = a.cfg.Exhaustive
			}
			a.logger.Debug("solving",
				zap.Int("width", l.Grid.Width()),
				zap.Int("height", l.Grid.Height()),
				zap.Stringer("guard", l.Guard))

			opts := []obstruction.Option{
				obstruction.WithContext(cmd.Context()),
				obstruction.WithWorkers(workers),
				obstruction.WithLogger(a.logger),
			}
			if exhaustive {
				opts = append(opts, obstruction.WithExhaustive())
			}
			res, err := obstruction.Search(l.Grid, l.Guard, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Baseline.Len())
			fmt.Fprintln(cmd.OutOrStdout(), res.Count)
			return nil
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel probes (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&exhaustive, "exhaustive", false, "probe every open cell, not only visited ones")
	return cmd
}
