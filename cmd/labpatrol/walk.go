package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labpatrol/lab"
	"github.com/katalvlaran/labpatrol/patrol"
)

func newWalkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "walk [file|-]",
		Short: "Draw the guard's trail and print the visited-cell count",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := readLab(cmd, args)
			if err != nil {
				return err
			}
			res, err := patrol.Simulate(l.Grid, l.Guard, patrol.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), lab.Render(l.Grid, l.Guard, res.Path))
			fmt.Fprintf(cmd.OutOrStdout(), "visited: %d\n", res.Len())
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of labpatrol",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "labpatrol version %s\n", Version)
		},
	}
}
