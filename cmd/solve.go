package main

import (
	"circuitsketch/mna/debug"
	"circuitsketch/report"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newSolveCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <file>",
		Short: "Print node voltages and component currents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cir, _, sol, err := o.solve(cmd, args[0])
			if err != nil {
				return err
			}
			return report.Fprint(cmd.OutOrStdout(), cir.Components, sol)
		},
	}
}

func newPlotCmd(o *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "plot <file>",
		Short: "Save a bar chart of node voltages (png, svg, pdf)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, sol, err := o.solve(cmd, args[0])
			if err != nil {
				return err
			}
			if err := report.SavePlot(output, sol); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "voltages.png", "output image")
	return cmd
}

func newGraphCmd(o *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "graph <file>",
		Short: "Render the solved node graph as an HTML page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cir, set, sol, err := o.solve(cmd, args[0])
			if err != nil {
				return err
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			c := &debug.Charts{Components: cir.Components, Set: set, Solution: sol}
			if err := c.Render(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "circuit.html", "output page")
	return cmd
}
