package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tsawler/haikupuzzle"
)

func (c *cli) renderCmd() *cobra.Command {
	var (
		out    string
		layout string
	)

	cmd := &cobra.Command{
		Use:   "render [input.csv]",
		Short: "Render every haiku of a table",
		Long: `Reads haikus from a semicolon separated table, one haiku of two or
three lines per row, and lays them out on a grid of pages.

Layouts:
  triplet  three boxes, one line each, joined by hearts
  tag      one box with the lines stacked
  puzzle   a puzzle piece with the lines stacked`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := defaultInput
			if len(args) == 1 {
				input = args[0]
			}
			if out == "" {
				out = c.cfg.Output.Path
			}

			gen := haikupuzzle.Open(input).WithConfig(c.cfg).Logger(c.logger)
			if layout != "" {
				gen = gen.Layout(layout)
			}

			res, err := gen.WriteFile(out)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Processed %d haikus\n", res.Items)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output PDF (default from config)")
	cmd.Flags().StringVarP(&layout, "layout", "l", "", "triplet, tag or puzzle (default from config)")
	return cmd
}
