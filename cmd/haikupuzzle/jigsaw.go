package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tsawler/haikupuzzle"
	"github.com/tsawler/haikupuzzle/config"
)

func (c *cli) jigsawCmd() *cobra.Command {
	var (
		rows int
		cols int
		size string
		out  string
	)

	cmd := &cobra.Command{
		Use:   "jigsaw",
		Short: "Render a sheet of blank puzzle pieces",
		Example: `  haikupuzzle jigsaw --rows 3 --cols 5 --size 4cm --out jigsaw.pdf`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			side, err := config.ParseLength(size)
			if err != nil {
				return fmt.Errorf("--size: %w", err)
			}
			if out == "" {
				out = "jigsaw.pdf"
			}

			res, err := haikupuzzle.Jigsaw(rows, cols, side.Points()).
				WithConfig(c.cfg).
				Logger(c.logger).
				WriteFile(out)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Drew %d pieces on %d pages\n", res.Items, res.Pages)
			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 4, "rows of pieces")
	cmd.Flags().IntVar(&cols, "cols", 4, "columns of pieces")
	cmd.Flags().StringVar(&size, "size", "4cm", "side of one piece")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output PDF (default jigsaw.pdf)")
	return cmd
}
