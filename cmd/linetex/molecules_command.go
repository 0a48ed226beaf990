package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linetex/lines"
	"github.com/katalvlaran/linetex/molecule"
)

func newMoleculesCommand() *cobra.Command {
	var lineNames []string

	cmd := &cobra.Command{
		Use:   "molecules",
		Short: "List known molecules, or the molecules of the given lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(lineNames) == 0 {
				names := molecule.Known()
				rows := make([][]string, 0, len(names))
				for _, name := range names {
					rows = append(rows, []string{name, molecule.ToLaTeX(name)})
				}
				fmt.Fprintln(out, renderTable([]string{"Name", "LaTeX"}, rows))

				return nil
			}

			mols, err := lines.Molecules(lineNames)
			if err != nil {
				return err
			}
			for _, mol := range mols {
				fmt.Fprintln(out, mol)
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&lineNames, "lines", nil, "Formatted line names to inspect")

	return cmd
}
