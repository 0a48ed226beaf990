package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linetex/lines"
)

func newFilterCommand() *cobra.Command {
	var mols []string

	cmd := &cobra.Command{
		Use:   "filter <line>...",
		Short: "Keep only the lines of the given molecules",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kept, err := lines.Filter(args, mols...)
			if err != nil {
				return err
			}
			for _, name := range kept {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&mols, "molecule", "m", nil, "Molecule names or aliases to keep")

	return cmd
}
