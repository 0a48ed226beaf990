package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linetex/lines"
)

func newRenderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "render <line>...",
		Short: "Render formatted line names as LaTeX labels",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(args))
			for _, name := range args {
				label, err := lines.ToLaTeX(name)
				if err != nil {
					return err
				}
				rows = append(rows, []string{name, label})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Line", "LaTeX"}, rows))

			return nil
		},
	}
}
