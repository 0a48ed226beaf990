package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/linetex/level"
)

func newRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "linetex",
		Short:         "Render spectral-line identifiers as LaTeX labels",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				return nil
			}
			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			level.SetLogger(logger)

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log rendering warnings (lossy decimal fallbacks)")

	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newMoleculesCommand())
	rootCmd.AddCommand(newFilterCommand())

	return rootCmd
}
