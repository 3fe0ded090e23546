// Package main is the colormap command-line tool.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "colormap",
		Short:        "Map scalar values to colors through named color series",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newInterpolateCmd())
	rootCmd.AddCommand(newColorbarCmd())
	return rootCmd
}
