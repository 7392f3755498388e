package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var verbose bool

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "femcore",
		Short: "2D planar-stress mesh and solve pipeline",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newMeshCommand())
	root.AddCommand(newSolveCommand())
	root.AddCommand(newReportCommand())
	return root
}
