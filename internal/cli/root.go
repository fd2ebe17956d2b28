// Package cli wires the statekit demo commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/comalice/statekit/internal/logging"
)

var verbosity int

var rootCmd = &cobra.Command{
	Use:   "statekit",
	Short: "Exercise the statekit state containers",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbosity)
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")
	rootCmd.AddCommand(counterCmd, machineCmd, snapshotCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
