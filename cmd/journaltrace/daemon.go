package main

import (
	"github.com/spf13/cobra"

	"github.com/journaltrace/journaltrace/internal/cmdsupport"
)

func daemonMain(command *cobra.Command, arguments []string) error {
	return command.Help()
}

var daemonCommand = &cobra.Command{
	Use:   "daemon",
	Short: "Controls the journaltrace daemon lifecycle",
	Run:   cmdsupport.Mainify(daemonMain),
}

func init() {
	daemonCommand.Flags().SortFlags = false
	daemonCommand.AddCommand(
		daemonRunCommand,
		daemonStartCommand,
		daemonStopCommand,
	)
}
