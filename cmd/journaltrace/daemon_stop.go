package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/journaltrace/journaltrace/internal/cmdsupport"
	"github.com/journaltrace/journaltrace/internal/daemonrpc"
)

func daemonStopMain(command *cobra.Command, arguments []string) error {
	if len(arguments) != 0 {
		return errors.New("unexpected arguments provided")
	}

	client, err := dialDaemon()
	if err != nil {
		return err
	}
	defer client.Close()

	var reply bool
	return client.Call(daemonrpc.ServiceName+".Terminate", &struct{}{}, &reply)
}

var daemonStopCommand = &cobra.Command{
	Use:   "stop",
	Short: "Stops the journaltrace daemon if it's running",
	Run:   cmdsupport.Mainify(daemonStopMain),
}
