package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/journaltrace/journaltrace/internal/cmdsupport"
	"github.com/journaltrace/journaltrace/internal/daemonrpc"
)

func stopMain(command *cobra.Command, arguments []string) error {
	client, err := dialDaemon()
	if err != nil {
		return err
	}
	defer client.Close()

	var stopped bool
	if err := client.Call(daemonrpc.ServiceName+".StopScan", &struct{}{}, &stopped); err != nil {
		return err
	}
	fmt.Println("Scan stop requested.")
	return nil
}

var stopCommand = &cobra.Command{
	Use:   "stop",
	Short: "Cancels the in-progress scan, if any",
	Run:   cmdsupport.Mainify(stopMain),
}
