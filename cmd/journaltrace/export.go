package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/journaltrace/journaltrace/internal/cmdsupport"
	"github.com/journaltrace/journaltrace/internal/daemonrpc"
	"github.com/journaltrace/journaltrace/internal/export"
)

var exportConfiguration struct {
	output string
}

func exportMain(command *cobra.Command, arguments []string) error {
	client, err := dialDaemon()
	if err != nil {
		return err
	}
	defer client.Close()

	var result export.Result
	args := &daemonrpc.ExportArgs{Path: exportConfiguration.output}
	if err := client.Call(daemonrpc.ServiceName+".ExportResults", args, &result); err != nil {
		return err
	}

	if !result.Success {
		cmdsupport.Warning(result.Error)
		return nil
	}
	fmt.Printf("Exported to %s\n", result.Filename)
	return nil
}

var exportCommand = &cobra.Command{
	Use:   "export",
	Short: "Exports the current scan results to CSV",
	Run:   cmdsupport.Mainify(exportMain),
}

func init() {
	exportCommand.Flags().StringVar(&exportConfiguration.output, "output", "", "Output CSV path (default: journal_trace_<timestamp>.csv)")
}
