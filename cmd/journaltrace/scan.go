package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/journaltrace/journaltrace/internal/cmdsupport"
	"github.com/journaltrace/journaltrace/internal/daemonrpc"
)

var scanConfiguration struct {
	wait    bool
	exclude []string
}

func scanMain(command *cobra.Command, arguments []string) error {
	client, err := dialDaemon()
	if err != nil {
		return err
	}
	defer client.Close()

	var started bool
	if err := client.Call(daemonrpc.ServiceName+".StartScan", &struct{}{}, &started); err != nil {
		return err
	}
	if !started {
		cmdsupport.Warning("a scan is already in progress")
		return nil
	}

	if !scanConfiguration.wait {
		fmt.Println("Scan started.")
		return nil
	}

	since := 0
	for {
		var reply daemonrpc.StatusReply
		if err := client.Call(daemonrpc.ServiceName+".GetStatus", &daemonrpc.StatusArgs{Since: since}, &reply); err != nil {
			return err
		}
		for _, event := range reply.Events {
			since = event.Sequence + 1
			switch {
			case event.IsError:
				cmdsupport.Warning(event.Message)
			case event.Complete:
				fmt.Println(event.Message)
			default:
				fmt.Printf("%s (%d%%)\n", event.Message, event.Percent)
			}
			if event.Complete {
				return showFilteredResults()
			}
		}
		time.Sleep(250 * time.Millisecond)
	}
}

func showFilteredResults() error {
	result, err := getResults()
	if err != nil {
		return err
	}
	entries, err := filterEntries(result.Entries, resolveExcludePatterns(scanConfiguration.exclude))
	if err != nil {
		return err
	}
	renderTable(entries)
	return nil
}

var scanCommand = &cobra.Command{
	Use:   "scan",
	Short: "Starts a scan across all available NTFS drives",
	Run:   cmdsupport.Mainify(scanMain),
}

func init() {
	flags := scanCommand.Flags()
	flags.BoolVar(&scanConfiguration.wait, "wait", false, "Wait for the scan to complete and print results")
	flags.StringArrayVar(&scanConfiguration.exclude, "exclude", nil, "Glob pattern to exclude from the rendered output (repeatable)")
}
