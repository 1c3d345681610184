package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/journaltrace/journaltrace/internal/cmdsupport"
	"github.com/journaltrace/journaltrace/internal/daemonrpc"
	"github.com/journaltrace/journaltrace/internal/ntfs"
)

func drivesMain(command *cobra.Command, arguments []string) error {
	client, err := dialDaemon()
	if err != nil {
		return err
	}
	defer client.Close()

	var drives []ntfs.DriveInfo
	if err := client.Call(daemonrpc.ServiceName+".GetAvailableDrives", &struct{}{}, &drives); err != nil {
		return err
	}

	if len(drives) == 0 {
		fmt.Println("No NTFS drives found!")
		return nil
	}

	fmt.Printf("%-8s %-24s %10s %10s\n", "DRIVE", "LABEL", "FREE", "SIZE")
	for _, drive := range drives {
		fmt.Printf("%-8s %-24s %10s %10s\n", drive.Name, drive.Label, drive.TotalFree, drive.TotalSize)
	}
	return nil
}

var drivesCommand = &cobra.Command{
	Use:   "drives",
	Short: "Lists NTFS drives available for scanning",
	Run:   cmdsupport.Mainify(drivesMain),
}
