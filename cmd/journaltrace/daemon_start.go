package main

import (
	"os"
	"os/exec"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/journaltrace/journaltrace/internal/cmdsupport"
)

func daemonStartMain(command *cobra.Command, arguments []string) error {
	if len(arguments) != 0 {
		return errors.New("unexpected arguments provided")
	}

	executablePath, err := os.Executable()
	if err != nil {
		return errors.Wrap(err, "unable to determine executable path")
	}

	process := &exec.Cmd{
		Path:   executablePath,
		Args:   []string{executablePath, "daemon", "run"},
		Stdin:  nil,
		Stdout: nil,
		Stderr: nil,
	}
	if err := process.Start(); err != nil {
		return errors.Wrap(err, "unable to start daemon process")
	}

	return nil
}

var daemonStartCommand = &cobra.Command{
	Use:   "start",
	Short: "Starts the journaltrace daemon in the background if it's not already running",
	Run:   cmdsupport.Mainify(daemonStartMain),
}
