package main

import (
	"net/rpc"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/journaltrace/journaltrace/internal/cmdsupport"
	"github.com/journaltrace/journaltrace/internal/config"
	"github.com/journaltrace/journaltrace/internal/daemonrpc"
	"github.com/journaltrace/journaltrace/internal/ipc"
	"github.com/journaltrace/journaltrace/internal/logging"
)

var daemonLog = logging.RootLogger.Sublogger("journaltraced")

func daemonRunMain(command *cobra.Command, arguments []string) error {
	if len(arguments) != 0 {
		return errors.New("unexpected arguments provided")
	}

	path, err := pipeRecordPath()
	if err != nil {
		return err
	}

	listener, err := ipc.NewListener(path, daemonLog)
	if err != nil {
		return errors.Wrap(err, "unable to create daemon listener")
	}
	defer func() {
		if closeErr := listener.Close(); closeErr != nil {
			daemonLog.Warnf("unable to close listener: %v", closeErr)
		}
	}()

	configPath, err := configFilePath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.Wrap(err, "unable to load configuration")
	}

	service := daemonrpc.NewService(daemonLog, cfg)
	server := rpc.NewServer()
	if err := server.RegisterName(daemonrpc.ServiceName, service); err != nil {
		return errors.Wrap(err, "unable to register RPC service")
	}

	serverErrors := make(chan error, 1)
	go func() {
		server.Accept(listener)
		serverErrors <- errors.New("listener closed")
	}()

	signalTermination := make(chan os.Signal, 1)
	signal.Notify(signalTermination, os.Interrupt)

	select {
	case sig := <-signalTermination:
		return errors.Errorf("terminated by signal: %s", sig)
	case <-service.Termination:
		return nil
	case err := <-serverErrors:
		return errors.Wrap(err, "premature server termination")
	}
}

var daemonRunCommand = &cobra.Command{
	Use:    "run",
	Short:  "Runs the journaltrace daemon in the foreground",
	Run:    cmdsupport.Mainify(daemonRunMain),
	Hidden: true,
}
