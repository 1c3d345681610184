package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/journaltrace/journaltrace/internal/cmdsupport"
	"github.com/journaltrace/journaltrace/internal/config"
	"github.com/journaltrace/journaltrace/internal/logging"
)

const version = "1.0.0"

func rootMain(command *cobra.Command, arguments []string) {
	if rootConfiguration.version {
		fmt.Println(version)
		return
	}
	if err := command.Help(); err != nil {
		cmdsupport.Fatal(errors.Wrap(err, "unable to print help"))
	}
}

var rootCommand = &cobra.Command{
	Use:   "journaltrace",
	Short: "journaltrace inspects NTFS USN change journals for forensic analysis",
	Run:   rootMain,
}

var rootConfiguration struct {
	help       bool
	version    bool
	logLevel   string
	envFile    string
	configFile string
}

func init() {
	flags := rootCommand.PersistentFlags()
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")
	flags.StringVar(&rootConfiguration.logLevel, "log-level", "info", "Set the log level (error, warn, info, debug)")
	flags.StringVar(&rootConfiguration.envFile, "env-file", "", "Load environment overrides from a .env file")
	flags.StringVar(&rootConfiguration.configFile, "config", "", "Path to a YAML configuration file (default: per-user config directory)")

	rootCommand.Flags().BoolVarP(&rootConfiguration.version, "version", "V", false, "Show version information")

	cobra.EnableCommandSorting = false
	cobra.OnInitialize(func() {
		level, ok := logging.NameToLevel(rootConfiguration.logLevel)
		if !ok {
			level = logging.LevelInfo
		}
		logging.DebugEnabled = level >= logging.LevelDebug

		if rootConfiguration.envFile != "" {
			if err := config.LoadDotEnv(rootConfiguration.envFile); err != nil {
				cmdsupport.Warning(err.Error())
			}
		}
	})

	rootCommand.AddCommand(
		daemonCommand,
		drivesCommand,
		scanCommand,
		stopCommand,
		resultsCommand,
		exportCommand,
	)
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
