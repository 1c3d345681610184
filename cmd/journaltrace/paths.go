package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const pipeRecordName = "daemon.pipe"
const configRecordName = "config.yaml"

// daemonSubpath computes a path inside journaltrace's per-user config
// directory, creating that directory if necessary.
func daemonSubpath(name string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "unable to determine user configuration directory")
	}
	root := filepath.Join(configDir, "journaltrace")
	if err := os.MkdirAll(root, 0700); err != nil {
		return "", errors.Wrap(err, "unable to create journaltrace configuration directory")
	}
	return filepath.Join(root, name), nil
}

func pipeRecordPath() (string, error) {
	return daemonSubpath(pipeRecordName)
}

// configFilePath returns the YAML configuration file path: the value of
// --config if the user supplied one, otherwise journaltrace's default
// per-user config directory.
func configFilePath() (string, error) {
	if rootConfiguration.configFile != "" {
		return rootConfiguration.configFile, nil
	}
	return daemonSubpath(configRecordName)
}
