// Package config loads the optional YAML configuration file that tunes
// buffer sizes, the path-resolution depth guard, and default exclude globs.
// These are tuning parameters, not a contract. It can also load a .env file
// into the process environment; Load does not read environment variables,
// so .env values do not change any Config field.
package config

import (
	"os"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ByteSize unmarshals from either a human-friendly string ("4MiB") or a
// plain integer.
type ByteSize uint64

func (s *ByteSize) UnmarshalYAML(node *yaml.Node) error {
	var text string
	if err := node.Decode(&text); err == nil {
		value, err := humanize.ParseBytes(text)
		if err != nil {
			return errors.Wrap(err, "unable to parse byte size")
		}
		*s = ByteSize(value)
		return nil
	}
	var value uint64
	if err := node.Decode(&value); err != nil {
		return errors.Wrap(err, "unable to decode byte size")
	}
	*s = ByteSize(value)
	return nil
}

// Config is the optional on-disk configuration for the daemon.
type Config struct {
	MFTBufferSize      ByteSize `yaml:"mftBufferSize"`
	JournalBufferSize  ByteSize `yaml:"journalBufferSize"`
	MaxResolutionDepth int      `yaml:"maxResolutionDepth"`
	DefaultExcludes    []string `yaml:"defaultExcludes"`
}

// Default returns the built-in configuration used when no file is present.
func Default() Config {
	return Config{
		MFTBufferSize:      4 * 1024 * 1024,
		JournalBufferSize:  8 * 1024 * 1024,
		MaxResolutionDepth: 100,
	}
}

// Load reads a YAML configuration file at path, falling back to Default()
// values for anything the file doesn't specify. A missing file is not an
// error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(err, "unable to read configuration file")
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "unable to parse configuration file")
	}
	return cfg, nil
}

// LoadDotEnv loads development environment overrides from a .env file. A
// missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "unable to load .env file")
	}
	return nil
}
