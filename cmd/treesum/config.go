package main

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

//go:embed sample_config.toml
var sampleConfig string

// cliConfig is the optional TOML configuration. Flags override every
// field.
type cliConfig struct {
	Workers  int    `toml:"workers"`
	Hashfile string `toml:"hashfile"`
	Verbose  bool   `toml:"verbose"`
}

// loadConfig reads the configuration file at path, or the default
// location when path is empty. A missing default file is not an error;
// a missing explicit file is.
func loadConfig(path string) (cliConfig, error) {
	var cfg cliConfig

	explicit := path != ""
	if !explicit {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(configDir, "treesum", "config.toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration helpers",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "sample",
		Short: "Print a sample configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), sampleConfig)
			return err
		},
	})

	return configCmd
}
