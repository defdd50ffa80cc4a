package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/quarive/treesum"
)

// commandContext carries flag targets and the loaded configuration
// across subcommands.
type commandContext struct {
	configFlag   string
	workersFlag  int
	hashfileFlag string
	verboseFlag  bool

	cfg cliConfig
}

func newRootCommand() *cobra.Command {
	cc := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "treesum",
		Short:         "Deterministic directory fingerprinting",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cc.configFlag)
			if err != nil {
				return err
			}
			cc.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cc.configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().IntVarP(&cc.workersFlag, "workers", "j", 0, "Hashing worker count (0 = hardware concurrency)")
	rootCmd.PersistentFlags().StringVar(&cc.hashfileFlag, "hashfile", "", "Hashfile document path (default ./"+treesum.HashfileName+")")
	rootCmd.PersistentFlags().BoolVarP(&cc.verboseFlag, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newHashCommand(cc))
	rootCmd.AddCommand(newWriteCommand(cc))
	rootCmd.AddCommand(newVerifyCommand(cc))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

// options assembles the library options from flags and configuration,
// flags winning.
func (cc *commandContext) options() []treesum.Option {
	var opts []treesum.Option

	workers := cc.cfg.Workers
	if cc.workersFlag > 0 {
		workers = cc.workersFlag
	}
	if workers > 0 {
		opts = append(opts, treesum.WithWorkers(workers))
	}

	hashfile := cc.cfg.Hashfile
	if cc.hashfileFlag != "" {
		hashfile = cc.hashfileFlag
	}
	if hashfile != "" {
		opts = append(opts, treesum.WithHashfilePath(hashfile))
	}

	if cc.verboseFlag || cc.cfg.Verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		opts = append(opts, treesum.WithLogger(logger))
	}

	return opts
}

// hashfilePath resolves the document path for display purposes.
func (cc *commandContext) hashfilePath() string {
	if cc.hashfileFlag != "" {
		return cc.hashfileFlag
	}
	if cc.cfg.Hashfile != "" {
		return cc.cfg.Hashfile
	}
	return treesum.HashfileName
}
