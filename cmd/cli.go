// SPDX-License-Identifier: MIT
package cmd

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"hyperion/internal/config"
	"hyperion/internal/log"
	"hyperion/pkg/build"
)

// options carries the values shared by every subcommand.
type options struct {
	configPath string
	logLevel   string
	output     string

	cfg *config.Config
}

// NewRootCommand builds the hyperion command tree.
func NewRootCommand() *cobra.Command {
	buildInfo := build.GetBuildFlags()
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           buildInfo.Name,
		Short:         buildInfo.Description,
		Version:       buildInfo.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd:   true,
			DisableDescriptions: true,
			DisableNoDescFlag:   true,
			HiddenDefaultCmd:    true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.SetVersionTemplate(buildInfo.String() + "\n")

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"Path to a YAML configuration file. Defaults to "+config.DefaultPath+" when present.")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "",
		"Override the configured log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "",
		"Output format: text, json or yaml. Defaults to the configured format.")

	rootCmd.AddCommand(
		newInfoCommand(opts),
		newParseCommand(opts),
		newCompareCommand(opts),
		newGenCommand(opts),
		newServeCommand(opts),
	)

	return rootCmd
}

// load reads the configuration and applies the persistent flags over it.
func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return err
	}

	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
		cfg.Debug = false
	}
	if o.output != "" {
		cfg.Output.Format = o.output
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid flags")
	}

	log.SetLevel(cfg.Level())
	o.cfg = cfg
	return nil
}

// Execute runs the command line against os.Args.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(os.Args[1:])
	return rootCmd.ExecuteContext(ctx)
}
