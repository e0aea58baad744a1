// SPDX-License-Identifier: MIT
package cmd

import (
	"github.com/spf13/cobra"

	"hyperion/internal/tui"
	"hyperion/pkg/platform"
)

func newInfoCommand(opts *options) *cobra.Command {
	var interactive bool

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Show platform facts for this binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return tui.StartFactsUI()
			}
			return renderFacts(cmd.OutOrStdout(), opts.cfg.Output.Format, platform.Current())
		},
	}
	infoCmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"Browse the facts in a terminal UI")

	return infoCmd
}
