// SPDX-License-Identifier: MIT
package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"hyperion/internal/transport"
	"hyperion/pkg/literal"
)

func kindNames() string {
	kinds := literal.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}

func newParseCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <kind> <literal>",
		Short: "Parse a numeric literal as the given kind",
		Long: "Parse a numeric literal as the given kind and print its value.\n\n" +
			"Kinds: " + kindNames() + ".\n" +
			"Literals may carry a 0x, 0b or 0 prefix and ' or _ separators.\n" +
			"Pass negative values after --, e.g. 'parse -- i8 -128'.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev := transport.NewEvaluator()
			resp := ev.Handle(cmd.Context(), transport.Request{
				Op:      transport.OpParse,
				Kind:    args[0],
				Literal: args[1],
			})
			return renderResponse(cmd.OutOrStdout(), opts.cfg.Output.Format, resp)
		},
	}
}
