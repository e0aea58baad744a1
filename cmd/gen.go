// SPDX-License-Identifier: MIT
package cmd

import (
	"github.com/spf13/cobra"

	"hyperion/internal/gen"
	"hyperion/internal/manifest"
)

func newGenCommand(opts *options) *cobra.Command {
	var outFile string

	genCmd := &cobra.Command{
		Use:   "gen <manifest>",
		Short: "Generate typed Go constants from a constants manifest",
		Long: "Validate every literal in a constants manifest and emit a Go source\n" +
			"file declaring them. Any literal that is out of range or malformed\n" +
			"fails the command and nothing is written.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outFile != "" {
				return gen.Generate(cmd.Context(), args[0], outFile)
			}

			m, err := manifest.ParseFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			src, err := gen.Render(m, gen.WithSource(args[0]))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(src)
			return err
		},
	}
	genCmd.Flags().StringVarP(&outFile, "out", "w", "",
		"Write the generated source to this file instead of stdout")

	return genCmd
}
