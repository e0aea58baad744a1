// SPDX-License-Identifier: MIT
package cmd

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"hyperion/internal/transport"
)

// splitOperand splits "<literal>:<kind>" at the last colon.
func splitOperand(arg string) (lit, kind string, err error) {
	i := strings.LastIndexByte(arg, ':')
	if i <= 0 || i == len(arg)-1 {
		return "", "", errors.Errorf("operand %q must be <literal>:<kind>", arg)
	}
	return arg[:i], arg[i+1:], nil
}

func newCompareCommand(opts *options) *cobra.Command {
	var (
		epsilon     float64
		epsilonType string
	)

	compareCmd := &cobra.Command{
		Use:   "compare <pred> <lhs>:<kind> <rhs>:<kind>",
		Short: "Compare two typed literals",
		Long: "Compare two typed literals with safe mixed-type semantics.\n\n" +
			"Predicates: eq, ne, lt, le, gt, ge, or order for the three-way result.\n" +
			"Without --epsilon the configured tolerance applies, falling back to\n" +
			"the machine epsilon of the wider operand type.",
		Example: "  hyperion compare eq 1:i32 1.0:f64\n" +
			"  hyperion compare eq 2.0:f64 2.2:f64 --epsilon 0.1 --epsilon-type relative\n" +
			"  hyperion compare -- lt -1:i64 0:u64",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			lhs, lhsKind, err := splitOperand(args[1])
			if err != nil {
				return err
			}
			rhs, rhsKind, err := splitOperand(args[2])
			if err != nil {
				return err
			}

			req := transport.Request{
				Op:      transport.OpCompare,
				Pred:    args[0],
				LHS:     lhs,
				LHSKind: lhsKind,
				RHS:     rhs,
				RHSKind: rhsKind,
			}
			if cmd.Flags().Changed("epsilon") || cmd.Flags().Changed("epsilon-type") {
				req.Epsilon = &transport.EpsilonSpec{Type: epsilonType, Value: epsilon}
			}

			ev := transport.NewEvaluator(opts.cfg.Epsilons()...)
			resp := ev.Handle(cmd.Context(), req)
			return renderResponse(cmd.OutOrStdout(), opts.cfg.Output.Format, resp)
		},
	}
	compareCmd.Flags().Float64VarP(&epsilon, "epsilon", "e", 0,
		"Comparison tolerance")
	compareCmd.Flags().StringVarP(&epsilonType, "epsilon-type", "t", "absolute",
		"Tolerance type: absolute or relative")

	return compareCmd
}
