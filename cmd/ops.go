/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vipcxj/rangealg/internal/calc"
)

type opSpec struct {
	op    calc.Op
	use   string
	short string
	args  cobra.PositionalArgs
}

var opSpecs = []opSpec{
	{calc.OpContains, "contains RANGE VALUE...", "Tell whether each value is in the range", cobra.MinimumNArgs(2)},
	{calc.OpIntersect, "intersect RANGE RANGE...", "Print the intersection of the ranges", cobra.MinimumNArgs(2)},
	{calc.OpJoin, "join RANGE RANGE...", "Print the smallest range spanning all ranges", cobra.MinimumNArgs(2)},
	{calc.OpOverlaps, "overlaps RANGE RANGE", "Tell whether two ranges share a value", cobra.ExactArgs(2)},
	{calc.OpValidate, "validate RANGE", "Check that a range is well formed", cobra.ExactArgs(1)},
	{calc.OpAssert, "assert RANGE NAME VALUE...", "Fail unless every value of the named argument is in the range", cobra.MinimumNArgs(3)},
	{calc.OpUnion, "union RANGE...", "Print the normalized union of the ranges", cobra.MinimumNArgs(1)},
	{calc.OpSucc, "succ STRING...", "Print the successor of each string", cobra.MinimumNArgs(1)},
}

func newOpCmds(o *options) []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(opSpecs))
	for _, spec := range opSpecs {
		cmds = append(cmds, &cobra.Command{
			Use:   spec.use,
			Short: spec.short,
			Args:  spec.args,
			RunE: func(cmd *cobra.Command, args []string) error {
				return o.eval(cmd, calc.Request{Op: spec.op, Args: args})
			},
		})
	}
	return cmds
}
