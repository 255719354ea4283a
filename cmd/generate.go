/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vipcxj/rangealg/internal/calc"
)

func newGenerateCmd(o *options) *cobra.Command {
	var step string
	generateCmd := &cobra.Command{
		Use:   "generate RANGE",
		Short: "Print the values of a range in increasing order",
		Long: `Print the values of a range in increasing order, starting at the lower bound.
Numbers advance by --step (1 by default). Strings advance to their successor and take no step.
At most --max values are printed; "..." marks a truncated sequence.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.eval(cmd, calc.Request{Op: calc.OpGenerate, Args: args, Step: step})
		},
	}
	generateCmd.Flags().StringVarP(&step, "step", "s", "", "increment between values")
	return generateCmd
}
