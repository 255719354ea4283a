/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vipcxj/rangealg/internal/calc"
)

// sideValue is the --side flag of the limit command.
type sideValue calc.Op

var _ pflag.Value = (*sideValue)(nil)

func (s *sideValue) String() string {
	switch calc.Op(*s) {
	case calc.OpLimitLower:
		return "lower"
	case calc.OpLimitUpper:
		return "upper"
	default:
		return "both"
	}
}

func (s *sideValue) Set(text string) error {
	switch text {
	case "lower":
		*s = sideValue(calc.OpLimitLower)
	case "upper":
		*s = sideValue(calc.OpLimitUpper)
	case "both":
		*s = sideValue(calc.OpLimit)
	default:
		return errors.New("must be one of lower, upper or both")
	}
	return nil
}

func (s *sideValue) Type() string {
	return "side"
}

func newLimitCmd(o *options) *cobra.Command {
	side := sideValue(calc.OpLimit)
	limitCmd := &cobra.Command{
		Use:   "limit RANGE VALUE...",
		Short: "Clamp each value into the range",
		Long: `Clamp each value into the range. A value below the lower bound becomes the lower bound value
and a value above the upper bound becomes the upper bound value, whether the bound is open or closed.
The empty range leaves values untouched.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.eval(cmd, calc.Request{Op: calc.Op(side), Args: args})
		},
	}
	limitCmd.Flags().Var(&side, "side", "bound to clamp against: lower, upper or both")
	return limitCmd
}
