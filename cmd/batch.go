/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/vipcxj/rangealg/internal/batch"
)

func newBatchCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE...",
		Short: "Run the operations listed in yaml files",
		Long: `Run the operations listed in yaml files and check their expectations.

A file is either a list of steps or a mapping with a default "kind" and a "steps" list:

  kind: int
  steps:
    - name: closed contains upper
      op: contains
      args: ["[1..5]", "5"]
      expect: "true"

Steps without a kind or max take the file's, then --kind and --max.
The command fails when a step does not meet its expectation.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := o.kind()
			if err != nil {
				return err
			}
			defaults := batch.Defaults{Kind: kind, Max: o.v.GetInt("max")}
			total, failed := 0, 0
			for _, path := range args {
				f, err := batch.Read(path)
				if err != nil {
					return err
				}
				report := f.Run(defaults)
				if err := report.Write(cmd.OutOrStdout()); err != nil {
					return err
				}
				total += report.Total
				failed += report.Failed
			}
			if failed > 0 {
				return errors.Newf("%d of %d steps failed", failed, total)
			}
			return nil
		},
	}
}
