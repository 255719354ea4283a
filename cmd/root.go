/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/vipcxj/rangealg/internal/calc"
	"github.com/vipcxj/rangealg/internal/logging"
	"github.com/vipcxj/rangealg/internal/notation"
)

const envPrefix = "RANGEALG"

// options carries the settings shared by every command. Values come from flags, RANGEALG_*
// environment variables and an optional config file, in that order of precedence.
type options struct {
	v *viper.Viper
}

func (o *options) kind() (notation.ValueKind, error) {
	return notation.ValueKindString(o.v.GetString("kind"))
}

func (o *options) eval(cmd *cobra.Command, req calc.Request) error {
	kind, err := o.kind()
	if err != nil {
		return err
	}
	req.Kind = kind
	req.Max = o.v.GetInt("max")
	res, err := calc.Eval(req)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, v := range res.Values {
		fmt.Fprintln(out, v)
	}
	if res.Truncated {
		fmt.Fprintln(out, "...")
	}
	return nil
}

func (o *options) setup() error {
	if path := o.v.GetString("config"); path != "" {
		o.v.SetConfigFile(path)
		if err := o.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", path)
		}
	}
	if o.v.GetBool("debug") {
		logging.SetLevel(zapcore.DebugLevel)
	} else {
		logging.SetLevel(zapcore.WarnLevel)
	}
	if o.v.IsSet("log-format") {
		f, err := logging.LogFormatString(o.v.GetString("log-format"))
		if err != nil {
			return err
		}
		logging.Configure(f, os.Stderr)
	}
	return nil
}

// NewRootCmd builds the complete command tree.
func NewRootCmd() *cobra.Command {
	o := &options{v: viper.New()}
	o.v.SetEnvPrefix(envPrefix)
	o.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	o.v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "rangealg",
		Short: "Evaluate operations of the range algebra",
		Long: `rangealg evaluates operations over ranges written as [a..b], (a..b), [a..b), (a..b],
a single value a (the degenerate range [a..a]) or ∅ (the empty range).

Values are integers by default. Use --kind float or --kind string to change it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("kind", "k", notation.ValueKindInt.String(), "value kind of the ranges: int, float or string")
	flags.Int("max", calc.DefaultMax, "maximum number of generated values")
	flags.Bool("debug", false, "enable debug logging")
	flags.String("log-format", logging.LogFormatConsole.String(), "log format: console or json")
	flags.String("config", "", "config file (yaml)")
	if err := o.v.BindPFlags(flags); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(newOpCmds(o)...)
	rootCmd.AddCommand(
		newLimitCmd(o),
		newGenerateCmd(o),
		newBatchCmd(o),
		newServeCmd(o),
	)
	return rootCmd
}

// Execute runs the command line in os.Args and returns the process exit code.
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}
