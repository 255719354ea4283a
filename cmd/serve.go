/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/vipcxj/rangealg/internal/server"
)

func newServeCmd(o *options) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the range algebra over HTTP",
		Long: `Serve the range algebra over HTTP:

  GET  /v1/ops/:op?kind=int&arg=[1..5]&arg=3
  POST /v1/eval      a JSON request {"kind":"int","op":"contains","args":["[1..5]","3"]}
  POST /v1/batch     a yaml batch file
  GET  /healthz
  GET  /metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !o.v.GetBool("debug") {
				gin.SetMode(gin.ReleaseMode)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New().Run(ctx, o.v.GetString("addr"))
		},
	}
	serveCmd.Flags().String("addr", ":8080", "listen address")
	if err := o.v.BindPFlag("addr", serveCmd.Flags().Lookup("addr")); err != nil {
		panic(err)
	}
	return serveCmd
}
