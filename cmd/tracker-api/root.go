package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:           "tracker-api",
		Short:         "Study topic and question tracker API",
		SilenceUsage:  true,
		SilenceErrors: true,
		// 不带子命令时直接启动服务
		RunE: serve.RunE,
	}
	root.AddCommand(serve)
	root.AddCommand(newMigrateCmd())
	return root
}
