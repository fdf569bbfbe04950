package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "projectadmin",
		Short: "Admin backend for editing project metadata",
	}
	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("error executing command", "err", err)
		os.Exit(1)
	}
}
