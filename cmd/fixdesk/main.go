package main

import (
	"os"

	"github.com/spf13/cobra"

	"fixdesk/internal/interfaces/cli/migrate"
	"fixdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fixdesk",
		Short: "Fixdesk - maintenance ticket tracking",
		Long:  `Fixdesk is a maintenance ticket tracker with a REST API server, migration tools, and an offline-capable client SDK.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
