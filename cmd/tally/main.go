package main

import (
	"os"

	"github.com/spf13/cobra"

	"tally/internal/interfaces/cli/migrate"
	"tally/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tally",
		Short: "Tally - session-authenticated per-user counter service",
		Long:  `Tally is a web service providing cookie-session authentication, password management, and a per-user counter.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
