package main

import (
	"os"

	"github.com/spf13/cobra"

	"parksexplorer/internal/interfaces/cli/migrate"
	"parksexplorer/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "parksexplorer",
		Short: "Parks Explorer - national parks trip planning backend",
		Long:  `Parks Explorer serves the HTTP API for browsing national parks, generating trip itineraries, and managing user accounts.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
