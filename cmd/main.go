// Package main provides the CLI entrypoint of the ledger API server.
package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pet-ledger",
		Short: "In-memory ledger of accounts and money transfers",
	}

	rootCmd.PersistentFlags().StringP("config", "c", "./configs", "Directory containing app.env")

	rootCmd.AddCommand(serveCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
