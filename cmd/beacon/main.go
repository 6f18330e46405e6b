package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/beacon-cms/beacon/internal/interfaces/cli/migrate"
	"github.com/beacon-cms/beacon/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "beacon",
		Short: "Beacon - marketing site CMS",
		Long:  `Beacon serves a marketing website's pricing, pages, FAQs, and forms, with an admin API to manage all of it.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
