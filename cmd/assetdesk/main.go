package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/assetdesk/assetdesk/internal/interfaces/cli/migrate"
	"github.com/assetdesk/assetdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "assetdesk",
		Short: "AssetDesk - internal asset and helpdesk portal",
		Long:  `AssetDesk is the employee portal for asset tracking, helpdesk tickets, and internal messaging.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
