package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/safehub-io/safehub/internal/interfaces/cli/catalog"
	"github.com/safehub-io/safehub/internal/interfaces/cli/migrate"
	"github.com/safehub-io/safehub/internal/interfaces/cli/seed"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "safehub",
		Short: "SafeHub module entitlement and pricing tools",
		Long:  `SafeHub administrative tooling for the module catalog, customer entitlements, and pricing: database migration, seed data, and catalog inspection.`,
	}

	rootCmd.AddCommand(
		migrate.NewCommand(),
		seed.NewCommand(),
		catalog.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
