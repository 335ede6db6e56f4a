package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/garagehq/shopapi/internal/interfaces/cli/admin"
	"github.com/garagehq/shopapi/internal/interfaces/cli/migrate"
	"github.com/garagehq/shopapi/internal/interfaces/cli/seed"
	"github.com/garagehq/shopapi/internal/interfaces/cli/server"
	"github.com/garagehq/shopapi/internal/shared/version"
)

// @title Shop API
// @version 1.0
// @description Users, mechanics, inventory and service tickets for a repair shop.
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	rootCmd := &cobra.Command{
		Use:          "shopapi",
		Short:        "Shop API - mechanic shop backend",
		Long:         `shopapi serves the mechanic shop REST API and bundles migration, seeding and administrative commands.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		admin.NewUserCommand(),
		admin.NewTokenCommand(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the build version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "shopapi %s (%s)\n", version.String(), version.Commit)
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
