// Package main is the entry point for the storefront CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	envFile    string
	configFile string
}

func rootCmd() *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "storefront",
		Short: "Storefront catalogue and order search API",
		Long: `Storefront serves a product catalogue and an ecommerce order archive
stored as JSON documents in Redis and queried through its search engine.

Configuration is loaded in the following order (later sources override earlier):
  1. config/<ENV>.yaml (ENV defaults to local), or --config
  2. .env file (--env-file, or .env in the current directory)
  3. Environment variables referenced as ${VAR} in the YAML file`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "Path to YAML config (default: config/<ENV>.yaml)")

	cmd.AddCommand(serveCmd(&flags))
	cmd.AddCommand(indexCmd(&flags))
	cmd.AddCommand(seedCmd(&flags))
	cmd.AddCommand(versionCmd())

	return cmd
}
