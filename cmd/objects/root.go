package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/objects"
	"github.com/aretw0/objects/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "objects",
	Short: "Objects normalizes values against typed object schemas",
	Long: `Objects validates raw JSON or YAML values against a catalog of named object
types and prints their canonical form.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); empty disables logging")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().StringSlice("defs", nil, "Extra type definition files (YAML or JSON)")
}

func newCatalog(cmd *cobra.Command) (*objects.Catalog, error) {
	level, _ := cmd.Flags().GetString("log-level")
	logJSON, _ := cmd.Flags().GetBool("log-json")
	defs, _ := cmd.Flags().GetStringSlice("defs")

	cat, _, err := cli.NewCatalog(cli.Options{
		LogLevel:    level,
		LogJSON:     logJSON,
		Definitions: defs,
	})
	return cat, err
}
