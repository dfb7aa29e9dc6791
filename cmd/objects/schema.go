package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/objects/internal/cli"
)

var schemaCmd = &cobra.Command{
	Use:   "schema [type]",
	Short: "Print the schema of an object type",
	Long: `Prints the declarative schema of one object type. With --output openapi and
no type, prints every schema as OpenAPI components.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := newCatalog(cmd)
		if err != nil {
			return err
		}
		var name string
		if len(args) > 0 {
			name = args[0]
		}
		format, _ := cmd.Flags().GetString("output")
		return cli.PrintSchema(cmd.OutOrStdout(), cat, name, format)
	},
}

func init() {
	schemaCmd.Flags().StringP("output", "o", cli.OutputJSON, "Output format (json, yaml, openapi)")
	rootCmd.AddCommand(schemaCmd)
}
