package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/objects/internal/cli"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered object types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := newCatalog(cmd)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("output")
		return cli.List(cmd.OutOrStdout(), cat, format)
	},
}

func init() {
	listCmd.Flags().StringP("output", "o", cli.OutputText, "Output format (text, json, yaml)")
	rootCmd.AddCommand(listCmd)
}
