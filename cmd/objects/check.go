package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/objects/internal/cli"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check every schema definition for consistency",
	Long:  `Validates the schema of every registered type, including types loaded with --defs, and reports dangling obj_type references.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := newCatalog(cmd)
		if err != nil {
			return err
		}
		return cli.Check(cmd.OutOrStdout(), cat)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
