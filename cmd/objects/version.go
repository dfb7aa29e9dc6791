package main

import (
	"fmt"

	"github.com/aretw0/objects"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of objects",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "objects version %s\n", objects.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
