package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/objects/internal/cli"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <type> [file]",
	Short: "Normalize a document as an object type",
	Long: `Reads a JSON or YAML document from file (or stdin) and prints its normalized
form as JSON. Exits non-zero when the document is rejected.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := newCatalog(cmd)
		if err != nil {
			return err
		}
		doc, err := loadInput(cmd, args[1:])
		if err != nil {
			return err
		}
		return cli.Normalize(cmd.OutOrStdout(), cat, args[0], doc)
	},
}

func init() {
	normalizeCmd.Flags().StringP("format", "f", cli.FormatAuto, "Input format (json, yaml); detected when empty")
	rootCmd.AddCommand(normalizeCmd)
}

func loadInput(cmd *cobra.Command, args []string) (any, error) {
	var path string
	if len(args) > 0 {
		path = args[0]
	}
	format, _ := cmd.Flags().GetString("format")
	return cli.LoadDocument(path, format, cmd.InOrStdin())
}
