package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/objects/internal/cli"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [file]",
	Short: "Export a Graph object as a Mermaid diagram",
	Long:  `Normalizes a Graph document from file (or stdin) and outputs a Mermaid flowchart.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := newCatalog(cmd)
		if err != nil {
			return err
		}
		doc, err := loadInput(cmd, args)
		if err != nil {
			return err
		}
		highlight, _ := cmd.Flags().GetIntSlice("highlight")
		return cli.Graph(cmd.OutOrStdout(), cat, doc, highlight)
	},
}

func init() {
	graphCmd.Flags().StringP("format", "f", cli.FormatAuto, "Input format (json, yaml); detected when empty")
	graphCmd.Flags().IntSlice("highlight", nil, "Vertex indexes to highlight")
	rootCmd.AddCommand(graphCmd)
}
