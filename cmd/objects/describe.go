package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/objects/internal/cli"
	"github.com/aretw0/objects/internal/presentation/tui"
)

var describeCmd = &cobra.Command{
	Use:   "describe <type>",
	Short: "Show the documentation of an object type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := newCatalog(cmd)
		if err != nil {
			return err
		}

		raw, _ := cmd.Flags().GetBool("raw")
		var render func(string) (string, error)
		if !raw && term.IsTerminal(int(os.Stdout.Fd())) {
			width, _, err := term.GetSize(int(os.Stdout.Fd()))
			if err != nil {
				width = 80
			}
			render = tui.NewRenderer(width)
		}
		return cli.Describe(cmd.OutOrStdout(), cat, args[0], render)
	},
}

func init() {
	describeCmd.Flags().Bool("raw", false, "Print plain markdown")
	rootCmd.AddCommand(describeCmd)
}
