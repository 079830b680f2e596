package main

import (
	"os"

	"github.com/aretw0/objwatch/internal/cli"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <document>",
	Short: "Show which properties a watch would intercept",
	Long: `Runs a watch build on the document and lists every visited property with the
outcome of its interception, as a table, a Mermaid graph (graph TD) or JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		level, _ := cmd.Flags().GetString("log-level")

		logger, err := cli.CreateLogger(level)
		if err != nil {
			return err
		}

		return cli.Inspect(cli.InspectOptions{
			Document: args[0],
			Flags:    watchFlags(cmd),
			Format:   format,
			Styled:   cli.IsTerminal(os.Stdout),
			Logger:   logger,
		}, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringP("format", "f", cli.FormatTable, "Output format: table, mermaid or json")
}
