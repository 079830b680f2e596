package main

import (
	"os"

	"github.com/aretw0/objwatch/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <document>",
	Short: "Watch a document and replay a script of writes against it",
	Long: `Loads the document, watches it with the given options, applies the writes of
the script in order and prints every reported change followed by the final document.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		script, _ := cmd.Flags().GetString("script")
		unwatch, _ := cmd.Flags().GetBool("unwatch")
		quiet, _ := cmd.Flags().GetBool("quiet")
		level, _ := cmd.Flags().GetString("log-level")

		logger, err := cli.CreateLogger(level)
		if err != nil {
			return err
		}

		return cli.Replay(cli.ReplayOptions{
			Document: args[0],
			Script:   script,
			Flags:    watchFlags(cmd),
			Unwatch:  unwatch,
			Quiet:    quiet,
			Styled:   cli.IsTerminal(os.Stdout),
			Logger:   logger,
		}, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("script", "s", "", "YAML or JSON script of writes to apply")
	runCmd.Flags().Bool("unwatch", false, "Restore the document after the script")
	runCmd.Flags().BoolP("quiet", "q", false, "Only print changes and the final document")
}
