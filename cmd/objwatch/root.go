package main

import (
	"fmt"
	"os"

	"github.com/aretw0/objwatch/internal/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:   "objwatch",
	Short: "objwatch intercepts writes to the properties of a document",
	Long: `objwatch loads a YAML or JSON document as an object graph, intercepts its
properties and reports every write that changes a value.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	addWatchFlags(rootCmd.PersistentFlags())
}

func addWatchFlags(flags *pflag.FlagSet) {
	flags.Int("depth", 0, "Levels of nested objects to watch (-1 for unbounded)")
	flags.Bool("watch-arrays", false, "Intercept scalar elements of arrays")
	flags.Bool("traverse-arrays", false, "Descend into objects and arrays held by arrays")
	flags.Bool("no-props", false, "Do not intercept scalar properties")
	flags.StringSlice("prop", nil, "Only watch properties with this name (repeatable)")
	flags.String("options", "", "YAML or JSON file with watch options")
	flags.String("log-level", "", "Log level (debug, info, warn, error); logging is off when empty")
}

// watchFlags collects the watch flags the user actually set.
func watchFlags(cmd *cobra.Command) cli.WatchFlags {
	flags := cmd.Flags()
	wf := cli.WatchFlags{}
	wf.OptionsFile, _ = flags.GetString("options")
	wf.Props, _ = flags.GetStringSlice("prop")

	if flags.Changed("depth") {
		depth, _ := flags.GetInt("depth")
		wf.Depth = &depth
	}
	wf.WatchArrays = changedBool(cmd, "watch-arrays")
	wf.TraverseArrays = changedBool(cmd, "traverse-arrays")
	wf.NoProps = changedBool(cmd, "no-props")
	return wf
}

func changedBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}
