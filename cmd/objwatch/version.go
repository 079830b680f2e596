package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/objwatch"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of objwatch",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("objwatch version %s\n", strings.TrimSpace(objwatch.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
