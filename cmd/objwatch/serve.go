package main

import (
	"context"
	"os"

	"github.com/aretw0/objwatch/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve <document>",
	Short: "Serve a watched document over HTTP",
	Long: `Watches the document and exposes it over HTTP: GET/PUT /document, GET /changes,
POST /watch, POST /unwatch and Prometheus metrics on GET /metrics.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		history, _ := cmd.Flags().GetInt("history")
		level, _ := cmd.Flags().GetString("log-level")
		if level == "" {
			level = "info"
		}

		logger, err := cli.CreateLogger(level)
		if err != nil {
			return err
		}

		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		err = cli.Serve(sigCtx, cli.ServeOptions{
			Document: args[0],
			Flags:    watchFlags(cmd),
			Port:     port,
			History:  history,
			Logger:   logger,
		}, os.Stdout)
		if sig := sigCtx.Signal(); sig != nil {
			logger.Info("stopped by signal", "signal", sig)
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().Int("history", 100, "Number of recent changes kept for GET /changes")
}
