package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	verbose     bool
	logJSON     bool
	metricsFile string
	dryRun      bool
)

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "A CLI for the startuppong.com ping pong ladder",
	Long: `A command-line interface for reading the startuppong.com ladder,
recording matches and posting results to Slack.

Credentials are read from STARTUPPONG_ACCOUNT_ID and STARTUPPONG_ACCESS_KEY,
either in the environment or in a .env file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics to this file after the command runs")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Log Slack messages instead of posting them")
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'\n", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
