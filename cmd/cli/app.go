package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/startuppong/internal/config"
	"github.com/mauv0809/startuppong/internal/metrics"
	"github.com/mauv0809/startuppong/internal/notifier"
	"github.com/mauv0809/startuppong/internal/notifier/slack"
	"github.com/mauv0809/startuppong/internal/startuppong"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var errSlackNotConfigured = errors.New("slack is not configured: set SLACK_BOT_TOKEN and SLACK_CHANNEL_ID")

// app bundles the collaborators a command needs.
type app struct {
	client   startuppong.PongClient
	notifier notifier.Notifier
	registry *prometheus.Registry
	out      io.Writer
	dryRun   bool
}

func newApp(out io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	setupLogging(cfg.LogLevel)

	registry := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(registry)

	client := startuppong.NewClient(
		startuppong.NewAccount(cfg.Account.ID, cfg.Account.Key),
		startuppong.WithBaseURL(cfg.BaseURL),
		startuppong.WithTimeout(cfg.Timeout),
		startuppong.WithMetrics(metricsSvc),
	)

	a := &app{
		client:   client,
		registry: registry,
		out:      out,
		dryRun:   dryRun,
	}
	switch {
	case cfg.SlackEnabled():
		a.notifier = slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	case dryRun:
		// Dry runs never touch the Slack API, so no token is needed.
		a.notifier = slack.NewNotifierWithAPI(nil, cfg.Slack.ChannelID, metricsSvc)
	}
	log.Debug("CLI initialised", "base_url", cfg.BaseURL, "timeout", cfg.Timeout, "slack", a.notifier != nil, "dry_run", dryRun)
	return a, nil
}

func setupLogging(level string) {
	if logJSON {
		log.SetFormatter(log.JSONFormatter)
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
		return
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.Warn("Unknown log level, falling back to info", "level", level)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

// withApp builds the app for a command and flushes metrics once it returns.
func withApp(run func(ctx context.Context, a *app, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		runErr := run(cmd.Context(), a, args)
		if metricsFile != "" {
			if err := metrics.WriteTextfile(metricsFile, a.registry); err != nil {
				log.Error("Failed to write metrics file", "path", metricsFile, "error", err)
				return errors.Join(runErr, err)
			}
			log.Debug("Metrics written", "path", metricsFile)
		}
		return runErr
	}
}

func (a *app) requireNotifier() error {
	if a.notifier == nil {
		return errSlackNotConfigured
	}
	return nil
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
