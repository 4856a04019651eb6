package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"northlight-site/form"
	"northlight-site/models"
	"northlight-site/site"
	"northlight-site/tui"
)

var (
	flagConfig   string
	flagContent  string
	flagEndpoint string
	flagLogFile  string
)

func main() {
	root := &cobra.Command{
		Use:          "northlight-site",
		Short:        "The Northlight Studio brochure page, rendered in the terminal",
		RunE:         run,
		SilenceUsage: true,
	}

	root.Flags().StringVar(&flagConfig, "config", "northlight.yml", "path to the configuration file")
	root.Flags().StringVar(&flagContent, "content", "", "page content file (defaults to the built-in page)")
	root.Flags().StringVar(&flagEndpoint, "endpoint", "", "POST contact submissions to this URL instead of simulating delivery")
	root.Flags().StringVar(&flagLogFile, "log-file", "", "write diagnostics to this file")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := models.LoadConfig(flagConfig)
	if err != nil {
		return err
	}

	// Flags win over the file and environment.
	if flagContent != "" {
		cfg.ContentFile = flagContent
	}
	if flagEndpoint != "" {
		cfg.SubmitEndpoint = flagEndpoint
	}
	if flagLogFile != "" {
		cfg.LogFile = flagLogFile
	}

	// The TUI owns the terminal, so diagnostics go to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		Prefix:          "northlight",
	})

	page, err := site.Load(cfg.ContentFile)
	if err != nil {
		logger.Error("loading page content", "err", err)
		return err
	}

	var submitter form.Submitter
	if cfg.SubmitEndpoint != "" {
		submitter = &form.HTTPSubmitter{Endpoint: cfg.SubmitEndpoint}
		logger.Info("contact submissions will be posted", "endpoint", cfg.SubmitEndpoint)
	} else {
		submitter = form.NewSimulatedSubmitter(cfg.SubmitDelay, cfg.FailureRate, time.Now().UnixNano())
		logger.Info("contact submissions are simulated", "delay", cfg.SubmitDelay, "failure_rate", cfg.FailureRate)
	}

	ctrl := form.NewController(form.DefaultRules(), submitter, logger)

	if err := tui.Run(cfg, page, ctrl); err != nil {
		logger.Error("ui exited", "err", err)
		return err
	}
	return nil
}
