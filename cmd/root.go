// Package cmd contains all CLI commands for pdfsummarizer
package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pdfsummarizer/client"
	"pdfsummarizer/config"
	"pdfsummarizer/logging"
	"pdfsummarizer/output"
)

var version = "dev"

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
}

// annotationTUI marks commands that hand the terminal to bubbletea
const annotationTUI = "tui"

// app carries what every command shares once flags and config are resolved
type app struct {
	cfgFile   string
	serverURL string
	logFile   string
	verbose   bool

	cfg    *config.Config
	logger *zap.Logger
}

// Execute builds the command tree and runs it
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd returns the root command with every subcommand attached
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pdfsummarizer",
		Short: "Summarize PDF documents and manage saved summaries",
		Long: `pdfsummarizer uploads PDF documents to a summarization service and shows
the summary, reading time, language, topics, keywords and quality metrics.
Summaries can be saved, listed, reopened and deleted.

Without a subcommand the interactive interface is started.

Example usage:
  pdfsummarizer                           # Start the interactive interface
  pdfsummarizer summarize paper.pdf       # Summarize one document
  pdfsummarizer summarize paper.pdf --save --length short
  pdfsummarizer list                      # List saved summaries
  pdfsummarizer serve                     # Run the development backend`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Annotations:   map[string]string{annotationTUI: "true"},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runTUI,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is .pdfsummarizer.yaml)")
	root.PersistentFlags().StringVar(&a.serverURL, "url", "", "summarization service URL (default "+config.DefaultServerURL+")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().StringVar(&a.logFile, "log-file", "", "write logs to this file")

	root.AddCommand(
		a.newTUICmd(),
		a.newSummarizeCmd(),
		a.newListCmd(),
		a.newShowCmd(),
		a.newDeleteCmd(),
		a.newServeCmd(),
		newVersionCmd(),
	)
	return root
}

// initConfig loads configuration, applies flag overrides and builds the logger
func (a *app) initConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("url") {
		cfg.Server.URL = a.serverURL
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if a.logFile != "" {
		cfg.Logging.File = a.logFile
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.New(logging.Options{
		Level: cfg.Logging.Level,
		File:  cfg.Logging.File,
		Quiet: cmd.Annotations[annotationTUI] == "true",
	})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger

	logger.Debug("configuration loaded",
		zap.String("server_url", cfg.Server.URL),
		zap.Duration("timeout", cfg.Server.Timeout),
		zap.String("length", cfg.Summary.Length),
	)
	return nil
}

func (a *app) client() *client.Client {
	return client.NewClient(a.cfg.Server.URL,
		client.WithTimeout(a.cfg.Server.Timeout),
		client.WithLogger(a.logger),
	)
}

func (a *app) printer(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ResolveColors(a.cfg.Output.Colors))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
