package main

import (
	"github.com/spf13/cobra"

	"github.com/cognicore/sumsent/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	config    string
	logLevel  string
	logFormat string
}

var rootCmd = &cobra.Command{
	Use:   "sumsent",
	Short: "Compare sentiment and emotion rates of documents and their summaries",
	Long: "sumsent walks DUC-style summarization corpora, counts subjectivity-lexicon\n" +
		"and emotion words in source documents and in human summaries, and reports\n" +
		"the per-docset ratios side by side.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, err := logging.ParseLevel(rootFlags.logLevel)
		if err != nil {
			return err
		}
		logging.Init(level, rootFlags.logFormat, cmd.ErrOrStderr())
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.config, "config", "sumsent.yaml", "Path to the run configuration")
	pf.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(docsetsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(lexiconCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.Version = version
}
