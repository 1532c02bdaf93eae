package main

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cognicore/sumsent/pkg/sumsent/corpus"
)

var docsetsFlags struct {
	years     []string
	summaries bool
}

var docsetsCmd = &cobra.Command{
	Use:   "docsets",
	Short: "List each corpus's docsets with document and summary counts",
	RunE:  runDocsets,
}

func init() {
	docsetsCmd.Flags().StringSliceVar(&docsetsFlags.years, "year", nil, "Restrict to these corpus years (repeatable)")
	docsetsCmd.Flags().BoolVar(&docsetsFlags.summaries, "summaries", false, "List each summary with its kind and target length")
}

func runDocsets(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(docsetsFlags.years)
	if err != nil {
		return err
	}
	corpora, err := cfg.ResolveCorpora()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	if docsetsFlags.summaries {
		fmt.Fprintln(tw, "YEAR\tDOCSET\tSUMMARY\tKIND\tLENGTH")
	} else {
		fmt.Fprintln(tw, "YEAR\tDOCSET\tDOCS\tSUMS")
	}
	for _, c := range corpora {
		docsets, err := corpus.ListDocsets(c)
		if err != nil {
			return err
		}
		for _, ds := range docsets {
			if docsetsFlags.summaries {
				writeSummaryRows(tw, c.Year, ds)
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", c.Year, ds.ID, len(ds.Docs), len(ds.Sums))
		}
	}
	return tw.Flush()
}

func writeSummaryRows(tw *tabwriter.Writer, year string, ds corpus.Docset) {
	for _, path := range ds.Sums {
		base := filepath.Base(path)
		sn := corpus.ParseSummaryName(base)
		length := "-"
		if sn.Length > 0 {
			length = fmt.Sprint(sn.Length)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", year, ds.ID, base, sn.Kind, length)
	}
}
