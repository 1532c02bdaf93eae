package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cognicore/sumsent/pkg/sumsent"
	"github.com/cognicore/sumsent/pkg/sumsent/compare"
	"github.com/cognicore/sumsent/pkg/sumsent/store"
	"github.com/cognicore/sumsent/pkg/sumsent/store/sqlite"
)

var compareFlags struct {
	years    []string
	parallel int
	db       string
	format   string
	words    bool
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compute document vs summary ratios for every docset",
	RunE:  runCompare,
}

func init() {
	f := compareCmd.Flags()
	f.StringSliceVar(&compareFlags.years, "year", nil, "Restrict to these corpus years (repeatable)")
	f.IntVar(&compareFlags.parallel, "parallel", 0, "Docsets aggregated at once (0 = config value)")
	f.StringVar(&compareFlags.db, "db", "", "SQLite file recording the run (default: config db)")
	f.StringVar(&compareFlags.format, "format", "text", "Output format: text, json, r")
	f.BoolVar(&compareFlags.words, "words", false, "Include each docset's contributing words (text and json formats)")
}

func runCompare(cmd *cobra.Command, _ []string) error {
	switch compareFlags.format {
	case "text", "json", "r":
	default:
		return fmt.Errorf("unknown format %q (want text, json or r)", compareFlags.format)
	}

	comp, cfg, err := loadComponents(compareFlags.years)
	if err != nil {
		return err
	}

	parallel := comp.Parallel
	if compareFlags.parallel > 0 {
		parallel = compareFlags.parallel
	}

	dbPath := cfg.DB
	if compareFlags.db != "" {
		dbPath = compareFlags.db
	}
	var st store.Store
	if dbPath != "" {
		st, err = sqlite.OpenSQLite(cmd.Context(), dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
	}

	s := sumsent.New(sumsent.Options{
		Store:      st,
		Pipeline:   comp.Pipeline,
		Aggregator: comp.Aggregator,
		Parallel:   parallel,
	})
	defer s.Close()

	res, err := s.Compare(cmd.Context(), comp.Corpora)
	if err != nil {
		return err
	}
	rep := res.Report(comp.SentimentFields, comp.EmotionFields)
	if compareFlags.words {
		rep.Words = res.Words()
	}

	out := cmd.OutOrStdout()
	switch compareFlags.format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "r":
		if err := compare.WriteR(out, rep.Sentiment); err != nil {
			return err
		}
		return compare.WriteR(out, rep.Emotion)
	}
	return writeReport(out, rep)
}

func writeReport(out io.Writer, rep sumsent.Report) error {
	fmt.Fprintf(out, "Run:      %s\n", rep.RunID)
	fmt.Fprintf(out, "Docsets:  %d\n", rep.Docsets)
	fmt.Fprintf(out, "Docs:     %d parsed, %d skipped\n", rep.DocParse.Parsed, rep.DocParse.Failed)
	fmt.Fprintf(out, "Sums:     %d parsed, %d skipped\n", rep.SumParse.Parsed, rep.SumParse.Failed)
	fmt.Fprintln(out)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tDOC MEAN\tDOC SD\tSUM MEAN\tSUM SD\tMEAN DIFF")
	for _, rows := range [][]compare.Row{rep.Sentiment, rep.Emotion} {
		for _, r := range rows {
			s := r.Summary
			fmt.Fprintf(tw, "%s\t%.5f\t%.5f\t%.5f\t%.5f\t%+.5f\n",
				r.Field, s.DocMean, s.DocStdDev, s.SumMean, s.SumStdDev, s.MeanDiff)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(rep.Words) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	tw = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "YEAR\tDOCSET\tSIDE\tSENTIMENT\tEMOTION")
	for _, w := range rep.Words {
		fmt.Fprintf(tw, "%s\t%s\tdocs\t%s\t%s\n", w.Year, w.Docset, joinWords(w.DocSentiment), joinWords(w.DocEmotion))
		fmt.Fprintf(tw, "%s\t%s\tsums\t%s\t%s\n", w.Year, w.Docset, joinWords(w.SumSentiment), joinWords(w.SumEmotion))
	}
	return tw.Flush()
}

func joinWords(words []string) string {
	if len(words) == 0 {
		return "-"
	}
	return strings.Join(words, ",")
}
