package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cognicore/sumsent/pkg/sumsent/store/sqlite"
)

var runsFlags struct {
	db    string
	run   string
	limit int
	field string
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded comparison runs or show one run's docsets",
	RunE:  runRuns,
}

func init() {
	f := runsCmd.Flags()
	f.StringVar(&runsFlags.db, "db", "", "SQLite file written by compare (required)")
	f.StringVar(&runsFlags.run, "run", "", "Show the docset records of this run")
	f.IntVar(&runsFlags.limit, "limit", 20, "Maximum runs to list")
	f.StringVar(&runsFlags.field, "field", "sentiment_count", "Ratio column shown with --run")

	_ = runsCmd.MarkFlagRequired("db")
}

func runRuns(cmd *cobra.Command, _ []string) error {
	st, err := sqlite.OpenSQLite(cmd.Context(), runsFlags.db)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	if runsFlags.run != "" {
		run, err := st.GetRun(cmd.Context(), runsFlags.run)
		if err != nil {
			return err
		}
		recs, err := st.DocsetRecords(cmd.Context(), run.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "YEAR\tDOCSET\tSIDE\tWORDS\tPARSED\tFAILED\t%s\n", runsFlags.field)
		for _, r := range recs {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%.5f\n",
				r.Year, r.Docset, r.Side, r.WordCount, r.Parsed, r.Failed, r.Ratio(runsFlags.field))
		}
		return tw.Flush()
	}

	runs, err := st.ListRuns(cmd.Context(), runsFlags.limit)
	if err != nil {
		return err
	}
	fmt.Fprintln(tw, "RUN\tSTARTED\tYEARS\tDOCSETS\tDOCS SKIPPED\tSUMS SKIPPED")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%v\t%d\t%d\t%d\n",
			r.ID, r.StartedAt.Local().Format("2006-01-02 15:04:05"), r.Years, r.Docsets, r.DocParse.Failed, r.SumParse.Failed)
	}
	return tw.Flush()
}
