// sumsent compares sentiment and emotion word rates between the documents of
// DUC-style summarization corpora and their human summaries.
//
// Usage:
//
//	sumsent compare [--year=2001] [--format=text|json|r] [--db=runs.db] [--words]
//	sumsent docsets [--year=2001] [--summaries]
//	sumsent export-sentences --year=2001 --docset=d17a --out=<dir> [--kind=document,summary] [--doc=<id>]
//	sumsent lexicon [--word=<w>]
//	sumsent runs --db=runs.db [--run=<id>]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
