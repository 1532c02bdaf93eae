package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cognicore/sumsent/pkg/sumsent/corpus"
	"github.com/cognicore/sumsent/pkg/sumsent/ingest"
	"github.com/cognicore/sumsent/pkg/sumsent/internalerr"
)

var exportFlags struct {
	year   string
	docset string
	doc    string
	out    string
	kinds  []string
}

var exportCmd = &cobra.Command{
	Use:   "export-sentences",
	Short: "Write one sentence per line for each file of a docset",
	RunE:  runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&exportFlags.year, "year", "", "Corpus year (required)")
	f.StringVar(&exportFlags.docset, "docset", "", "Docset id, e.g. d17a (required)")
	f.StringVar(&exportFlags.doc, "doc", "", "Export only this document and the summaries written for it")
	f.StringVar(&exportFlags.out, "out", "", "Output directory (required)")
	f.StringSliceVar(&exportFlags.kinds, "kind", nil, "File kinds to export: document, summary (repeatable; default document)")

	_ = exportCmd.MarkFlagRequired("year")
	_ = exportCmd.MarkFlagRequired("docset")
	_ = exportCmd.MarkFlagRequired("out")
}

func runExport(cmd *cobra.Command, _ []string) error {
	names := exportFlags.kinds
	if len(names) == 0 {
		names = []string{"document"}
	}
	kinds := make([]ingest.Kind, 0, len(names))
	for _, k := range names {
		kind, err := ingest.ParseKind(k)
		if err != nil {
			return err
		}
		kinds = append(kinds, kind)
	}

	cfg, err := loadConfig([]string{exportFlags.year})
	if err != nil {
		return err
	}
	corpora, err := cfg.ResolveCorpora()
	if err != nil {
		return err
	}
	c, err := findCorpus(corpora, exportFlags.year)
	if err != nil {
		return err
	}
	ds, err := corpus.MakeDocset(c, exportFlags.docset)
	if err != nil {
		return err
	}
	docs, sums := ds.Docs, ds.Sums
	if exportFlags.doc != "" {
		docs, sums, err = selectDoc(ds, exportFlags.doc)
		if err != nil {
			return err
		}
	}

	seg, err := ingest.NewSegmenter()
	if err != nil {
		return fmt.Errorf("load sentence segmenter: %w", err)
	}
	ex := ingest.NewExtractor(seg)
	ex.SetTextTag(cfg.TextTag)

	for _, kind := range kinds {
		paths, dir := docs, exportFlags.out
		if kind == ingest.KindSummary {
			paths, dir = sums, filepath.Join(exportFlags.out, "summaries")
		}
		n, err := ingest.ExportSentences(ex, paths, kind, dir)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d of %d %s files to %s\n", n, len(paths), kind, dir)
	}
	return nil
}

// selectDoc narrows a docset to one document and the summaries covering it.
func selectDoc(ds corpus.Docset, docID string) (docs, sums []string, err error) {
	for _, d := range ds.Docs {
		if filepath.Base(d) == docID {
			docs = append(docs, d)
		}
	}
	if len(docs) == 0 {
		return nil, nil, fmt.Errorf("document %s in docset %s: %w", docID, ds.ID, internalerr.ErrNotFound)
	}
	return docs, ds.DocSummaries(docID, true), nil
}
