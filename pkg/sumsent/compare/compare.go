package compare

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/cognicore/sumsent/internal/logging"
	"github.com/cognicore/sumsent/pkg/sumsent/corpus"
	"github.com/cognicore/sumsent/pkg/sumsent/ingest"
	"github.com/cognicore/sumsent/pkg/sumsent/stats"
)

// Entry pairs the document-side and summary-side stats of one docset.
type Entry struct {
	Year   string
	Docset string

	Docs stats.DocStats
	Sums stats.DocStats

	DocParse ingest.ParseCount
	SumParse ingest.ParseCount
}

// Vectors holds one Entry per docset across every corpus, in corpus order
// and then docset order.
type Vectors struct {
	Entries []Entry
}

// Docs returns the document-side stats; index i matches Sums()[i].
func (v *Vectors) Docs() []stats.DocStats {
	out := make([]stats.DocStats, len(v.Entries))
	for i, e := range v.Entries {
		out[i] = e.Docs
	}
	return out
}

// Sums returns the summary-side stats; index i matches Docs()[i].
func (v *Vectors) Sums() []stats.DocStats {
	out := make([]stats.DocStats, len(v.Entries))
	for i, e := range v.Entries {
		out[i] = e.Sums
	}
	return out
}

// Ratios returns field/word_count per docset for documents and summaries.
func (v *Vectors) Ratios(f stats.Field) (docs, sums []float64) {
	docs = make([]float64, len(v.Entries))
	sums = make([]float64, len(v.Entries))
	for i, e := range v.Entries {
		docs[i] = e.Docs.Ratio(f)
		sums[i] = e.Sums.Ratio(f)
	}
	return docs, sums
}

// ParseTotals sums parse outcomes over every docset.
func (v *Vectors) ParseTotals() (docs, sums ingest.ParseCount) {
	for _, e := range v.Entries {
		docs.Parsed += e.DocParse.Parsed
		docs.Failed += e.DocParse.Failed
		docs.FailedPaths = append(docs.FailedPaths, e.DocParse.FailedPaths...)
		sums.Parsed += e.SumParse.Parsed
		sums.Failed += e.SumParse.Failed
		sums.FailedPaths = append(sums.FailedPaths, e.SumParse.FailedPaths...)
	}
	return docs, sums
}

// Builder computes comparison vectors for a set of corpora.
type Builder struct {
	pipeline *ingest.Pipeline
	agg      *stats.Aggregator
	parallel int
	logger   *slog.Logger
}

// NewBuilder creates a sequential builder.
func NewBuilder(pipeline *ingest.Pipeline, agg *stats.Aggregator) *Builder {
	return &Builder{
		pipeline: pipeline,
		agg:      agg,
		parallel: 1,
		logger:   logging.New("compare"),
	}
}

// SetParallel bounds how many docsets are aggregated at once. Values below 1
// mean sequential.
func (b *Builder) SetParallel(n int) {
	if n < 1 {
		n = 1
	}
	b.parallel = n
}

type job struct {
	index  int
	year   string
	docset corpus.Docset
}

// Build lists every corpus's docsets and aggregates each one's documents and
// summaries independently. Corpus layout errors abort the build; unparseable
// files are skipped and counted.
func (b *Builder) Build(ctx context.Context, corpora []corpus.Corpus) (*Vectors, error) {
	var jobs []job
	for _, c := range corpora {
		docsets, err := corpus.ListDocsets(c)
		if err != nil {
			return nil, err
		}
		b.logger.Info("corpus listed", "year", c.Year, "docsets", len(docsets))
		for _, ds := range docsets {
			jobs = append(jobs, job{index: len(jobs), year: c.Year, docset: ds})
		}
	}

	entries := make([]Entry, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.parallel)
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entries[j.index] = b.buildEntry(j)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Vectors{Entries: entries}, nil
}

func (b *Builder) buildEntry(j job) Entry {
	docWords, docParse := b.pipeline.CollectionWords(j.docset.Docs, ingest.KindDocument)
	sumWords, sumParse := b.pipeline.CollectionWords(j.docset.Sums, ingest.KindSummary)

	e := Entry{
		Year:     j.year,
		Docset:   j.docset.ID,
		Docs:     b.agg.Compute(docWords),
		Sums:     b.agg.Compute(sumWords),
		DocParse: docParse,
		SumParse: sumParse,
	}

	attrs := []any{
		"year", j.year,
		"docset", j.docset.ID,
		"docs_parsed", docParse.Parsed,
		"docs_failed", docParse.Failed,
		"sums_parsed", sumParse.Parsed,
		"sums_failed", sumParse.Failed,
	}
	if docParse.Failed > 0 || sumParse.Failed > 0 {
		b.logger.Warn("docset aggregated with skipped files", attrs...)
	} else {
		b.logger.Debug("docset aggregated", attrs...)
	}
	if len(j.docset.Sums) == 0 {
		b.logger.Warn("docset has no summaries", "year", j.year, "docset", j.docset.ID)
	}
	return e
}
