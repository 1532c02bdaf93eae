// Package sumsent compares sentiment and emotion word rates between the
// source documents of summarization corpora and their human summaries.
package sumsent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cognicore/sumsent/internal/logging"
	"github.com/cognicore/sumsent/pkg/sumsent/compare"
	"github.com/cognicore/sumsent/pkg/sumsent/corpus"
	"github.com/cognicore/sumsent/pkg/sumsent/ingest"
	"github.com/cognicore/sumsent/pkg/sumsent/stats"
	"github.com/cognicore/sumsent/pkg/sumsent/store"
)

// Sumsent is the comparison facade
type Sumsent struct {
	store   store.Store
	builder *compare.Builder
	now     func() time.Time
	logger  *slog.Logger
}

// Options configures a Sumsent instance
type Options struct {
	// Store receives every run; nil disables persistence.
	Store      store.Store
	Pipeline   *ingest.Pipeline
	Aggregator *stats.Aggregator
	Parallel   int
}

// New creates a Sumsent instance with the given dependencies
func New(opts Options) *Sumsent {
	b := compare.NewBuilder(opts.Pipeline, opts.Aggregator)
	b.SetParallel(opts.Parallel)
	return &Sumsent{
		store:   opts.Store,
		builder: b,
		now:     time.Now,
		logger:  logging.New("sumsent"),
	}
}

// Close releases the store, if any
func (s *Sumsent) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

// Result is the output of one comparison run
type Result struct {
	RunID     string
	StartedAt time.Time
	Vectors   *compare.Vectors
}

// Compare aggregates every docset of the corpora and, when a store is
// configured, records the run.
func (s *Sumsent) Compare(ctx context.Context, corpora []corpus.Corpus) (*Result, error) {
	started := s.now()
	res := &Result{RunID: store.NewRunID(started), StartedAt: started}

	v, err := s.builder.Build(ctx, corpora)
	if err != nil {
		return nil, err
	}
	res.Vectors = v

	docs, sums := v.ParseTotals()
	s.logger.Info("comparison built",
		"run", res.RunID,
		"docsets", len(v.Entries),
		"docs_parsed", docs.Parsed,
		"docs_failed", docs.Failed,
		"sums_parsed", sums.Parsed,
		"sums_failed", sums.Failed,
		"elapsed", time.Since(started))

	if s.store != nil {
		if err := s.persist(ctx, res, corpora); err != nil {
			return nil, fmt.Errorf("save run %s: %w", res.RunID, err)
		}
	}
	return res, nil
}

func (s *Sumsent) persist(ctx context.Context, res *Result, corpora []corpus.Corpus) error {
	years := make([]string, len(corpora))
	for i, c := range corpora {
		years[i] = c.Year
	}
	docs, sums := res.Vectors.ParseTotals()

	run := store.Run{
		ID:        res.RunID,
		StartedAt: res.StartedAt,
		Years:     years,
		Docsets:   len(res.Vectors.Entries),
		DocParse:  docs,
		SumParse:  sums,
	}
	recs := make([]store.DocsetRecord, 0, 2*len(res.Vectors.Entries))
	for i, e := range res.Vectors.Entries {
		recs = append(recs,
			store.NewDocsetRecord(i, e.Year, e.Docset, store.SideDocs, e.Docs, e.DocParse),
			store.NewDocsetRecord(i, e.Year, e.Docset, store.SideSums, e.Sums, e.SumParse),
		)
	}
	return s.store.SaveResult(ctx, run, recs)
}

// Report groups the ratio rows of a run for display or export
type Report struct {
	RunID     string            `json:"run_id"`
	Docsets   int               `json:"docsets"`
	DocParse  ingest.ParseCount `json:"doc_parse"`
	SumParse  ingest.ParseCount `json:"sum_parse"`
	Sentiment []compare.Row     `json:"sentiment"`
	Emotion   []compare.Row     `json:"emotion"`
	Words     []DocsetWords     `json:"words,omitempty"`
}

// DocsetWords lists the words behind one docset's sentiment and emotion
// counts on each side.
type DocsetWords struct {
	Year         string   `json:"year"`
	Docset       string   `json:"docset"`
	DocSentiment []string `json:"doc_sentiment"`
	DocEmotion   []string `json:"doc_emotion"`
	SumSentiment []string `json:"sum_sentiment"`
	SumEmotion   []string `json:"sum_emotion"`
}

// Words returns the sorted contributor words of every docset, in entry order.
func (r *Result) Words() []DocsetWords {
	out := make([]DocsetWords, len(r.Vectors.Entries))
	for i, e := range r.Vectors.Entries {
		out[i] = DocsetWords{
			Year:         e.Year,
			Docset:       e.Docset,
			DocSentiment: e.Docs.SortedSentimentWords(),
			DocEmotion:   e.Docs.SortedEmotionWords(),
			SumSentiment: e.Sums.SortedSentimentWords(),
			SumEmotion:   e.Sums.SortedEmotionWords(),
		}
	}
	return out
}

// Report computes ratio rows for the given field lists.
func (r *Result) Report(sentimentFields, emotionFields []stats.Field) Report {
	docs, sums := r.Vectors.ParseTotals()
	return Report{
		RunID:     r.RunID,
		Docsets:   len(r.Vectors.Entries),
		DocParse:  docs,
		SumParse:  sums,
		Sentiment: r.Vectors.Rows(sentimentFields),
		Emotion:   r.Vectors.Rows(emotionFields),
	}
}
