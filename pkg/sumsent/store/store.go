package store

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/sumsent/pkg/sumsent/ingest"
	"github.com/cognicore/sumsent/pkg/sumsent/stats"
)

// Store persists the output of comparison runs. It is a write-through sink:
// nothing reads it back to skip recomputation.
type Store interface {
	Close() error

	SaveRun(ctx context.Context, r Run) error
	SaveDocset(ctx context.Context, runID string, rec DocsetRecord) error
	// SaveResult writes a run and all of its records atomically: on error
	// nothing of the run is stored.
	SaveResult(ctx context.Context, r Run, recs []DocsetRecord) error

	// GetRun returns internalerr.ErrNotFound for unknown IDs.
	GetRun(ctx context.Context, id string) (Run, error)
	// ListRuns returns the newest runs first. limit <= 0 means 20.
	ListRuns(ctx context.Context, limit int) ([]Run, error)
	// DocsetRecords returns a run's records ordered by position then side.
	DocsetRecords(ctx context.Context, runID string) ([]DocsetRecord, error)
}

// Run describes one comparison run.
type Run struct {
	ID        string
	StartedAt time.Time
	Years     []string
	Docsets   int
	DocParse  ingest.ParseCount
	SumParse  ingest.ParseCount
}

// Side says which half of a docset a record describes.
type Side string

const (
	SideDocs Side = "docs"
	SideSums Side = "sums"
)

// Valid reports whether s is one of the known sides.
func (s Side) Valid() bool { return s == SideDocs || s == SideSums }

// DocsetRecord is the stats of one side of one docset.
type DocsetRecord struct {
	Position  int
	Year      string
	Docset    string
	Side      Side
	WordCount int
	Counts    map[string]int
	Parsed    int
	Failed    int
}

// NewDocsetRecord flattens s into a record keyed by field name.
func NewDocsetRecord(pos int, year, docset string, side Side, s stats.DocStats, pc ingest.ParseCount) DocsetRecord {
	counts := make(map[string]int, len(stats.Fields()))
	for _, f := range stats.Fields() {
		counts[f.String()] = s.Value(f)
	}
	return DocsetRecord{
		Position:  pos,
		Year:      year,
		Docset:    docset,
		Side:      side,
		WordCount: s.WordCount,
		Counts:    counts,
		Parsed:    pc.Parsed,
		Failed:    pc.Failed,
	}
}

// Ratio returns the named count over WordCount, 0 for empty records.
func (r DocsetRecord) Ratio(field string) float64 {
	if r.WordCount == 0 {
		return 0
	}
	return float64(r.Counts[field]) / float64(r.WordCount)
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewRunID returns a lexically sortable run identifier.
func NewRunID(t time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}
