package memstore

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sort"
	"sync"

	"github.com/cognicore/sumsent/pkg/sumsent/internalerr"
	"github.com/cognicore/sumsent/pkg/sumsent/store"
)

type recordKey struct {
	position int
	side     store.Side
}

// Store is an in-memory implementation of store.Store for tests and dry runs.
type Store struct {
	mu      sync.RWMutex
	runs    map[string]store.Run
	records map[string]map[recordKey]store.DocsetRecord
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		runs:    make(map[string]store.Run),
		records: make(map[string]map[recordKey]store.DocsetRecord),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveRun inserts or replaces a run.
func (s *Store) SaveRun(ctx context.Context, r store.Run) error {
	if r.ID == "" {
		return fmt.Errorf("save run: empty id: %w", internalerr.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.putRun(r)
	return nil
}

// SaveDocset inserts or replaces one side of a docset. The run must exist.
func (s *Store) SaveDocset(ctx context.Context, runID string, rec store.DocsetRecord) error {
	if err := checkRecord(rec); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.runs[runID]; !ok {
		return fmt.Errorf("run %s: %w", runID, internalerr.ErrNotFound)
	}
	s.putRecord(runID, rec)
	return nil
}

// SaveResult validates every record before storing anything, so a rejected
// record leaves no trace of the run.
func (s *Store) SaveResult(ctx context.Context, r store.Run, recs []store.DocsetRecord) error {
	if r.ID == "" {
		return fmt.Errorf("save run: empty id: %w", internalerr.ErrInvalidInput)
	}
	for _, rec := range recs {
		if err := checkRecord(rec); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.putRun(r)
	for _, rec := range recs {
		s.putRecord(r.ID, rec)
	}
	return nil
}

func checkRecord(rec store.DocsetRecord) error {
	if !rec.Side.Valid() {
		return fmt.Errorf("docset %s: side %q: %w", rec.Docset, rec.Side, internalerr.ErrInvalidInput)
	}
	return nil
}

func (s *Store) putRun(r store.Run) {
	r.Years = slices.Clone(r.Years)
	s.runs[r.ID] = r
}

func (s *Store) putRecord(runID string, rec store.DocsetRecord) {
	byKey, ok := s.records[runID]
	if !ok {
		byKey = make(map[recordKey]store.DocsetRecord)
		s.records[runID] = byKey
	}
	rec.Counts = maps.Clone(rec.Counts)
	byKey[recordKey{rec.Position, rec.Side}] = rec
}

// GetRun implements store.Store.
func (s *Store) GetRun(ctx context.Context, id string) (store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.runs[id]
	if !ok {
		return store.Run{}, fmt.Errorf("run %s: %w", id, internalerr.ErrNotFound)
	}
	return r, nil
}

// ListRuns implements store.Store.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	if limit <= 0 {
		limit = 20
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]store.Run, 0, len(s.runs))
	for _, r := range s.runs {
		runs = append(runs, r)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].ID > runs[j].ID })
	if len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// DocsetRecords implements store.Store.
func (s *Store) DocsetRecords(ctx context.Context, runID string) ([]store.DocsetRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := make([]store.DocsetRecord, 0, len(s.records[runID]))
	for _, rec := range s.records[runID] {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Position != recs[j].Position {
			return recs[i].Position < recs[j].Position
		}
		return recs[i].Side < recs[j].Side
	})
	return recs, nil
}
