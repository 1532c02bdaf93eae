package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cognicore/sumsent/pkg/sumsent/internalerr"
	"github.com/cognicore/sumsent/pkg/sumsent/store"
)

var _ store.Store = (*Store)(nil)

func TestRunsAndRecords(t *testing.T) {
	ctx := context.Background()
	s := New()

	id := store.NewRunID(time.Now())
	years := []string{"2001"}
	if err := s.SaveRun(ctx, store.Run{ID: id, StartedAt: time.Now(), Years: years, Docsets: 1}); err != nil {
		t.Fatal(err)
	}
	years[0] = "mutated"

	got, err := s.GetRun(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Years[0] != "2001" {
		t.Errorf("stored run should not alias caller slice, got %v", got.Years)
	}

	counts := map[string]int{"negative_count": 2}
	if err := s.SaveDocset(ctx, id, store.DocsetRecord{Position: 0, Docset: "d01a", Side: store.SideSums, Counts: counts}); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveDocset(ctx, id, store.DocsetRecord{Position: 0, Docset: "d01a", Side: store.SideDocs, Counts: counts}); err != nil {
		t.Fatal(err)
	}
	counts["negative_count"] = 99

	recs, err := s.DocsetRecords(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Side != store.SideDocs || recs[1].Side != store.SideSums {
		t.Errorf("unexpected order: %s, %s", recs[0].Side, recs[1].Side)
	}
	if recs[0].Counts["negative_count"] != 2 {
		t.Errorf("stored counts should not alias caller map, got %d", recs[0].Counts["negative_count"])
	}
}

func TestMissingRun(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, err := s.GetRun(ctx, "nope"); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("GetRun: expected ErrNotFound, got %v", err)
	}
	if err := s.SaveDocset(ctx, "nope", store.DocsetRecord{}); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("SaveDocset: expected ErrNotFound, got %v", err)
	}
	if err := s.SaveRun(ctx, store.Run{}); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("SaveRun: expected ErrInvalidInput, got %v", err)
	}
}

func TestListRunsLimit(t *testing.T) {
	ctx := context.Background()
	s := New()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var last string
	for i := 0; i < 5; i++ {
		last = store.NewRunID(base.Add(time.Duration(i) * time.Minute))
		if err := s.SaveRun(ctx, store.Run{ID: last}); err != nil {
			t.Fatal(err)
		}
	}
	runs, err := s.ListRuns(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 || runs[0].ID != last {
		t.Errorf("ListRuns = %d runs, first %q; want 3, %q", len(runs), runs[0].ID, last)
	}
}

func TestSaveResultAtomic(t *testing.T) {
	ctx := context.Background()
	s := New()

	run := store.Run{ID: store.NewRunID(time.Now())}
	recs := []store.DocsetRecord{
		{Position: 0, Docset: "d01a", Side: store.SideDocs},
		{Position: 0, Docset: "d01a", Side: "bogus"},
	}
	if err := s.SaveResult(ctx, run, recs); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := s.GetRun(ctx, run.ID); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("rejected result should leave no run, got %v", err)
	}

	if err := s.SaveResult(ctx, run, recs[:1]); err != nil {
		t.Fatalf("SaveResult: %v", err)
	}
	got, _ := s.DocsetRecords(ctx, run.ID)
	if len(got) != 1 {
		t.Errorf("expected 1 record, got %d", len(got))
	}
}
