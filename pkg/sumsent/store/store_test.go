package store

import (
	"testing"
	"time"

	"github.com/cognicore/sumsent/pkg/sumsent/ingest"
	"github.com/cognicore/sumsent/pkg/sumsent/lexicon"
	"github.com/cognicore/sumsent/pkg/sumsent/stats"
)

func TestNewRunIDSortable(t *testing.T) {
	now := time.Now()
	a := NewRunID(now)
	b := NewRunID(now)
	if a == b {
		t.Fatal("run IDs should be unique")
	}
	if a >= b {
		t.Errorf("run IDs should increase within the same millisecond: %s >= %s", a, b)
	}
	if len(a) != 26 {
		t.Errorf("expected 26-character ULID, got %q", a)
	}
}

func TestNewDocsetRecord(t *testing.T) {
	lex := lexicon.NewSentiment()
	lex.Add("awful", lexicon.Entry{Strength: lexicon.WeakSubj, Polarity: lexicon.Negative})
	s := stats.Compute([]string{"awful", "day", "awful", "rain"}, nil, lex)

	rec := NewDocsetRecord(3, "2002", "d061j", SideDocs, s, ingest.ParseCount{Parsed: 2, Failed: 1})
	if rec.Position != 3 || rec.Side != SideDocs || rec.WordCount != 4 {
		t.Errorf("unexpected record header: %+v", rec)
	}
	if len(rec.Counts) != len(stats.Fields()) {
		t.Errorf("expected %d counts, got %d", len(stats.Fields()), len(rec.Counts))
	}
	if rec.Counts["negative_weaksubj_count"] != 1 {
		t.Errorf("negative_weaksubj_count = %d, want 1", rec.Counts["negative_weaksubj_count"])
	}
	if got := rec.Ratio("negative_count"); got != 0.25 {
		t.Errorf("Ratio = %v, want 0.25", got)
	}
	if rec.Parsed != 2 || rec.Failed != 1 {
		t.Errorf("parse counts = %d/%d", rec.Parsed, rec.Failed)
	}
	if (DocsetRecord{}).Ratio("negative_count") != 0 {
		t.Error("empty record ratio should be 0")
	}
}
