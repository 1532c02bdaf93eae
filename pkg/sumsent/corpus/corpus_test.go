package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cognicore/sumsent/pkg/sumsent/internalerr"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("<DOC></DOC>"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestMatchesDocset(t *testing.T) {
	tests := []struct {
		id   string
		name string
		want bool
	}{
		{"d17a", "D17.M.100.A.B", true},
		{"d17a", "D17.1.100.A.C", true},
		{"d17a", "d17.m.200.a.b", true},
		{"d17a", "D18.M.100.A.B", false},
		{"a", "A.M.100", false},
	}
	for _, tt := range tests {
		if got := MatchesDocset(tt.id, tt.name); got != tt.want {
			t.Errorf("MatchesDocset(%q, %q) = %v, want %v", tt.id, tt.name, got, tt.want)
		}
	}
}

func TestMake(t *testing.T) {
	c := Make("2001", "/project/DUC", "data/test/docs/test", "data/eval/see.models")
	want := Corpus{
		Year:    "2001",
		DocPath: "/project/DUC/DUC2001/data/test/docs/test",
		SumPath: "/project/DUC/DUC2001/data/eval/see.models",
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("Make mismatch (-want +got):\n%s", diff)
	}
}

func TestListDocsets(t *testing.T) {
	root := t.TempDir()
	docs := filepath.Join(root, "docs")
	sums := filepath.Join(root, "sums")

	touch(t, filepath.Join(docs, "d18b", "FT921-1"))
	touch(t, filepath.Join(docs, "d17a", "AP880911-0016"))
	touch(t, filepath.Join(docs, "d17a", "AP880228-0097"))
	touch(t, filepath.Join(sums, "D17.M.100.A.B"))
	touch(t, filepath.Join(sums, "D17.1.100.A.C"))
	touch(t, filepath.Join(sums, "D18.M.100.B.A"))
	if err := os.MkdirAll(filepath.Join(sums, "D17.extra"), 0755); err != nil {
		t.Fatal(err)
	}

	docsets, err := ListDocsets(Corpus{Year: "2001", DocPath: docs, SumPath: sums})
	if err != nil {
		t.Fatalf("ListDocsets: %v", err)
	}

	want := []Docset{
		{
			ID: "d17a",
			Docs: []string{
				filepath.Join(docs, "d17a", "AP880228-0097"),
				filepath.Join(docs, "d17a", "AP880911-0016"),
			},
			Sums: []string{
				filepath.Join(sums, "D17.1.100.A.C"),
				filepath.Join(sums, "D17.M.100.A.B"),
			},
		},
		{
			ID:   "d18b",
			Docs: []string{filepath.Join(docs, "d18b", "FT921-1")},
			Sums: []string{filepath.Join(sums, "D18.M.100.B.A")},
		},
	}
	if diff := cmp.Diff(want, docsets); diff != "" {
		t.Errorf("ListDocsets mismatch (-want +got):\n%s", diff)
	}
}

func TestListDocsetsNestedLayout(t *testing.T) {
	root := t.TempDir()
	docs := filepath.Join(root, "docs")
	sums := filepath.Join(root, "sums")

	touch(t, filepath.Join(docs, "d061j", "AP880911-0016", "AP880911-0016.S"))
	touch(t, filepath.Join(docs, "d061j", "AP880912-0095", "AP880912-0095.S"))
	if err := os.MkdirAll(sums, 0755); err != nil {
		t.Fatal(err)
	}

	docsets, err := ListDocsets(Corpus{DocPath: docs, SumPath: sums})
	if err != nil {
		t.Fatal(err)
	}
	if len(docsets) != 1 || len(docsets[0].Docs) != 2 {
		t.Fatalf("expected one docset with two docs, got %+v", docsets)
	}
	if len(docsets[0].Sums) != 0 {
		t.Errorf("expected no summaries, got %v", docsets[0].Sums)
	}
}

func TestListDocsetsLayoutErrors(t *testing.T) {
	root := t.TempDir()
	empty := filepath.Join(root, "empty")
	if err := os.MkdirAll(empty, 0755); err != nil {
		t.Fatal(err)
	}
	withDocset := filepath.Join(root, "docs")
	touch(t, filepath.Join(withDocset, "d01a", "doc"))

	tests := []struct {
		name string
		c    Corpus
	}{
		{"missing root", Corpus{DocPath: filepath.Join(root, "nope"), SumPath: empty}},
		{"no subdirectories", Corpus{DocPath: empty, SumPath: empty}},
		{"missing summary root", Corpus{DocPath: withDocset, SumPath: filepath.Join(root, "nope")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ListDocsets(tt.c)
			if !errors.Is(err, internalerr.ErrCorpusLayout) {
				t.Fatalf("expected ErrCorpusLayout, got %v", err)
			}
			var cle *internalerr.CorpusLayoutError
			if !errors.As(err, &cle) {
				t.Fatalf("expected *CorpusLayoutError, got %T", err)
			}
		})
	}
}

func TestMakeDocsetEmptyID(t *testing.T) {
	if _, err := MakeDocset(Corpus{}, ""); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for empty id, got %v", err)
	}
}

func TestDocSummaries(t *testing.T) {
	ds := Docset{
		ID: "d17a",
		Sums: []string{
			"/sums/AP880911-0016.html",
			"/sums/D17.M.100.A.B",
			"/sums/D17.1.100.A.C",
		},
	}

	got := ds.DocSummaries("AP880911-0016", false)
	if diff := cmp.Diff([]string{"/sums/AP880911-0016.html"}, got); diff != "" {
		t.Errorf("DocSummaries without multidoc (-want +got):\n%s", diff)
	}

	got = ds.DocSummaries("AP880911-0016", true)
	want := []string{"/sums/AP880911-0016.html", "/sums/D17.M.100.A.B"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DocSummaries with multidoc (-want +got):\n%s", diff)
	}
}

func TestParseSummaryName(t *testing.T) {
	sn := ParseSummaryName("D17.M.100.A.B")
	if sn.Docset != "D17" || sn.Kind != MultiDoc || sn.Length != 100 {
		t.Errorf("ParseSummaryName = %+v", sn)
	}
	sn = ParseSummaryName("D17.1.200.A.C")
	if sn.Kind != SingleDoc || sn.Length != 200 {
		t.Errorf("ParseSummaryName = %+v", sn)
	}
	sn = ParseSummaryName("README")
	if sn.Docset != "README" || sn.Length != 0 {
		t.Errorf("ParseSummaryName = %+v", sn)
	}
}

func TestPresets(t *testing.T) {
	if diff := cmp.Diff([]string{"2001", "2002", "2003", "2004"}, PresetYears()); diff != "" {
		t.Errorf("PresetYears (-want +got):\n%s", diff)
	}
	l, ok := Preset("2003")
	if !ok || l.DocsDir != "testdata/task4/docs" {
		t.Errorf("Preset(2003) = %+v, %v", l, ok)
	}
	if _, ok := Preset("1999"); ok {
		t.Error("Preset(1999) should not exist")
	}
}
