// Package corpus enumerates DUC-style docsets and their summaries.
//
// A corpus release has a document root holding one directory per docset and
// a flat summary root whose filenames carry the docset id as a prefix:
//
//	DUC2001/data/test/docs/test/d17a/AP880911-0016
//	DUC2001/data/eval/see.models/D17.M.100.A.B
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/cognicore/sumsent/pkg/sumsent/internalerr"
)

// Corpus identifies one corpus release and where its files live.
type Corpus struct {
	Year    string
	DocPath string
	SumPath string
}

// Make builds a Corpus rooted at <projectRoot>/DUC<year>.
func Make(year, projectRoot, docsDir, sumsDir string) Corpus {
	root := filepath.Join(projectRoot, "DUC"+year)
	return Corpus{
		Year:    year,
		DocPath: filepath.Join(root, docsDir),
		SumPath: filepath.Join(root, sumsDir),
	}
}

// Layout is the per-release location of documents and summaries relative to
// the release root.
type Layout struct {
	DocsDir string `yaml:"docs_dir"`
	SumsDir string `yaml:"sums_dir"`
}

var presets = map[string]Layout{
	"2001": {DocsDir: "data/test/docs/test", SumsDir: "data/eval/see.models"},
	"2002": {DocsDir: "data/test/docs/docs", SumsDir: "results/abstracts/phase1/SEEmodels/SEE.edited.abstracts.in.edus"},
	"2003": {DocsDir: "testdata/task4/docs", SumsDir: "results/SEE.duc2003.abstracts/models"},
	"2004": {DocsDir: "testdata/tasks1and2/t1.2/docs", SumsDir: "results/ROUGE/eval/models/2"},
}

// Preset returns the known layout for a DUC release year.
func Preset(year string) (Layout, bool) {
	l, ok := presets[year]
	return l, ok
}

// PresetYears returns the years with a known layout, sorted.
func PresetYears() []string {
	years := make([]string, 0, len(presets))
	for y := range presets {
		years = append(years, y)
	}
	sort.Strings(years)
	return years
}

// Docset is a named collection of documents and the summaries written for it.
type Docset struct {
	ID   string   // e.g. "d17a"; the trailing letter names the annotator
	Docs []string // full paths, sorted
	Sums []string // full paths, sorted
}

// SummaryPrefix is the uppercased docset id without its annotator letter.
func SummaryPrefix(id string) string {
	if len(id) < 2 {
		return ""
	}
	return strings.ToUpper(id[:len(id)-1])
}

// MatchesDocset reports whether a summary filename belongs to docset id.
func MatchesDocset(id, filename string) bool {
	prefix := SummaryPrefix(id)
	if prefix == "" {
		return false
	}
	return strings.HasPrefix(strings.ToUpper(filename), prefix)
}

// ListDocsets returns every docset of the corpus ordered by id.
func ListDocsets(c Corpus) ([]Docset, error) {
	entries, err := os.ReadDir(c.DocPath)
	if err != nil {
		return nil, &internalerr.CorpusLayoutError{Path: c.DocPath, Reason: "unreadable document root", Err: err}
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			ids = append(ids, e.Name())
		}
	}
	if len(ids) == 0 {
		return nil, &internalerr.CorpusLayoutError{Path: c.DocPath, Reason: "no docset directories"}
	}
	sort.Strings(ids)

	sums, err := listFiles(c.SumPath)
	if err != nil {
		return nil, &internalerr.CorpusLayoutError{Path: c.SumPath, Reason: "unreadable summary root", Err: err}
	}

	docsets := make([]Docset, 0, len(ids))
	for _, id := range ids {
		ds, err := makeDocset(c, id, sums)
		if err != nil {
			return nil, err
		}
		docsets = append(docsets, ds)
	}
	return docsets, nil
}

// MakeDocset builds the Docset for one id.
func MakeDocset(c Corpus, id string) (Docset, error) {
	if id == "" {
		return Docset{}, fmt.Errorf("%w: empty docset id", internalerr.ErrInvalidInput)
	}
	sums, err := listFiles(c.SumPath)
	if err != nil {
		return Docset{}, &internalerr.CorpusLayoutError{Path: c.SumPath, Reason: "unreadable summary root", Err: err}
	}
	return makeDocset(c, id, sums)
}

func makeDocset(c Corpus, id string, sumNames []string) (Docset, error) {
	dir := filepath.Join(c.DocPath, id)
	docs, err := listDocs(dir)
	if err != nil {
		return Docset{}, &internalerr.CorpusLayoutError{Path: dir, Reason: "unreadable docset", Err: err}
	}

	ds := Docset{ID: id, Docs: docs}
	for _, name := range sumNames {
		if MatchesDocset(id, name) {
			ds.Sums = append(ds.Sums, filepath.Join(c.SumPath, name))
		}
	}
	sort.Strings(ds.Sums)
	return ds, nil
}

// listDocs returns the documents of a docset directory. Flat releases keep
// documents directly in the docset; others wrap each in its own folder.
func listDocs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var docs []string
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if !e.IsDir() {
			docs = append(docs, path)
			continue
		}
		inner, err := listFiles(path)
		if err != nil {
			return nil, err
		}
		for _, name := range inner {
			docs = append(docs, filepath.Join(path, name))
		}
	}
	sort.Strings(docs)
	return docs, nil
}

// listFiles returns the sorted names of the non-directory entries of dir.
func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// DocSummaries returns the summaries written for a single document, named
// <docID>.html, plus the docset's multi-document summaries when multidoc is set.
func (d Docset) DocSummaries(docID string, multidoc bool) []string {
	var out []string
	for _, path := range d.Sums {
		base := filepath.Base(path)
		if strings.EqualFold(base, docID+".html") {
			out = append(out, path)
			continue
		}
		if multidoc && ParseSummaryName(base).Kind == MultiDoc {
			out = append(out, path)
		}
	}
	return out
}

// SummaryKind distinguishes multi-document from single-document summaries.
type SummaryKind int

const (
	SingleDoc SummaryKind = iota
	MultiDoc
)

func (k SummaryKind) String() string {
	if k == MultiDoc {
		return "multi"
	}
	return "single"
}

// SummaryName is a summary filename split on '.', e.g. D17.M.100.A.B.
type SummaryName struct {
	Docset string
	Kind   SummaryKind
	Length int // target length in words; 0 when absent
	Fields []string
}

// ParseSummaryName splits a summary filename into its fields.
func ParseSummaryName(name string) SummaryName {
	fields := strings.Split(name, ".")
	sn := SummaryName{Docset: fields[0], Fields: fields}
	if len(fields) > 1 && strings.EqualFold(fields[1], "M") {
		sn.Kind = MultiDoc
	}
	if len(fields) > 2 {
		if n, err := strconv.Atoi(fields[2]); err == nil {
			sn.Length = n
		}
	}
	return sn
}
